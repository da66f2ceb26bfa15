package backend

import (
	"context"
	"math/big"
)

// PartialCallback is invoked during a long Solve whenever an intermediate
// primal-feasible point narrows the objective bracket [objLB, objUB]; delta
// is objUB - objLB. Returning false requests Solve to stop early and report
// DeltaOptimal with whatever gap has been certified so far.
type PartialCallback func(objLB, objUB, delta *big.Rat) bool

// Backend is the capability set the delpi façade needs from a concrete
// solving engine: build up a problem column by column and row by row, then
// solve it. Implementations are not expected to be safe for concurrent use;
// the façade serializes access with its own lock.
type Backend interface {
	// ReserveColumns/ReserveRows pre-size internal storage; both are no-ops
	// that only affect performance.
	ReserveColumns(n int)
	ReserveRows(n int)

	// AddColumn appends a new structural variable and returns its index.
	AddColumn(col Column) int
	// AddRow appends a new, initially all-zero row and returns its index.
	// Coefficients are filled in afterwards via SetCoefficient.
	AddRow(row Row) int
	// AddRowWithCoefficients appends a new row with its coefficients given
	// up front as a sparse column-index -> coefficient map.
	AddRowWithCoefficients(coeffs map[int]*big.Rat, row Row) int

	SetCoefficient(row, col int, value *big.Rat)
	SetObjective(col int, value *big.Rat)
	SetBound(col int, lb, ub *big.Rat)

	NumColumns() int
	NumRows() int

	// Objective, Bound, RowBound and Coefficient read back the problem as
	// last set, independent of any pivoting Solve has since performed, so
	// callers can introspect or clone a problem after solving it.
	Objective(col int) *big.Rat
	Bound(col int) (lb, ub *big.Rat)
	RowBound(row int) (lb, ub *big.Rat)
	Coefficient(row, col int) *big.Rat

	// Solve optimises the problem for a minimisation objective (the façade
	// negates the objective row itself when the caller wants to maximise).
	// precision == nil (or zero) requires an exact Optimal/Infeasible/
	// Unbounded verdict; precision > 0 allows early termination once a
	// verified duality gap is within precision, at which point Solve
	// returns DeltaOptimal and the achieved gap. If storeSolution is false,
	// Solution/DualSolution/ObjectiveValue are left at their previous
	// values, but the verdict is still returned. partial, if non-nil, is
	// invoked before each Phase 2 pivot for which a finite objective bracket
	// can be certified, with that bracket; it is not invoked while an
	// improving column has no finite bound to move to. Returning false from
	// it makes Solve stop early and report
	// DeltaOptimal with the bracket's current width.
	Solve(ctx context.Context, precision *big.Rat, storeSolution bool, partial PartialCallback) (Result, *big.Rat, error)

	// Solution returns the last stored primal solution, indexed by column.
	Solution() []*big.Rat
	// DualSolution returns the last stored dual solution (Farkas ray on
	// Infeasible, shadow prices on Optimal/DeltaOptimal), indexed by row.
	DualSolution() []*big.Rat
	// ObjectiveValue returns the objective value of the last stored
	// solution.
	ObjectiveValue() *big.Rat
	// ObjectiveBounds returns the [objLB, objUB] bracket certified for the
	// last stored solution: both equal to the optimum on Optimal, a
	// verified bracket around it on DeltaOptimal, and nil otherwise.
	ObjectiveBounds() (lb, ub *big.Rat)
}
