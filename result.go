package delpi

import (
	"math/big"

	"github.com/costela/delpi/backend"
	"github.com/costela/delpi/symbolic"
)

// LpResult is the verdict a Solve call reaches, mirroring backend.Result
// one to one but expressed at the façade's level so callers never need to
// import the backend package.
type LpResult int

const (
	Unsolved LpResult = iota
	Optimal
	DeltaOptimal
	Unbounded
	Infeasible
	Error
)

func (r LpResult) String() string {
	switch r {
	case Unsolved:
		return "unsolved"
	case Optimal:
		return "optimal"
	case DeltaOptimal:
		return "delta-optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

func fromBackendResult(r backend.Result) LpResult {
	switch r {
	case backend.Optimal:
		return Optimal
	case backend.DeltaOptimal:
		return DeltaOptimal
	case backend.Unbounded:
		return Unbounded
	case backend.Infeasible:
		return Infeasible
	case backend.Error:
		return Error
	default:
		return Unsolved
	}
}

// SolveResult carries the outcome of one Solve call: the verdict, the
// achieved precision (0 for an exact Optimal/Infeasible/Unbounded verdict),
// and, when store_solution was requested and the verdict is (Delta)Optimal,
// the primal and dual solutions.
type SolveResult struct {
	model     *Model
	result    LpResult
	precision *big.Rat
}

// Result reports the verdict reached by Solve.
func (res SolveResult) Result() LpResult { return res.result }

// Precision reports the achieved precision: zero for an exact verdict, or
// the duality gap at which a DeltaOptimal search stopped.
func (res SolveResult) Precision() *big.Rat {
	if res.precision == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(res.precision)
}

// ObjectiveBounds returns the [lb, ub] bracket the backend certified around
// the optimal objective value: both equal to ObjectiveValue on Optimal, a
// verified bracket around it on DeltaOptimal, and nil/nil otherwise (e.g.
// Unbounded, Infeasible). ub - lb is exactly the value returned by
// Precision.
func (res SolveResult) ObjectiveBounds() (lb, ub *big.Rat) {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	blb, bub := res.model.backend.ObjectiveBounds()
	if blb == nil || bub == nil {
		return nil, nil
	}
	if res.model.sense == Maximize {
		return new(big.Rat).Neg(bub), new(big.Rat).Neg(blb)
	}
	return blb, bub
}

// PrimalValue returns the computed value of v in this result. It panics if
// v was never added as a column, matching the symbolic package's fail-fast
// style for precondition violations.
func (res SolveResult) PrimalValue(v symbolic.Variable) *big.Rat {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	col, ok := res.model.varToCol[v]
	if !ok {
		panic("delpi: PrimalValue: unknown variable " + v.Name())
	}
	sol := res.model.backend.Solution()
	if col >= len(sol) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(sol[col])
}

// DualValue returns the dual value (shadow price, or Farkas ray component
// on Infeasible) of row.
func (res SolveResult) DualValue(row int) *big.Rat {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	dual := res.model.backend.DualSolution()
	if row >= len(dual) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(dual[row])
}

// ObjectiveValue returns the objective value of this result. It is only
// meaningful when Result is Optimal or DeltaOptimal.
func (res SolveResult) ObjectiveValue() *big.Rat {
	res.model.mu.RLock()
	defer res.model.mu.RUnlock()

	v := res.model.backend.ObjectiveValue()
	if v == nil {
		return new(big.Rat)
	}
	if res.model.sense == Maximize {
		return new(big.Rat).Neg(v)
	}
	return new(big.Rat).Set(v)
}
