package backend

import (
	"context"
	"math"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/costela/delpi/backend/relax"
)

var (
	zero = big.NewRat(0, 1)
	one  = big.NewRat(1, 1)
)

// Exact is a bounded-variable, two-phase simplex operating on exact
// rationals. Every row is turned into an equality by pairing it with a
// bounded slack column: a constraint `lb <= a^T x <= ub` becomes
// `s - a^T x = 0` with `s` bounded to `[lb, ub]`, so the whole problem is
// carried as a set of equalities over bounded variables, structural and
// slack alike. Non-basic variables sit at one of their bounds (or at zero,
// for free variables); pivoting swaps a non-basic variable into the basis
// exactly as in the classic tableau method, generalised with a bound flip
// when a ratio-test winner would only move a non-basic variable to its
// opposite bound rather than making it basic.
type Exact struct {
	mu sync.Mutex

	numStructural int
	obj           []*big.Rat // objective coefficients, indexed by column (minimisation)
	lb, ub        []*big.Rat // nil entries mean unbounded in that direction
	free          []bool

	rowLb, rowUb []*big.Rat

	// original holds each row's coefficients as given by the caller
	// (positive, not negated for the tableau's s - a^T x = 0 form), so
	// Objective/Bound/RowBound/Coefficient can read back the problem after
	// Solve has pivoted the working tableau.
	original []map[int]*big.Rat

	// tableau[row] holds numStructural+numRows entries, in the convention
	// basic[row] = rhs[row] - sum_{col nonbasic} tableau[row][col]*value(col).
	tableau [][]*big.Rat
	rhs     []*big.Rat
	basis   []int
	atUpper []bool // meaningful only for non-basic columns

	// relaxer, if set, seeds Solve's starting basis from a floating-point
	// warm-start pass instead of the synthetic all-slack basis.
	relaxer relax.Relaxer

	solved       bool
	result       Result
	solution     []*big.Rat
	dual         []*big.Rat
	objValue     *big.Rat
	achievedGap  *big.Rat
	objLB, objUB *big.Rat
}

// NewExact returns an empty problem with no columns or rows.
func NewExact() *Exact {
	return &Exact{}
}

// SetRelaxer configures a floating-point warm-start pass: Solve runs it once
// ahead of Phase 1 and pivots the tableau toward whichever basis it
// suggests, instead of starting cold from the synthetic all-slack basis. A
// nil relaxer (the default) skips this pass entirely; Phase 1/2 remain
// exact and correct either way, since the warm start is purely a starting
// point.
func (e *Exact) SetRelaxer(r relax.Relaxer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.relaxer = r
}

func (e *Exact) ReserveColumns(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cap(e.obj) < n {
		grown := make([]*big.Rat, len(e.obj), n)
		copy(grown, e.obj)
		e.obj = grown
	}
}

func (e *Exact) ReserveRows(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cap(e.tableau) < n {
		grown := make([][]*big.Rat, len(e.tableau), n)
		copy(grown, e.tableau)
		e.tableau = grown
	}
}

func (e *Exact) numColumns() int { return len(e.obj) }

func normBound(v *big.Rat) *big.Rat {
	if v == nil {
		return nil
	}
	return new(big.Rat).Set(v)
}

// AddColumn appends a structural variable and extends every existing row's
// tableau entry for it with a zero coefficient.
func (e *Exact) AddColumn(col Column) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := len(e.obj)
	e.numStructural++
	obj := col.Obj
	if obj == nil {
		obj = new(big.Rat)
	} else {
		obj = new(big.Rat).Set(obj)
	}
	e.obj = append(e.obj, obj)
	e.lb = append(e.lb, normBound(col.Lb))
	e.ub = append(e.ub, normBound(col.Ub))
	e.free = append(e.free, col.Lb == nil && col.Ub == nil)
	e.atUpper = append(e.atUpper, col.Lb == nil && col.Ub != nil)

	for r := range e.tableau {
		e.tableau[r] = append(e.tableau[r], new(big.Rat))
	}
	e.solved = false
	return idx
}

// AddRow appends an all-zero row paired with a slack column bounded to
// row.Lb/row.Ub, and returns the row's index.
func (e *Exact) AddRow(row Row) int {
	return e.AddRowWithCoefficients(nil, row)
}

// AddRowWithCoefficients appends a new row whose structural coefficients
// are given by coeffs (column index -> coefficient), paired with a slack
// column bounded to row.Lb/row.Ub.
func (e *Exact) AddRowWithCoefficients(coeffs map[int]*big.Rat, row Row) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	rIdx := len(e.tableau)

	slackIdx := len(e.obj)
	e.obj = append(e.obj, new(big.Rat))
	e.lb = append(e.lb, normBound(row.Lb))
	e.ub = append(e.ub, normBound(row.Ub))
	e.free = append(e.free, row.Lb == nil && row.Ub == nil)
	e.atUpper = append(e.atUpper, false)

	for r := range e.tableau {
		e.tableau[r] = append(e.tableau[r], new(big.Rat))
	}
	tabRow := make([]*big.Rat, len(e.obj))
	for i := range tabRow {
		tabRow[i] = new(big.Rat)
	}
	for c, v := range coeffs {
		tabRow[c] = new(big.Rat).Neg(v)
	}
	tabRow[slackIdx] = new(big.Rat).Set(one)

	e.tableau = append(e.tableau, tabRow)
	e.rhs = append(e.rhs, new(big.Rat))
	e.basis = append(e.basis, slackIdx)
	e.rowLb = append(e.rowLb, normBound(row.Lb))
	e.rowUb = append(e.rowUb, normBound(row.Ub))

	orig := make(map[int]*big.Rat, len(coeffs))
	for c, v := range coeffs {
		orig[c] = new(big.Rat).Set(v)
	}
	e.original = append(e.original, orig)

	e.solved = false
	return rIdx
}

func (e *Exact) SetCoefficient(row, col int, value *big.Rat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tableau[row][col] = new(big.Rat).Neg(value)
	if value.Sign() == 0 {
		delete(e.original[row], col)
	} else {
		e.original[row][col] = new(big.Rat).Set(value)
	}
	e.solved = false
}

// Objective returns col's minimisation objective coefficient.
func (e *Exact) Objective(col int) *big.Rat {
	e.mu.Lock()
	defer e.mu.Unlock()
	return new(big.Rat).Set(e.obj[col])
}

// Bound returns col's current [lb, ub], with nil meaning unbounded.
func (e *Exact) Bound(col int) (lb, ub *big.Rat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return normBound(e.lb[col]), normBound(e.ub[col])
}

// RowBound returns row's [lb, ub] as given at construction time.
func (e *Exact) RowBound(row int) (lb, ub *big.Rat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return normBound(e.rowLb[row]), normBound(e.rowUb[row])
}

// Coefficient returns row's coefficient for col as given by the caller,
// independent of any pivoting Solve has since performed.
func (e *Exact) Coefficient(row, col int) *big.Rat {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v, ok := e.original[row][col]; ok {
		return new(big.Rat).Set(v)
	}
	return new(big.Rat)
}

func (e *Exact) SetObjective(col int, value *big.Rat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obj[col] = new(big.Rat).Set(value)
	e.solved = false
}

func (e *Exact) SetBound(col int, lb, ub *big.Rat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lb[col] = normBound(lb)
	e.ub[col] = normBound(ub)
	e.free[col] = lb == nil && ub == nil
	e.atUpper[col] = lb == nil && ub != nil
	e.solved = false
}

func (e *Exact) NumColumns() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.numColumns()
}

func (e *Exact) NumRows() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tableau)
}

// nonbasicValue returns the current value of a non-basic column: its lower
// bound, or its upper bound if it is flagged atUpper, or zero if free.
func (e *Exact) nonbasicValue(col int) *big.Rat {
	if e.free[col] {
		return zero
	}
	if e.atUpper[col] {
		return e.ub[col]
	}
	return e.lb[col]
}

// basicValue computes the current value of the basic variable in row r.
func (e *Exact) basicValue(r int) *big.Rat {
	v := new(big.Rat).Set(e.rhs[r])
	for col, coef := range e.tableau[r] {
		if col == e.basis[r] || coef.Sign() == 0 {
			continue
		}
		v.Sub(v, new(big.Rat).Mul(coef, e.nonbasicValue(col)))
	}
	return v
}

// violation returns how far v lies outside [lb, ub]: positive above ub,
// negative below lb, zero if within bounds. lb/ub nil means unbounded that
// direction.
func violation(v *big.Rat, lb, ub *big.Rat) *big.Rat {
	if ub != nil && v.Cmp(ub) > 0 {
		return new(big.Rat).Sub(v, ub)
	}
	if lb != nil && v.Cmp(lb) < 0 {
		return new(big.Rat).Sub(v, lb)
	}
	return new(big.Rat)
}

// Solve runs Phase 1 (restore feasibility of the bounded basic variables)
// followed by Phase 2 (optimise the true objective), honoring the
// δ-optimality contract: precision == nil or zero requires exact
// termination; precision > 0 allows Solve to stop once the duality gap
// tracked at each pivot falls to or below precision.
func (e *Exact) Solve(ctx context.Context, precision *big.Rat, storeSolution bool, partial PartialCallback) (Result, *big.Rat, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.tableau) == 0 {
		return e.solveBoundsOnly(storeSolution)
	}

	if e.relaxer != nil {
		e.warmStart(ctx)
	}

	if res, err := e.phase1(ctx); err != nil {
		return Error, nil, err
	} else if res == Infeasible {
		return e.finishWithBounds(Infeasible, nil, nil, storeSolution)
	}

	res, lb, ub, err := e.phase2(ctx, precision, partial)
	if err != nil {
		return Error, nil, err
	}
	return e.finishWithBounds(res, lb, ub, storeSolution)
}

// finishWithBounds records the verdict and, when both bounds are known,
// derives the achieved gap from them (ub - lb) rather than from any
// per-pivot heuristic, matching the delta-optimality contract.
func (e *Exact) finishWithBounds(res Result, lb, ub *big.Rat, storeSolution bool) (Result, *big.Rat, error) {
	var gap *big.Rat
	if lb != nil && ub != nil {
		gap = new(big.Rat).Sub(ub, lb)
	}
	e.objLB, e.objUB = lb, ub
	return e.finish(res, gap, storeSolution)
}

// ObjectiveBounds returns the [lb, ub] bracket certified for the last stored
// solution.
func (e *Exact) ObjectiveBounds() (lb, ub *big.Rat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return normBound(e.objLB), normBound(e.objUB)
}

// warmStart restates the current problem in floating point, hands it to the
// configured Relaxer, and pivots each row into whichever structural column
// the relaxer suggests is basic there, via the same Gauss-Jordan pivot
// Phase 1/2 use. Suggestions that don't check out (an artificial-still-basic
// row, an out-of-range column, or a zero pivot entry) are skipped: this pass
// only ever changes the starting basis, never correctness, so Phase 1 still
// restores feasibility from whatever basis results.
func (e *Exact) warmStart(ctx context.Context) {
	p := relax.Problem{
		Obj:   toFloat64(e.obj[:e.numStructural]),
		ColLb: lbFloats(e.lb[:e.numStructural]),
		ColUb: ubFloats(e.ub[:e.numStructural]),
		RowLb: lbFloats(e.rowLb),
		RowUb: ubFloats(e.rowUb),
		Rows:  make([][]float64, len(e.tableau)),
	}
	for r, orig := range e.original {
		row := make([]float64, e.numStructural)
		for c, v := range orig {
			row[c], _ = v.Float64()
		}
		p.Rows[r] = row
	}

	basis, _, err := e.relaxer.Relax(ctx, p)
	if err != nil || len(basis) != len(e.tableau) {
		return
	}
	for r, col := range basis {
		if col < 0 || col >= e.numStructural || col == e.basis[r] {
			continue
		}
		if e.tableau[r][col].Sign() == 0 {
			continue
		}
		e.pivot(r, col, e.lb[e.basis[r]] == nil)
	}
}

func toFloat64(rs []*big.Rat) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i], _ = r.Float64()
	}
	return out
}

func lbFloats(rs []*big.Rat) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		if r == nil {
			out[i] = math.Inf(-1)
			continue
		}
		out[i], _ = r.Float64()
	}
	return out
}

func ubFloats(rs []*big.Rat) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		if r == nil {
			out[i] = math.Inf(1)
			continue
		}
		out[i], _ = r.Float64()
	}
	return out
}

// solveBoundsOnly handles the degenerate case of a problem with no rows at
// all: every column is free-standing, so the optimum simply sends each
// column to whichever of its bounds the objective coefficient favors, with
// no pivoting required. A column favored toward an infinite bound makes the
// problem unbounded.
func (e *Exact) solveBoundsOnly(storeSolution bool) (Result, *big.Rat, error) {
	for c, coef := range e.obj {
		switch coef.Sign() {
		case 1:
			if e.lb[c] == nil {
				return e.finishWithBounds(Unbounded, nil, nil, storeSolution)
			}
			e.atUpper[c] = false
		case -1:
			if e.ub[c] == nil {
				return e.finishWithBounds(Unbounded, nil, nil, storeSolution)
			}
			e.atUpper[c] = true
		default:
			switch {
			case e.lb[c] != nil:
				e.atUpper[c] = false
			case e.ub[c] != nil:
				e.atUpper[c] = true
			}
		}
	}
	exact := e.computeObjective()
	return e.finishWithBounds(Optimal, exact, new(big.Rat).Set(exact), storeSolution)
}

func (e *Exact) finish(res Result, gap *big.Rat, storeSolution bool) (Result, *big.Rat, error) {
	e.result = res
	e.solved = true
	if !storeSolution {
		return res, gap, nil
	}
	switch res {
	case Optimal, DeltaOptimal:
		e.solution = e.extractSolution()
		e.dual = e.extractDual()
		e.objValue = e.computeObjective()
	case Infeasible:
		e.dual = e.extractInfeasibilityCertificate()
	}
	e.achievedGap = gap
	return res, gap, nil
}

func (e *Exact) extractSolution() []*big.Rat {
	out := make([]*big.Rat, len(e.obj))
	for c := range out {
		out[c] = new(big.Rat)
	}
	for r, basicCol := range e.basis {
		out[basicCol] = e.basicValue(r)
	}
	for c := range out {
		if e.isBasic(c) {
			continue
		}
		out[c] = new(big.Rat).Set(e.nonbasicValue(c))
	}
	return out
}

func (e *Exact) isBasic(col int) bool {
	for _, b := range e.basis {
		if b == col {
			return true
		}
	}
	return false
}

func (e *Exact) computeObjective() *big.Rat {
	sol := e.extractSolution()
	sum := new(big.Rat)
	for c, v := range sol {
		sum.Add(sum, new(big.Rat).Mul(e.obj[c], v))
	}
	return sum
}

// extractDual reads shadow prices off the reduced-cost row of the slack
// columns: the reduced cost of slack_i's column, negated, is the dual value
// of row i, since the row's equality is s_i - a_i^T x = 0.
func (e *Exact) extractDual() []*big.Rat {
	reduced := e.reducedCosts(e.obj)
	out := make([]*big.Rat, len(e.tableau))
	for r := range out {
		slackCol := e.numStructural + r
		out[r] = new(big.Rat).Neg(reduced[slackCol])
	}
	return out
}

// extractInfeasibilityCertificate reuses the Phase 1 cost row's dual values
// as a Farkas-style infeasibility certificate: y such that y^T A x <= y^T b
// is violated by every point in the local bounds.
func (e *Exact) extractInfeasibilityCertificate() []*big.Rat {
	cost := e.phase1Cost()
	reduced := e.reducedCosts(cost)
	out := make([]*big.Rat, len(e.tableau))
	for r := range out {
		slackCol := e.numStructural + r
		out[r] = new(big.Rat).Neg(reduced[slackCol])
	}
	return out
}

func (e *Exact) Solution() []*big.Rat {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.solution
}

func (e *Exact) DualSolution() []*big.Rat {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dual
}

func (e *Exact) ObjectiveValue() *big.Rat {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.objValue
}

// reducedCosts computes, for the given cost vector, the reduced cost of
// every column: cost[col] minus the sum, over basic rows, of
// cost[basis[row]] * tableau[row][col]. Basic columns always reduce to
// zero.
func (e *Exact) reducedCosts(cost []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(cost))
	for c := range out {
		out[c] = new(big.Rat).Set(cost[c])
	}
	for r, basicCol := range e.basis {
		cb := cost[basicCol]
		if cb.Sign() == 0 {
			continue
		}
		for c, coef := range e.tableau[r] {
			if coef.Sign() == 0 {
				continue
			}
			out[c].Sub(out[c], new(big.Rat).Mul(cb, coef))
		}
		out[basicCol] = new(big.Rat)
	}
	return out
}

// phase1Cost builds the composite Phase 1 objective: +1 for every basic
// variable currently above its upper bound (we want to decrease it), -1 for
// every basic variable below its lower bound, 0 otherwise (including all
// non-basic columns, whose cost never enters the composite objective).
func (e *Exact) phase1Cost() []*big.Rat {
	cost := make([]*big.Rat, len(e.obj))
	for c := range cost {
		cost[c] = new(big.Rat)
	}
	for r, basicCol := range e.basis {
		v := e.basicValue(r)
		if e.ub[basicCol] != nil && v.Cmp(e.ub[basicCol]) > 0 {
			cost[basicCol] = new(big.Rat).Set(one)
		} else if e.lb[basicCol] != nil && v.Cmp(e.lb[basicCol]) < 0 {
			cost[basicCol] = new(big.Rat).Neg(one)
		}
	}
	return cost
}

func (e *Exact) totalInfeasibility() *big.Rat {
	sum := new(big.Rat)
	for r, basicCol := range e.basis {
		v := e.basicValue(r)
		viol := violation(v, e.lb[basicCol], e.ub[basicCol])
		if viol.Sign() < 0 {
			viol.Neg(viol)
		}
		sum.Add(sum, viol)
	}
	return sum
}

const maxPivots = 20000

// phase1 restores feasibility of the basic variables using the composite
// (piecewise) objective described in phase1Cost, re-derived after every
// pivot since which basic variables are infeasible, and in which direction,
// changes as the basis changes.
func (e *Exact) phase1(ctx context.Context) (Result, error) {
	for iter := 0; iter < maxPivots; iter++ {
		if err := ctx.Err(); err != nil {
			return Error, err
		}
		if e.totalInfeasibility().Sign() == 0 {
			return Optimal, nil
		}
		cost := e.phase1Cost()
		reduced := e.reducedCosts(cost)

		enter, enterUp := e.choosePhase1Entering(reduced)
		if enter == -1 {
			return Infeasible, nil
		}
		if !e.pivotOrFlip(enter, enterUp) {
			return Infeasible, nil
		}
	}
	return Error, errors.New("backend: phase 1 exceeded pivot limit")
}

// choosePhase1Entering picks a non-basic column whose movement would reduce
// total infeasibility: one with reduced cost < 0 that can increase (not
// already at its upper bound, or free), or reduced cost > 0 that can
// decrease (not already at its lower bound, or free).
func (e *Exact) choosePhase1Entering(reduced []*big.Rat) (col int, moveUp bool) {
	for c, rc := range reduced {
		if e.isBasic(c) {
			continue
		}
		if rc.Sign() < 0 && e.canIncrease(c) {
			return c, true
		}
		if rc.Sign() > 0 && e.canDecrease(c) {
			return c, false
		}
	}
	return -1, false
}

// canIncrease reports whether col, currently non-basic, is allowed to move
// upward: free columns and columns sitting at their lower bound both
// qualify (how far they can move is decided later by ratioTest).
func (e *Exact) canIncrease(col int) bool {
	return e.free[col] || !e.atUpper[col]
}

func (e *Exact) canDecrease(col int) bool {
	if e.free[col] || e.atUpper[col] {
		return true
	}
	return false
}

// phase2 optimises the true objective once the basis is feasible, applying
// Bland's rule to guarantee termination. At every iteration it derives a
// verified [objLB, objUB] bracket around the true optimum (see
// objectiveBounds) and offers it to partial, if set; partial returning false
// or the bracket's width falling within precision both end the solve early
// with DeltaOptimal.
func (e *Exact) phase2(ctx context.Context, precision *big.Rat, partial PartialCallback) (Result, *big.Rat, *big.Rat, error) {
	for iter := 0; iter < maxPivots; iter++ {
		if err := ctx.Err(); err != nil {
			return Error, nil, nil, err
		}
		reduced := e.reducedCosts(e.obj)

		enter, enterUp := e.chooseOptimalEntering(reduced)
		if enter == -1 {
			exact := e.computeObjective()
			return Optimal, exact, new(big.Rat).Set(exact), nil
		}

		lb, ub, ok := e.objectiveBounds(reduced)
		var delta *big.Rat
		if ok {
			delta = new(big.Rat).Sub(ub, lb)
		}

		if partial != nil && ok {
			if !partial(lb, ub, delta) {
				return DeltaOptimal, lb, ub, nil
			}
		}

		if ok && precision != nil && precision.Sign() > 0 && delta.Cmp(precision) <= 0 {
			return DeltaOptimal, lb, ub, nil
		}

		unbounded := !e.pivotOrFlip(enter, enterUp)
		if unbounded {
			return Unbounded, nil, nil, nil
		}
	}
	return Error, nil, nil, errors.New("backend: phase 2 exceeded pivot limit")
}

// objectiveBounds derives a verified [lb, ub] bracket around the true
// optimum from the current primal-feasible tableau: ub is the objective
// value of the current point (a valid upper bound for a minimisation, since
// the point is feasible); lb relaxes every basic-variable coupling and only
// accounts for how far each nonbasic column with an improving reduced cost
// could move before hitting its own opposite bound, which is still a valid
// lower bound since it only removes constraints, never adds them. ok is
// false when some improving column has no finite bound to relax to, meaning
// no finite lower bound can be certified yet.
func (e *Exact) objectiveBounds(reduced []*big.Rat) (lb, ub *big.Rat, ok bool) {
	ub = e.computeObjective()
	lb = new(big.Rat).Set(ub)
	for c, rc := range reduced {
		if e.isBasic(c) || rc.Sign() == 0 {
			continue
		}
		var delta *big.Rat
		switch {
		case rc.Sign() < 0 && e.canIncrease(c):
			if e.free[c] || e.ub[c] == nil {
				return nil, nil, false
			}
			delta = new(big.Rat).Sub(e.ub[c], e.nonbasicValue(c))
		case rc.Sign() > 0 && e.canDecrease(c):
			if e.free[c] || e.lb[c] == nil {
				return nil, nil, false
			}
			delta = new(big.Rat).Sub(e.lb[c], e.nonbasicValue(c))
		default:
			continue
		}
		lb.Add(lb, new(big.Rat).Mul(rc, delta))
	}
	return lb, ub, true
}

// chooseOptimalEntering applies Bland's rule (lowest index among improving
// candidates) to a minimisation objective: a non-basic column at its lower
// bound (or free) with negative reduced cost can improve by increasing; one
// at its upper bound with positive reduced cost can improve by decreasing.
func (e *Exact) chooseOptimalEntering(reduced []*big.Rat) (col int, moveUp bool) {
	for c, rc := range reduced {
		if e.isBasic(c) {
			continue
		}
		if rc.Sign() < 0 && e.canIncrease(c) {
			return c, true
		}
		if rc.Sign() > 0 && e.canDecrease(c) {
			return c, false
		}
	}
	return -1, false
}

// pivotOrFlip moves the entering column in the given direction. If the
// ratio test finds a basic variable hitting one of its own bounds first,
// the basis swaps (entering becomes basic, that row's old basic column
// becomes non-basic sitting at the bound it hit). If instead the entering
// column reaches its own opposite bound first, only its atUpper flag flips
// and the basis is unchanged. Returns false if the direction is unbounded.
func (e *Exact) pivotOrFlip(enter int, moveUp bool) bool {
	step := e.ratioTest(enter, moveUp)
	if step == nil {
		return false // unbounded
	}
	if step.limitRow == -1 {
		e.atUpper[enter] = !e.atUpper[enter]
		return true
	}
	e.pivot(step.limitRow, enter, step.leavingAtUpper)
	return true
}

// ratioStep is the outcome of a ratio test: how far the entering column can
// move, which row's basic variable binds first (-1 if the entering column's
// own opposite bound binds first), and, when a row binds, which of that
// row's bounds the displaced variable comes to rest on.
type ratioStep struct {
	limitRow       int
	leavingAtUpper bool
}

// ratioTest determines how far the entering column can move in the given
// direction before some basic variable, or the entering column's own
// opposite bound, is reached. A nil return means the direction is
// unbounded.
func (e *Exact) ratioTest(enter int, moveUp bool) *ratioStep {
	dir := one
	if !moveUp {
		dir = new(big.Rat).Neg(one)
	}

	var limit *big.Rat
	result := &ratioStep{limitRow: -1}

	if !e.free[enter] {
		if moveUp && e.ub[enter] != nil {
			limit = new(big.Rat).Sub(e.ub[enter], e.nonbasicValue(enter))
		} else if !moveUp && e.lb[enter] != nil {
			limit = new(big.Rat).Sub(e.nonbasicValue(enter), e.lb[enter])
		}
	}

	for r, basicCol := range e.basis {
		coef := e.tableau[r][enter]
		if coef.Sign() == 0 {
			continue
		}
		// basic = rhs - coef*value(enter) (plus other nonbasic terms held
		// fixed); d(basic)/d(enter) = -coef*dir.
		rate := new(big.Rat).Mul(coef, dir)
		rate.Neg(rate)
		if rate.Sign() == 0 {
			continue
		}
		v := e.basicValue(r)
		var room *big.Rat
		var hitsUpper bool
		// A basic variable outside its bounds (Phase 1) stops at the bound
		// it moves back through; otherwise at the bound it moves toward.
		if rate.Sign() > 0 {
			switch {
			case e.lb[basicCol] != nil && v.Cmp(e.lb[basicCol]) < 0:
				room = new(big.Rat).Sub(e.lb[basicCol], v)
				hitsUpper = false
			case e.ub[basicCol] != nil:
				room = new(big.Rat).Sub(e.ub[basicCol], v)
				hitsUpper = true
			default:
				continue
			}
		} else {
			switch {
			case e.ub[basicCol] != nil && v.Cmp(e.ub[basicCol]) > 0:
				room = new(big.Rat).Sub(v, e.ub[basicCol])
				hitsUpper = true
			case e.lb[basicCol] != nil:
				room = new(big.Rat).Sub(v, e.lb[basicCol])
				hitsUpper = false
			default:
				continue
			}
		}
		if room.Sign() < 0 {
			room = new(big.Rat)
		}
		step := new(big.Rat).Quo(room, new(big.Rat).Abs(rate))
		if limit == nil || step.Cmp(limit) < 0 || (step.Cmp(limit) == 0 && (result.limitRow == -1 || basicCol < e.basis[result.limitRow])) {
			limit = step
			result.limitRow = r
			result.leavingAtUpper = hitsUpper
		}
	}

	if limit == nil {
		return nil
	}
	return result
}

// pivot performs Gauss-Jordan elimination to bring enter into the basis in
// place of the current basic variable of row, which becomes non-basic at
// leavingAtUpper's bound.
func (e *Exact) pivot(row, enter int, leavingAtUpper bool) {
	pivotVal := new(big.Rat).Set(e.tableau[row][enter])
	pivotRow := e.tableau[row]
	for c := range pivotRow {
		pivotRow[c].Quo(pivotRow[c], pivotVal)
	}
	e.rhs[row].Quo(e.rhs[row], pivotVal)

	for r := range e.tableau {
		if r == row {
			continue
		}
		factor := new(big.Rat).Set(e.tableau[r][enter])
		if factor.Sign() == 0 {
			continue
		}
		for c := range e.tableau[r] {
			e.tableau[r][c].Sub(e.tableau[r][c], new(big.Rat).Mul(factor, pivotRow[c]))
		}
		e.rhs[r].Sub(e.rhs[r], new(big.Rat).Mul(factor, e.rhs[row]))
	}

	leaving := e.basis[row]
	e.atUpper[leaving] = leavingAtUpper
	e.basis[row] = enter
}
