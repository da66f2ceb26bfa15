/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

/*
Package delpi models and solves linear programming problems exactly, over
arbitrary-precision rationals, with optional delta-relaxation: instead of
insisting on an exact optimum, a caller may ask for a solution known to be
within a given precision of optimal, which the underlying simplex can reach
faster.

	model, _ := delpi.NewModel("diet", delpi.Minimize)
	bread := symbolic.NewVariable("bread")
	milk := symbolic.NewVariable("milk")
	model.AddColumnWithBounds(bread, big.NewRat(0, 1), nil)
	model.AddColumnWithBounds(milk, big.NewRat(0, 1), nil)
	model.AddRowWithAddends(
		[]symbolic.Addend{{Var: bread, Coeff: big.NewRat(1, 1)}, {Var: milk, Coeff: big.NewRat(1, 1)}},
		big.NewRat(4, 1), nil,
	)
	model.Minimise(bread.Expr().Plus(milk.Expr()))
	res, _ := model.Solve(nil, true)
*/
package delpi

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/costela/delpi/backend"
	"github.com/costela/delpi/backend/relax"
	"github.com/costela/delpi/symbolic"
)

// Sense is the LP's optimisation direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}
	return "minimize"
}

// PartialSolveCallback is invoked whenever the solver narrows the objective
// bound during a delta search, mirroring the original's PartialSolveCallback.
// Returning false asks the solver to stop early with whatever bound it has.
type PartialSolveCallback func(m *Model, result LpResult, objLB, objUB, delta *big.Rat) bool

// SolveCallback is invoked once, after Solve concludes.
type SolveCallback func(m *Model, result LpResult, objValue, delta *big.Rat)

// Model is a linear program under construction: a set of columns (one per
// decision variable), a set of rows (constraints), an objective, and the
// bookkeeping needed to map between symbolic.Variable and the backend's
// plain column indices. All exported methods are safe for concurrent use.
type Model struct {
	mu sync.RWMutex

	name   string
	sense  Sense
	logger Logger
	config Config

	backend backend.Backend

	varToCol map[symbolic.Variable]int
	colToVar []symbolic.Variable

	info map[string]string

	solveCB        SolveCallback
	partialSolveCB PartialSolveCallback

	lastResult    LpResult
	hasSolution   bool
}

// NewModel instantiates a new linear programming model, providing a name
// (purely informational) and an optimisation direction.
func NewModel(name string, sense Sense, opts ...Option) (*Model, error) {
	model := &Model{
		name:     name,
		sense:    sense,
		logger:   noopLogger{},
		varToCol: map[symbolic.Variable]int{},
		info:     map[string]string{},
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return nil, errors.Wrap(err, "applying model option")
		}
	}

	if model.backend == nil {
		model.backend = backend.NewExact()
	}
	applyWarmStart(model.backend, model.config)

	return model, nil
}

// applyWarmStart configures b's warm-start relaxer when cfg asks for one and
// b is the default backend.Exact implementation (custom backends injected
// via WithBackend are responsible for their own warm-start handling, if
// any).
func applyWarmStart(b backend.Backend, cfg Config) {
	if !cfg.WarmStart {
		return
	}
	if ex, ok := b.(*backend.Exact); ok {
		ex.SetRelaxer(relax.GonumRelaxer{})
	}
}

// Clone returns a deep copy of the model: a fresh backend seeded with the
// same columns, rows and coefficients, and its own copy of the variable
// mapping. The clone does not share the original's solved state.
func (m *Model) Clone() *Model {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := &Model{
		name:     m.name,
		sense:    m.sense,
		logger:   m.logger,
		config:   m.config,
		backend:  backend.NewExact(),
		varToCol: make(map[symbolic.Variable]int, len(m.varToCol)),
		colToVar: append([]symbolic.Variable(nil), m.colToVar...),
		info:     make(map[string]string, len(m.info)),
	}
	for v, c := range m.varToCol {
		clone.varToCol[v] = c
	}
	for k, v := range m.info {
		clone.info[k] = v
	}

	for c := range m.colToVar {
		lb, ub := m.backend.Bound(c)
		clone.backend.AddColumn(backend.Column{Obj: m.backend.Objective(c), Lb: lb, Ub: ub})
	}
	for r := 0; r < m.backend.NumRows(); r++ {
		lb, ub := m.backend.RowBound(r)
		clone.backend.AddRow(backend.Row{Lb: lb, Ub: ub})
		for c := range m.colToVar {
			if coef := m.backend.Coefficient(r, c); coef.Sign() != 0 {
				clone.backend.SetCoefficient(r, c, coef)
			}
		}
	}

	return clone
}

// Name returns the name provided upon instantiation of a model.
func (m *Model) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

// Direction returns the model's current optimisation direction.
func (m *Model) Direction() Sense {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sense
}

// SetDirection changes the direction of the model's optimisation.
func (m *Model) SetDirection(sense Sense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sense = sense
}

// Config returns a pointer to the model's configuration, so callers (in
// particular the mps driver's `@set-option` handling) can mutate it in
// place.
func (m *Model) Config() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &m.config
}

// VariableCount returns the number of columns in the model.
func (m *Model) VariableCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.colToVar)
}

// Variables returns a new slice with the model's variables, in column
// order. Mutating the returned slice does not affect the model.
func (m *Model) Variables() []symbolic.Variable {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]symbolic.Variable(nil), m.colToVar...)
}

// AddColumn adds a column linked to v with lb=0, ub=+inf and a zero
// objective coefficient, and returns its index. It panics if v is already a
// column of this model.
func (m *Model) AddColumn(v symbolic.Variable) int {
	return m.AddColumnFull(v, new(big.Rat), new(big.Rat), nil)
}

// AddColumnWithObjective adds a column linked to v with lb=0, ub=+inf and
// the given minimisation-objective coefficient. It panics if v is already a
// column of this model.
func (m *Model) AddColumnWithObjective(v symbolic.Variable, obj *big.Rat) int {
	return m.AddColumnFull(v, obj, new(big.Rat), nil)
}

// AddColumnWithBounds adds a column bounded to [lb, ub] with a zero
// objective coefficient. A nil bound is unbounded in that direction. It
// panics if v is already a column of this model.
func (m *Model) AddColumnWithBounds(v symbolic.Variable, lb, ub *big.Rat) int {
	return m.AddColumnFull(v, new(big.Rat), lb, ub)
}

// AddColumnFull adds a column linked to var with the given objective
// coefficient and bounds, and returns its index. It panics if v is already
// mapped to a column of this model.
func (m *Model) AddColumnFull(v symbolic.Variable, obj, lb, ub *big.Rat) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.varToCol[v]; ok {
		panic(fmt.Sprintf("delpi: variable %s is already a column of this model", v.Name()))
	}

	idx := m.backend.AddColumn(backend.Column{Obj: obj, Lb: lb, Ub: ub})
	m.varToCol[v] = idx
	m.colToVar = append(m.colToVar, v)
	return idx
}

// SetObjective sets the objective coefficient of v to value, for
// minimisation. It panics if v is not a column of this model.
func (m *Model) SetObjective(v symbolic.Variable, value *big.Rat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	col := m.mustColumn(v)
	m.backend.SetObjective(col, value)
}

// SetBound sets the bounds of v's column to [lb, ub]. A nil bound is
// unbounded in that direction. It panics if v is not a column of this
// model.
func (m *Model) SetBound(v symbolic.Variable, lb, ub *big.Rat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	col := m.mustColumn(v)
	m.backend.SetBound(col, lb, ub)
}

// Bound returns the current bounds of v's column. It panics if v is not a
// column of this model.
func (m *Model) Bound(v symbolic.Variable) (lb, ub *big.Rat) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	col := m.mustColumn(v)
	return m.backend.Bound(col)
}

func (m *Model) mustColumn(v symbolic.Variable) int {
	col, ok := m.varToCol[v]
	if !ok {
		panic(fmt.Sprintf("delpi: variable %s is not a column of this model", v.Name()))
	}
	return col
}

// ConstraintCount returns the number of rows in the model.
func (m *Model) ConstraintCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.backend.NumRows()
}

// Column reports the variable linked to column i, its objective
// coefficient and its bounds, as last set. It panics if i is out of range.
func (m *Model) Column(i int) (v symbolic.Variable, obj, lb, ub *big.Rat) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.colToVar) {
		panic(fmt.Sprintf("delpi: column index %d out of range [0, %d)", i, len(m.colToVar)))
	}
	v = m.colToVar[i]
	obj = m.backend.Objective(i)
	lb, ub = m.backend.Bound(i)
	return v, obj, lb, ub
}

// Row reports the non-zero addends and bounds of row i, as last set. It
// panics if i is out of range.
func (m *Model) Row(i int) (addends []symbolic.Addend, lb, ub *big.Rat) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= m.backend.NumRows() {
		panic(fmt.Sprintf("delpi: row index %d out of range [0, %d)", i, m.backend.NumRows()))
	}
	lb, ub = m.backend.RowBound(i)
	return m.rowAddendsLocked(i), lb, ub
}

// rowAddendsLocked collects row r's non-zero coefficients as addends. The
// caller must already hold m.mu.
func (m *Model) rowAddendsLocked(r int) []symbolic.Addend {
	var addends []symbolic.Addend
	for c, v := range m.colToVar {
		coef := m.backend.Coefficient(r, c)
		if coef.Sign() == 0 {
			continue
		}
		addends = append(addends, symbolic.Addend{Var: v, Coeff: coef})
	}
	return addends
}

// Constraints rebuilds the model's rows as symbolic.Formula values, in row
// order: a row with lb == ub becomes a single Eq formula; a row bounded on
// only one side becomes a single Geq or Leq formula; a genuine two-sided
// range row becomes both a Geq and a Leq formula over the same expression,
// since Formula carries only one relational kind and rhs.
func (m *Model) Constraints() []symbolic.Formula {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var formulas []symbolic.Formula
	for r := 0; r < m.backend.NumRows(); r++ {
		expr := symbolic.FromAddends(m.rowAddendsLocked(r))
		lb, ub := m.backend.RowBound(r)

		switch {
		case lb != nil && ub != nil && lb.Cmp(ub) == 0:
			formulas = append(formulas, expr.EQValue(lb))
		default:
			if lb != nil {
				formulas = append(formulas, expr.GEQValue(lb))
			}
			if ub != nil {
				formulas = append(formulas, expr.LEQValue(ub))
			}
		}
	}
	return formulas
}

// AddRow adds an empty row bounded to [lb, ub] and returns its index;
// coefficients are filled in afterwards with SetCoefficient. A nil bound is
// unbounded in that direction; lb == ub is an equality row.
func (m *Model) AddRow(lb, ub *big.Rat) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backend.AddRow(backend.Row{Lb: lb, Ub: ub})
}

// AddRowWithAddends adds a row bounded to [lb, ub] whose coefficients are
// given directly, and returns its index. It panics if any addend's
// variable is not already a column of this model.
//
// When addends consists of a single entry (v, a) with a non-zero coefficient, the
// simple-bound shortcut applies: rather than creating a row, the equivalent
// interval on v is intersected into v's existing column bounds via
// SetBound, and no row is created. The returned index then refers to the
// previously added row (NumRows()-1), per that shortcut's contract.
func (m *Model) AddRowWithAddends(addends []symbolic.Addend, lb, ub *big.Rat) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(addends) == 1 && addends[0].Coeff.Sign() != 0 {
		return m.addSimpleBoundLocked(addends[0], lb, ub)
	}

	coeffs := make(map[int]*big.Rat, len(addends))
	for _, a := range addends {
		coeffs[m.mustColumn(a.Var)] = a.Coeff
	}
	return m.backend.AddRowWithCoefficients(coeffs, backend.Row{Lb: lb, Ub: ub})
}

// addSimpleBoundLocked implements the simple-bound shortcut: a single-addend
// row (v, a) with bounds [lb, ub] is equivalent to the interval [lb/a, ub/a]
// on v (or [ub/a, lb/a] when a < 0, since dividing by a negative flips the
// interval), intersected with v's current bounds.
func (m *Model) addSimpleBoundLocked(a symbolic.Addend, lb, ub *big.Rat) int {
	col := m.mustColumn(a.Var)

	var newLb, newUb *big.Rat
	if a.Coeff.Sign() > 0 {
		newLb, newUb = divBound(lb, a.Coeff), divBound(ub, a.Coeff)
	} else {
		newLb, newUb = divBound(ub, a.Coeff), divBound(lb, a.Coeff)
	}

	curLb, curUb := m.backend.Bound(col)
	m.backend.SetBound(col, tighterLower(curLb, newLb), tighterUpper(curUb, newUb))

	return m.backend.NumRows() - 1
}

func divBound(v, a *big.Rat) *big.Rat {
	if v == nil {
		return nil
	}
	return new(big.Rat).Quo(v, a)
}

// tighterLower returns the larger (tighter) of two lower bounds, treating
// nil as -infinity.
func tighterLower(a, b *big.Rat) *big.Rat {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// tighterUpper returns the smaller (tighter) of two upper bounds, treating
// nil as +infinity.
func tighterUpper(a, b *big.Rat) *big.Rat {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// AddRowFormula adds a row derived from a symbolic.Formula constraint of
// the shape `expr kind rhs`. Only Eq, Leq and Geq are accepted, per the
// formula-to-row rewrite: Neq cannot be expressed as a single linear row,
// and the strict senses Lt/Gt are not a first-class row concept at the
// backend level either; all three return an error rather than being
// silently relaxed. Like AddRowWithAddends, a formula that reduces to a
// single addend goes through the simple-bound shortcut instead of becoming
// a row.
func (m *Model) AddRowFormula(f symbolic.Formula) (int, error) {
	addends := f.Expression().Addends()
	rhs := f.Rhs()

	var lb, ub *big.Rat
	switch f.Kind() {
	case symbolic.Eq:
		lb, ub = rhs, rhs
	case symbolic.Leq:
		ub = rhs
	case symbolic.Geq:
		lb = rhs
	case symbolic.Neq:
		return 0, errors.New("delpi: a Neq formula cannot be expressed as a single LP row")
	case symbolic.Lt, symbolic.Gt:
		return 0, errors.Errorf("delpi: formula kind %v is not accepted by add_row; only Eq, Leq and Geq are", f.Kind())
	default:
		return 0, errors.Errorf("delpi: unsupported formula kind %v", f.Kind())
	}

	as := make([]symbolic.Addend, len(addends))
	copy(as, addends)
	return m.AddRowWithAddends(as, lb, ub), nil
}

// SetCoefficient sets the coefficient of v in row to value. It panics if v
// is not a column of this model.
func (m *Model) SetCoefficient(row int, v symbolic.Variable, value *big.Rat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	col := m.mustColumn(v)
	m.backend.SetCoefficient(row, col, value)
}

// Maximise sets the objective to maximise expr, subject to all existing
// constraints. Coefficients for variables not appearing in expr are left
// unchanged.
func (m *Model) Maximise(expr symbolic.Expression) {
	m.setObjectiveExpression(expr, Maximize)
}

// Minimise sets the objective to minimise expr, subject to all existing
// constraints. Coefficients for variables not appearing in expr are left
// unchanged.
func (m *Model) Minimise(expr symbolic.Expression) {
	m.setObjectiveExpression(expr, Minimize)
}

func (m *Model) setObjectiveExpression(expr symbolic.Expression, sense Sense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sense = sense
	for _, a := range expr.Addends() {
		col := m.mustColumn(a.Var)
		m.backend.SetObjective(col, a.Coeff)
	}
}

// Solve attempts to find an (exact, or delta-) optimal solution to the
// model. precision == nil falls back to the model's configured tolerance
// (Config.Precision, settable via WithRationalTolerance or :precision);
// zero, either passed directly or as that fallback, requires exact
// termination, while a positive precision allows the backend to return
// DeltaOptimal once it has certified a gap within it. If storeSolution is
// false, the solution is not retained but the verdict is still returned.
func (m *Model) Solve(precision *big.Rat, storeSolution bool) (*SolveResult, error) {
	return m.SolveWithContext(context.Background(), precision, storeSolution)
}

// SolveWithContext behaves like Solve but aborts if ctx is cancelled before
// the backend reaches a verdict.
func (m *Model) SolveWithContext(ctx context.Context, precision *big.Rat, storeSolution bool) (*SolveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	backendPrecision := precision
	if backendPrecision == nil {
		backendPrecision = m.config.Precision
	}
	if m.sense == Maximize {
		m.negateObjectiveLocked()
		defer m.negateObjectiveLocked()
	}

	var partial backend.PartialCallback
	if m.partialSolveCB != nil {
		partial = func(objLB, objUB, delta *big.Rat) bool {
			return m.partialSolveCB(m, DeltaOptimal, objLB, objUB, delta)
		}
	}

	res, gap, err := m.backend.Solve(ctx, backendPrecision, storeSolution, partial)
	if err != nil {
		m.lastResult = Error
		if m.solveCB != nil {
			m.solveCB(m, Error, nil, nil)
		}
		return nil, errors.Wrap(err, "solving model")
	}

	m.lastResult = fromBackendResult(res)
	m.hasSolution = storeSolution && (m.lastResult == Optimal || m.lastResult == DeltaOptimal)

	result := &SolveResult{model: m, result: m.lastResult, precision: gap}

	if m.solveCB != nil {
		obj := m.backend.ObjectiveValue()
		m.solveCB(m, m.lastResult, obj, gap)
	}

	return result, nil
}

// negateObjectiveLocked flips every column's objective coefficient in
// place; called twice around a maximising Solve (before, to hand the
// backend's minimisation engine `-c`, and after, via defer, to restore `c`)
// since backend.Backend only optimises for minimisation.
func (m *Model) negateObjectiveLocked() {
	for col := range m.colToVar {
		obj := m.backend.Objective(col)
		obj.Neg(obj)
		m.backend.SetObjective(col, obj)
	}
}

// Verify reports whether the model's stored solution satisfies every
// declared column bound and every row's two-sided bounds exactly. It
// returns false (not vacuously true) when no solution is currently stored.
func (m *Model) Verify() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasSolution {
		return false
	}
	sol := m.backend.Solution()
	for c := range m.colToVar {
		lb, ub := m.backend.Bound(c)
		if lb != nil && sol[c].Cmp(lb) < 0 {
			return false
		}
		if ub != nil && sol[c].Cmp(ub) > 0 {
			return false
		}
	}
	for r := 0; r < m.backend.NumRows(); r++ {
		lb, ub := m.backend.RowBound(r)
		val := m.evaluateRow(r, sol)
		if lb != nil && val.Cmp(lb) < 0 {
			return false
		}
		if ub != nil && val.Cmp(ub) > 0 {
			return false
		}
	}
	return true
}

func (m *Model) evaluateRow(row int, sol []*big.Rat) *big.Rat {
	sum := new(big.Rat)
	for c := range m.colToVar {
		coef := m.backend.Coefficient(row, c)
		if coef.Sign() == 0 {
			continue
		}
		sum.Add(sum, new(big.Rat).Mul(coef, sol[c]))
	}
	return sum
}

// SetSolveCallback registers cb to be invoked exactly once, after Solve
// concludes, mirroring the original's own single post-solve hook.
func (m *Model) SetSolveCallback(cb SolveCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.solveCB = cb
}

// SetPartialSolveCallback registers cb to be invoked by the backend during a
// long solve whenever it narrows the objective bracket, mirroring the
// original's own abort/partial-solution hook. Returning false from cb
// requests the solve to stop early and report DeltaOptimal with whatever
// bracket it has certified so far.
func (m *Model) SetPartialSolveCallback(cb PartialSolveCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partialSolveCB = cb
}

// SetInfo records an informational key/value pair, per the `* @set-info`
// records recognised by the mps driver.
func (m *Model) SetInfo(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info[key] = value
}

// GetInfo retrieves a previously recorded informational value.
func (m *Model) GetInfo(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.info[key]
}

// Expected returns the ":status" info key parsed as an LpResult, and
// whether it was present at all.
func (m *Model) Expected() (LpResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.info[":status"]
	if !ok {
		return Unsolved, false
	}
	for _, r := range []LpResult{Optimal, DeltaOptimal, Unbounded, Infeasible, Error} {
		if r.String() == raw {
			return r, true
		}
	}
	return Unsolved, false
}

// CheckAgainstExpected reports whether result is compatible with the
// ":status" info key collected while parsing, if any was collected: an
// exact Optimal is compatible with an expected DeltaOptimal and vice versa,
// but Infeasible/Unbounded/Error must match exactly.
func (m *Model) CheckAgainstExpected(result LpResult) bool {
	expected, ok := m.Expected()
	if !ok {
		return true
	}
	if expected == result {
		return true
	}
	optimalPair := map[LpResult]bool{Optimal: true, DeltaOptimal: true}
	return optimalPair[expected] && optimalPair[result]
}

// Dump writes a human-readable summary of the model's columns and rows
// through the configured Logger, for the `:produce-models` diagnostic
// option.
func (m *Model) Dump() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.logger.Infof("model %q (%s), %d columns, %d rows", m.name, m.sense, len(m.colToVar), m.backend.NumRows())
	for c, v := range m.colToVar {
		lb, ub := m.backend.Bound(c)
		m.logger.Debugf("  col %d: %s obj=%s lb=%s ub=%s", c, v.Name(),
			ratOrDash(m.backend.Objective(c)), ratOrDash(lb), ratOrDash(ub))
	}
	for r := 0; r < m.backend.NumRows(); r++ {
		lb, ub := m.backend.RowBound(r)
		m.logger.Debugf("  row %d: lb=%s ub=%s", r, ratOrDash(lb), ratOrDash(ub))
	}
}

func ratOrDash(r *big.Rat) string {
	if r == nil {
		return "-"
	}
	return r.RatString()
}
