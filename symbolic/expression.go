package symbolic

import (
	"math/big"
	"sort"
	"strings"
	"sync/atomic"
)

// Addend is a (Variable, coefficient) pair, the building block of an
// Expression.
type Addend struct {
	Var   Variable
	Coeff *big.Rat
}

// addendCell is the copy-on-write storage shared by Expression values.
// Expression.Clone shares the cell and bumps refs; any mutating method
// clones the map first if refs > 1, mirroring the source's intrusive_ptr
// reference counting.
type addendCell struct {
	refs    int32
	addends map[Variable]*big.Rat
}

func newCell(addends map[Variable]*big.Rat) *addendCell {
	if addends == nil {
		addends = map[Variable]*big.Rat{}
	}
	return &addendCell{refs: 1, addends: addends}
}

// Expression represents a linear form sum(c_i * x_i) over an ordered set of
// variables. The zero Expression is not usable; construct with NewExpression
// or one of its variants.
type Expression struct {
	cell *addendCell
}

// NewExpression returns the empty expression (identically zero).
func NewExpression() Expression { return Expression{cell: newCell(nil)} }

// FromVariable returns the expression 1*v.
func FromVariable(v Variable) Expression {
	return FromAddend(Addend{Var: v, Coeff: big.NewRat(1, 1)})
}

// FromAddend returns the expression consisting of a single addend.
func FromAddend(a Addend) Expression {
	e := NewExpression()
	if a.Coeff.Sign() != 0 {
		e.cell.addends[a.Var] = new(big.Rat).Set(a.Coeff)
	}
	return e
}

// FromAddends builds an expression from a set of addends, dropping any whose
// coefficient is zero.
func FromAddends(addends []Addend) Expression {
	e := NewExpression()
	for _, a := range addends {
		if a.Coeff.Sign() == 0 {
			continue
		}
		if cur, ok := e.cell.addends[a.Var]; ok {
			cur.Add(cur, a.Coeff)
			if cur.Sign() == 0 {
				delete(e.cell.addends, a.Var)
			}
		} else {
			e.cell.addends[a.Var] = new(big.Rat).Set(a.Coeff)
		}
	}
	return e
}

// Clone returns an Expression that shares the current storage; the shared
// cell's refcount is incremented. The returned value and e are both safe to
// keep using: the first one to be mutated triggers a private copy.
func (e Expression) Clone() Expression {
	atomic.AddInt32(&e.cell.refs, 1)
	return Expression{cell: e.cell}
}

// own returns a cell exclusively owned by e, cloning the underlying map if
// it is currently shared with another Expression.
func (e *Expression) own() *addendCell {
	if atomic.LoadInt32(&e.cell.refs) == 1 {
		return e.cell
	}
	cloned := make(map[Variable]*big.Rat, len(e.cell.addends))
	for v, c := range e.cell.addends {
		cloned[v] = new(big.Rat).Set(c)
	}
	atomic.AddInt32(&e.cell.refs, -1)
	e.cell = newCell(cloned)
	return e.cell
}

// Add updates addends[v] += coeff in place, cloning first if this
// Expression's storage is shared. A resulting zero coefficient removes the
// entry.
func (e *Expression) Add(v Variable, coeff *big.Rat) *Expression {
	if coeff.Sign() == 0 {
		return e
	}
	c := e.own()
	if cur, ok := c.addends[v]; ok {
		cur.Add(cur, coeff)
		if cur.Sign() == 0 {
			delete(c.addends, v)
		}
	} else {
		c.addends[v] = new(big.Rat).Set(coeff)
	}
	return e
}

// Subtract updates addends[v] -= coeff in place.
func (e *Expression) Subtract(v Variable, coeff *big.Rat) *Expression {
	return e.Add(v, new(big.Rat).Neg(coeff))
}

// MulAssign multiplies every coefficient by k in place.
func (e *Expression) MulAssign(k *big.Rat) *Expression {
	if k.Sign() == 0 {
		c := e.own()
		c.addends = map[Variable]*big.Rat{}
		return e
	}
	if k.Cmp(big.NewRat(1, 1)) == 0 {
		return e
	}
	c := e.own()
	for _, coeff := range c.addends {
		coeff.Mul(coeff, k)
	}
	return e
}

// DivAssign divides every coefficient by k in place. Division by zero is a
// fail-fast error.
func (e *Expression) DivAssign(k *big.Rat) *Expression {
	if k.Sign() == 0 {
		fail("DivAssign", "division by zero")
	}
	if k.Cmp(big.NewRat(1, 1)) == 0 {
		return e
	}
	c := e.own()
	for _, coeff := range c.addends {
		coeff.Quo(coeff, k)
	}
	return e
}

// Plus returns e + o without mutating either operand.
func (e Expression) Plus(o Expression) Expression {
	result := e.Clone()
	for v, c := range o.cell.addends {
		result.Add(v, c)
	}
	return result
}

// Minus returns e - o without mutating either operand.
func (e Expression) Minus(o Expression) Expression {
	result := e.Clone()
	for v, c := range o.cell.addends {
		result.Subtract(v, c)
	}
	return result
}

// Neg returns -e without mutating e.
func (e Expression) Neg() Expression {
	result := e.Clone()
	result.MulAssign(big.NewRat(-1, 1))
	return result
}

// Addends returns the expression's (Variable, coefficient) pairs in
// ascending Variable order.
func (e Expression) Addends() []Addend {
	out := make([]Addend, 0, len(e.cell.addends))
	for v, c := range e.cell.addends {
		out = append(out, Addend{Var: v, Coeff: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var.Less(out[j].Var) })
	return out
}

// Variables returns the variables appearing in the expression, in ascending
// id order.
func (e Expression) Variables() []Variable {
	addends := e.Addends()
	out := make([]Variable, len(addends))
	for i, a := range addends {
		out[i] = a.Var
	}
	return out
}

// Len returns the number of non-zero addends.
func (e Expression) Len() int { return len(e.cell.addends) }

// Coefficient returns the coefficient of v in e, or 0 if v does not appear.
func (e Expression) Coefficient(v Variable) *big.Rat {
	if c, ok := e.cell.addends[v]; ok {
		return new(big.Rat).Set(c)
	}
	return big.NewRat(0, 1)
}

// EqualTo reports structural equality: the same variables with the same
// coefficients.
func (e Expression) EqualTo(o Expression) bool {
	if len(e.cell.addends) != len(o.cell.addends) {
		return false
	}
	for v, c := range e.cell.addends {
		oc, ok := o.cell.addends[v]
		if !ok || c.Cmp(oc) != 0 {
			return false
		}
	}
	return true
}

// Less orders expressions lexicographically by their ordered addend lists,
// comparing first by variable id then by coefficient.
func (e Expression) Less(o Expression) bool {
	a, b := e.Addends(), o.Addends()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Var.ID() != b[i].Var.ID() {
			return a[i].Var.Less(b[i].Var)
		}
		if c := a[i].Coeff.Cmp(b[i].Coeff); c != 0 {
			return c < 0
		}
	}
	return len(a) < len(b)
}

// Hash derives a hash from the addend map contents.
func (e Expression) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, a := range e.Addends() {
		h ^= a.Var.Hash()
		h *= 1099511628211
		for _, b := range []byte(a.Coeff.RatString()) {
			h ^= uint64(b)
			h *= 1099511628211
		}
	}
	return h
}

// Evaluate substitutes each variable's value from env and sums the result.
// A variable present in the expression but absent from env is a fail-fast
// error.
func (e Expression) Evaluate(env map[Variable]*big.Rat) *big.Rat {
	sum := big.NewRat(0, 1)
	for _, a := range e.Addends() {
		val, ok := env[a.Var]
		if !ok {
			fail("Evaluate", "no value given for variable %s", a.Var)
		}
		sum.Add(sum, new(big.Rat).Mul(a.Coeff, val))
	}
	return sum
}

// Substitute returns a new expression where every variable is rewritten
// through sigma (identity if absent), coalescing additively when two
// distinct originals map to the same image.
func (e Expression) Substitute(sigma map[Variable]Variable) Expression {
	out := NewExpression()
	for _, a := range e.Addends() {
		target := a.Var
		if img, ok := sigma[a.Var]; ok {
			target = img
		}
		out.Add(target, a.Coeff)
	}
	return out
}

func (e Expression) String() string {
	addends := e.Addends()
	if len(addends) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, a := range addends {
		if i > 0 {
			if a.Coeff.Sign() < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		} else if a.Coeff.Sign() < 0 {
			sb.WriteString("-")
		}
		abs := new(big.Rat).Abs(a.Coeff)
		if abs.Cmp(big.NewRat(1, 1)) != 0 {
			sb.WriteString(abs.RatString())
			sb.WriteString("*")
		}
		sb.WriteString(a.Var.Name())
	}
	return sb.String()
}
