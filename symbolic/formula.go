package symbolic

import (
	"fmt"
	"math/big"
)

// Formula represents the relation `lhs kind rhs`, where rhs is a rational
// constant. Formulas are value types built exclusively through the
// relational constructors below, which canonicalize so that when both
// operands carry variables the rhs becomes 0, and when exactly one operand
// is a literal the literal moves to rhs (possibly negating the kind).
type Formula struct {
	lhs  Expression
	kind FormulaKind
	rhs  *big.Rat
}

// NewFormula builds lhs kind rhs directly, without any canonicalization.
func NewFormula(lhs Expression, kind FormulaKind, rhs *big.Rat) Formula {
	return Formula{lhs: lhs.Clone(), kind: kind, rhs: new(big.Rat).Set(rhs)}
}

func (f Formula) Expression() Expression { return f.lhs }
func (f Formula) Kind() FormulaKind      { return f.kind }
func (f Formula) Rhs() *big.Rat          { return new(big.Rat).Set(f.rhs) }

// Compare builds `lhs kind rhs` where both sides are expressions, moving rhs
// to the left and zeroing the constant.
func Compare(lhs Expression, kind FormulaKind, rhs Expression) Formula {
	return NewFormula(lhs.Minus(rhs), kind, big.NewRat(0, 1))
}

// CompareValue builds `lhs kind rhs` where rhs is already a literal.
func CompareValue(lhs Expression, kind FormulaKind, rhs *big.Rat) Formula {
	return NewFormula(lhs, kind, rhs)
}

// ValueCompare builds `lhs kind rhs` where lhs is a literal; the comparison
// is flipped to keep the expression on the left (k < E becomes E > k).
func ValueCompare(lhs *big.Rat, kind FormulaKind, rhs Expression) Formula {
	return NewFormula(rhs, kind.Negate(), lhs)
}

func (e Expression) EQ(o Expression) Formula  { return Compare(e, Eq, o) }
func (e Expression) NEQ(o Expression) Formula { return Compare(e, Neq, o) }
func (e Expression) LT(o Expression) Formula  { return Compare(e, Lt, o) }
func (e Expression) LEQ(o Expression) Formula { return Compare(e, Leq, o) }
func (e Expression) GT(o Expression) Formula  { return Compare(e, Gt, o) }
func (e Expression) GEQ(o Expression) Formula { return Compare(e, Geq, o) }

func (e Expression) EQValue(rhs *big.Rat) Formula  { return CompareValue(e, Eq, rhs) }
func (e Expression) NEQValue(rhs *big.Rat) Formula { return CompareValue(e, Neq, rhs) }
func (e Expression) LTValue(rhs *big.Rat) Formula  { return CompareValue(e, Lt, rhs) }
func (e Expression) LEQValue(rhs *big.Rat) Formula { return CompareValue(e, Leq, rhs) }
func (e Expression) GTValue(rhs *big.Rat) Formula  { return CompareValue(e, Gt, rhs) }
func (e Expression) GEQValue(rhs *big.Rat) Formula { return CompareValue(e, Geq, rhs) }

// Expr converts v into the expression 1*v, for use with Expression-level
// relational methods.
func (v Variable) Expr() Expression { return FromVariable(v) }

func (v Variable) EQ(o Variable) Formula  { return v.Expr().EQ(o.Expr()) }
func (v Variable) NEQ(o Variable) Formula { return v.Expr().NEQ(o.Expr()) }
func (v Variable) LT(o Variable) Formula  { return v.Expr().LT(o.Expr()) }
func (v Variable) LEQ(o Variable) Formula { return v.Expr().LEQ(o.Expr()) }
func (v Variable) GT(o Variable) Formula  { return v.Expr().GT(o.Expr()) }
func (v Variable) GEQ(o Variable) Formula { return v.Expr().GEQ(o.Expr()) }

func (v Variable) EQValue(rhs *big.Rat) Formula  { return v.Expr().EQValue(rhs) }
func (v Variable) NEQValue(rhs *big.Rat) Formula { return v.Expr().NEQValue(rhs) }
func (v Variable) LTValue(rhs *big.Rat) Formula  { return v.Expr().LTValue(rhs) }
func (v Variable) LEQValue(rhs *big.Rat) Formula { return v.Expr().LEQValue(rhs) }
func (v Variable) GTValue(rhs *big.Rat) Formula  { return v.Expr().GTValue(rhs) }
func (v Variable) GEQValue(rhs *big.Rat) Formula { return v.Expr().GEQValue(rhs) }

// Substitute applies sigma to the formula's expression, leaving kind and rhs
// unchanged.
func (f Formula) Substitute(sigma map[Variable]Variable) Formula {
	return NewFormula(f.lhs.Substitute(sigma), f.kind, f.rhs)
}

// Evaluate computes lhs.Evaluate(env) kind rhs.
func (f Formula) Evaluate(env map[Variable]*big.Rat) bool {
	v := f.lhs.Evaluate(env)
	c := v.Cmp(f.rhs)
	switch f.kind {
	case Eq:
		return c == 0
	case Neq:
		return c != 0
	case Lt:
		return c < 0
	case Leq:
		return c <= 0
	case Gt:
		return c > 0
	case Geq:
		return c >= 0
	default:
		fail("Formula.Evaluate", "unreachable: unknown kind %d", int(f.kind))
		return false
	}
}

// EqualTo reports structural equality, comparing kind, rhs and expression in
// that order.
func (f Formula) EqualTo(o Formula) bool {
	return f.kind == o.kind && f.rhs.Cmp(o.rhs) == 0 && f.lhs.EqualTo(o.lhs)
}

// Less orders formulas lexicographically on (kind, rhs, expression).
func (f Formula) Less(o Formula) bool {
	if f.kind != o.kind {
		return f.kind < o.kind
	}
	if c := f.rhs.Cmp(o.rhs); c != 0 {
		return c < 0
	}
	return f.lhs.Less(o.lhs)
}

func (f Formula) String() string {
	return fmt.Sprintf("%s %s %s", f.lhs.String(), f.kind.String(), f.rhs.RatString())
}
