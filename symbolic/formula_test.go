package symbolic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormulaKindNegateInvolution(t *testing.T) {
	for _, k := range []FormulaKind{Eq, Neq, Lt, Leq, Gt, Geq} {
		assert.Equal(t, k, k.Negate().Negate())
	}
}

func TestFormulaKindNotInvolution(t *testing.T) {
	for _, k := range []FormulaKind{Eq, Neq, Lt, Leq, Gt, Geq} {
		assert.Equal(t, k, k.Not().Not())
	}
}

func TestFormulaKindNegateSwaps(t *testing.T) {
	assert.Equal(t, Lt, Gt.Negate())
	assert.Equal(t, Gt, Lt.Negate())
	assert.Equal(t, Leq, Geq.Negate())
	assert.Equal(t, Geq, Leq.Negate())
	assert.Equal(t, Eq, Eq.Negate())
	assert.Equal(t, Neq, Neq.Negate())
}

func TestValueCompareFlipsSides(t *testing.T) {
	x := NewVariable("x")
	e := FromVariable(x)

	// k < E  becomes  E > k
	f := ValueCompare(r(3, 1), Lt, e)
	assert.True(t, f.Expression().EqualTo(e))
	assert.Equal(t, Gt, f.Kind())
	assert.True(t, f.Rhs().Cmp(r(3, 1)) == 0)
}

func TestCompareMovesDifferenceToLhs(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	f := Compare(FromVariable(x), Eq, FromVariable(y))

	assert.True(t, f.Rhs().Cmp(r(0, 1)) == 0)
	assert.True(t, f.Expression().Coefficient(x).Cmp(r(1, 1)) == 0)
	assert.True(t, f.Expression().Coefficient(y).Cmp(r(-1, 1)) == 0)
}

func TestFormulaEvaluateMatchesKind(t *testing.T) {
	x := NewVariable("x")
	env := map[Variable]*big.Rat{x: r(5, 1)}

	assert.True(t, x.LTValue(r(10, 1)).Evaluate(env))
	assert.False(t, x.LTValue(r(1, 1)).Evaluate(env))
	assert.True(t, x.EQValue(r(5, 1)).Evaluate(env))
	assert.True(t, x.GEQValue(r(5, 1)).Evaluate(env))
	assert.True(t, x.NEQValue(r(1, 1)).Evaluate(env))
}

func TestFormulaSubstitute(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	f := x.LEQValue(r(4, 1))

	sub := f.Substitute(map[Variable]Variable{x: y})
	assert.True(t, sub.Expression().EqualTo(FromVariable(y)))
	assert.Equal(t, f.Kind(), sub.Kind())
}

func TestFormulaEqualToAndLess(t *testing.T) {
	x := NewVariable("x")
	a := x.LTValue(r(1, 1))
	b := x.LTValue(r(1, 1))
	c := x.LTValue(r(2, 1))

	assert.True(t, a.EqualTo(b))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
}
