package symbolic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r(n, d int64) *big.Rat { return big.NewRat(n, d) }

func TestExpressionDropsZeroCoefficients(t *testing.T) {
	x := NewVariable("x")
	e := FromAddend(Addend{Var: x, Coeff: r(0, 1)})
	assert.Equal(t, 0, e.Len())

	e2 := NewExpression()
	e2.Add(x, r(3, 1))
	e2.Subtract(x, r(3, 1))
	assert.Equal(t, 0, e2.Len())
}

func TestExpressionCloneIsCopyOnWrite(t *testing.T) {
	x := NewVariable("x")
	e1 := FromVariable(x)
	e2 := e1.Clone()

	e2.Add(x, r(1, 1))

	assert.True(t, e1.Coefficient(x).Cmp(r(1, 1)) == 0, "mutating the clone must not affect the original")
	assert.True(t, e2.Coefficient(x).Cmp(r(2, 1)) == 0)
}

func TestExpressionPlusMinusNeg(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")

	e := FromAddends([]Addend{{Var: x, Coeff: r(2, 1)}, {Var: y, Coeff: r(3, 1)}})
	sum := e.Plus(e)
	assert.True(t, sum.Coefficient(x).Cmp(r(4, 1)) == 0)

	diff := e.Minus(e)
	assert.Equal(t, 0, diff.Len())

	neg := e.Neg()
	assert.True(t, neg.Coefficient(x).Cmp(r(-2, 1)) == 0)
}

func TestExpressionMulDivRoundTrip(t *testing.T) {
	x := NewVariable("x")
	e := FromVariable(x)
	e.MulAssign(r(3, 1))
	e.DivAssign(r(3, 1))
	assert.True(t, e.Coefficient(x).Cmp(r(1, 1)) == 0)
}

func TestExpressionDivAssignByZeroPanics(t *testing.T) {
	x := NewVariable("x")
	e := FromVariable(x)
	assert.Panics(t, func() { e.DivAssign(r(0, 1)) })
}

func TestExpressionEqualToAndHash(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")

	e1 := FromAddends([]Addend{{Var: x, Coeff: r(1, 1)}, {Var: y, Coeff: r(2, 1)}})
	e2 := FromAddends([]Addend{{Var: y, Coeff: r(2, 1)}, {Var: x, Coeff: r(1, 1)}})

	require.True(t, e1.EqualTo(e2))
	assert.Equal(t, e1.Hash(), e2.Hash())
}

func TestExpressionEvaluateMissingVariablePanics(t *testing.T) {
	x := NewVariable("x")
	e := FromVariable(x)
	assert.Panics(t, func() { e.Evaluate(map[Variable]*big.Rat{}) })
}

func TestExpressionEvaluate(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	e := FromAddends([]Addend{{Var: x, Coeff: r(2, 1)}, {Var: y, Coeff: r(-1, 1)}})

	got := e.Evaluate(map[Variable]*big.Rat{x: r(5, 1), y: r(3, 1)})
	assert.True(t, got.Cmp(r(7, 1)) == 0)
}

func TestExpressionSubstituteIdentityIsNoOp(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	e := FromAddends([]Addend{{Var: x, Coeff: r(1, 1)}, {Var: y, Coeff: r(2, 1)}})

	identity := map[Variable]Variable{x: x, y: y}
	sub := e.Substitute(identity)

	assert.True(t, e.EqualTo(sub))
}

func TestExpressionSubstituteCoalescesOnCollision(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	z := NewVariable("z")
	e := FromAddends([]Addend{{Var: x, Coeff: r(1, 1)}, {Var: y, Coeff: r(2, 1)}})

	sub := e.Substitute(map[Variable]Variable{x: z, y: z})
	assert.True(t, sub.Coefficient(z).Cmp(r(3, 1)) == 0)
	assert.Equal(t, 1, sub.Len())
}
