package mps

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/delpi"
	"github.com/costela/delpi/symbolic"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func parse(t *testing.T, model *delpi.Model, src string) *Driver {
	t.Helper()
	d := NewDriver(model)
	require.NoError(t, d.Parse(strings.NewReader(src)))
	return d
}

// S1 — small feasibility problem.
func TestDriverSmallFeasibility(t *testing.T) {
	model, err := delpi.NewModel("s1", delpi.Minimize)
	require.NoError(t, err)

	parse(t, model, `NAME          S1
ROWS
 N  COST
 G  R1
COLUMNS
    X         COST            9.0   R1              1.0
    Y         COST            1.0   R1              1.0
RHS
    RHS       R1              10.0
BOUNDS
ENDATA
`)

	res, err := model.Solve(nil, true)
	require.NoError(t, err)
	assert.Equal(t, delpi.Optimal, res.Result())
	assert.Equal(t, 0, res.ObjectiveValue().Cmp(rat(10, 1)))
}

// S2 — RANGES on a G-sense row. R1 has a single addend, so the façade's
// simple-bound shortcut folds the resulting [1, 52] range directly into
// X1's column bounds instead of creating a row.
func TestDriverRangesGSense(t *testing.T) {
	model, err := delpi.NewModel("s2", delpi.Minimize)
	require.NoError(t, err)

	parse(t, model, `NAME
ROWS
 G  R1
COLUMNS
    X1        R1              1.0
RHS
    RHS       R1              1.0
RANGES
    RNG       R1              51.0
BOUNDS
 FR BND       X1
ENDATA
`)

	require.Equal(t, 0, model.ConstraintCount())
	assertBound(t, model, "X1", rat(1, 1), rat(52, 1))
}

// S3 — RANGES on an L-sense row; same single-addend shortcut as S2.
func TestDriverRangesLSense(t *testing.T) {
	model, err := delpi.NewModel("s3", delpi.Minimize)
	require.NoError(t, err)

	parse(t, model, `NAME
ROWS
 L  R1
COLUMNS
    X1        R1              1.0
RHS
    RHS       R1              1.0
RANGES
    RNG       R1              51.0
BOUNDS
 FR BND       X1
ENDATA
`)

	require.Equal(t, 0, model.ConstraintCount())
	assertBound(t, model, "X1", rat(-50, 1), rat(1, 1))

	x := findVariable(t, model, "X1")
	m2 := model.Clone()
	m2.Minimise(x.Expr())
	res, err := m2.Solve(nil, true)
	require.NoError(t, err)
	assert.Equal(t, delpi.Optimal, res.Result())
	assert.Equal(t, 0, res.ObjectiveValue().Cmp(rat(-50, 1)))
}

// S4 — BOUNDS matrix with positive values.
func TestDriverBoundsMatrix(t *testing.T) {
	model, err := delpi.NewModel("s4", delpi.Minimize)
	require.NoError(t, err)

	parse(t, model, `NAME
ROWS
 E  R1
 N  OB
COLUMNS
    X1        R1              1.0
    X2        R1              1.0
    X3        R1              1.0
    X4        R1              1.0
    X5        R1              1.0
RHS
    RHS       R1              0.0
BOUNDS
 LO BND       X1              61.0
 UP BND       X2              62.0
 FX BND       X3              63.0
 FR BND       X4
 MI BND       X5
ENDATA
`)

	assertBound(t, model, "X1", rat(61, 1), nil)
	assertBound(t, model, "X2", rat(0, 1), rat(62, 1))
	assertBound(t, model, "X3", rat(63, 1), rat(63, 1))
	assertBound(t, model, "X4", nil, nil)
	assertBound(t, model, "X5", nil, nil)
}

// S5 — a negative UP bound implies an infinite lower bound. R1 carries a
// second column so it stays a genuine row instead of tripping the
// simple-bound shortcut, which would otherwise fold R1's own X1==0
// constraint into X1's bounds and defeat the point of this test.
func TestDriverNegativeUpperBoundImpliesInfiniteLower(t *testing.T) {
	model, err := delpi.NewModel("s5", delpi.Minimize)
	require.NoError(t, err)

	parse(t, model, `NAME
ROWS
 E  R1
 N  OB
COLUMNS
    X1        R1              1.0
    X2        R1              1.0
RHS
    RHS       R1              0.0
BOUNDS
 UP BND       X1              -62.0
ENDATA
`)

	assertBound(t, model, "X1", nil, rat(-62, 1))
}

// S6 — an embedded @set-option record configures the model.
func TestDriverEmbeddedSetOption(t *testing.T) {
	model, err := delpi.NewModel("s6", delpi.Minimize)
	require.NoError(t, err)

	parse(t, model, `NAME
* @set-option :precision 0.505
ROWS
 N  OB
COLUMNS
    X1        OB              1.0
ENDATA
`)

	require.NotNil(t, model.Config().Precision)
	assert.Equal(t, 0, model.Config().Precision.Cmp(big.NewRat(505, 1000)))
}

func TestDriverSetInfoStatus(t *testing.T) {
	model, err := delpi.NewModel("info", delpi.Minimize)
	require.NoError(t, err)

	parse(t, model, `NAME
* @set-info :status optimal
ROWS
 N  OB
COLUMNS
    X1        OB              1.0
ENDATA
`)

	expected, ok := model.Expected()
	require.True(t, ok)
	assert.Equal(t, delpi.Optimal, expected)
}

func TestDriverUnknownRowIsAParseError(t *testing.T) {
	model, err := delpi.NewModel("bad", delpi.Minimize)
	require.NoError(t, err)

	d := NewDriver(model)
	err = d.Parse(strings.NewReader(`NAME
ROWS
 N  OB
COLUMNS
    X1        NOPE            1.0
ENDATA
`))
	assert.Error(t, err)
}

func TestDriverMissingRhsWarnsAndDefaultsToZero(t *testing.T) {
	model, err := delpi.NewModel("norhs", delpi.Minimize)
	require.NoError(t, err)

	// R1 carries two columns so the missing-RHS default-to-zero behavior is
	// observable on a genuine row rather than being absorbed by the
	// simple-bound shortcut.
	d := parse(t, model, `NAME
ROWS
 G  R1
COLUMNS
    X1        R1              1.0
    X2        R1              1.0
ENDATA
`)
	assert.NotEmpty(t, d.Warnings)
	require.Equal(t, 1, model.ConstraintCount())
}

func findVariable(t *testing.T, model *delpi.Model, name string) symbolic.Variable {
	t.Helper()
	for _, v := range model.Variables() {
		if v.Name() == name {
			return v
		}
	}
	t.Fatalf("variable %q not found", name)
	return symbolic.Variable{}
}

func assertBound(t *testing.T, model *delpi.Model, name string, lb, ub *big.Rat) {
	t.Helper()
	v := findVariable(t, model, name)
	gotLb, gotUb := model.Bound(v)
	if lb == nil {
		assert.Nil(t, gotLb)
	} else {
		require.NotNil(t, gotLb)
		assert.Equal(t, 0, gotLb.Cmp(lb))
	}
	if ub == nil {
		assert.Nil(t, gotUb)
	} else {
		require.NotNil(t, gotUb)
		assert.Equal(t, 0, gotUb.Cmp(ub))
	}
}
