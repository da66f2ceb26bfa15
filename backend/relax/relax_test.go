package relax

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGonumRelaxerEmptyProblem(t *testing.T) {
	basis, obj, err := GonumRelaxer{}.Relax(context.Background(), Problem{})
	require.NoError(t, err)
	assert.Nil(t, basis)
	assert.Equal(t, 0.0, obj)
}

func TestGonumRelaxerSimpleProblem(t *testing.T) {
	p := Problem{
		Obj:   []float64{1, 1},
		Rows:  [][]float64{{1, 1}},
		ColLb: []float64{0, 0},
		ColUb: []float64{math.Inf(1), math.Inf(1)},
		RowLb: []float64{4},
		RowUb: []float64{math.Inf(1)},
	}
	basis, obj, err := GonumRelaxer{}.Relax(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, basis, 1)
	assert.InDelta(t, 4.0, obj, 1e-3)
}
