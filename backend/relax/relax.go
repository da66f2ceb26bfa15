// Package relax supplies floating-point warm-start heuristics for
// backend.Exact: a quick, inexact simplex pass whose final basis seeds the
// exact rational phase instead of the synthetic all-slack basis, mirroring
// the inexact-first, exact-refine pipeline real delta-relaxation LP solvers
// use.
package relax

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Problem is a plain floating-point restatement of a backend.Exact
// instance's state, built by the caller from its *big.Rat data via
// big.Rat.Float64. Column i is bounded to [ColLb[i], ColUb[i]]; row r is the
// equality Rows[r]·x - s_r = 0 with s_r bounded to [RowLb[r], RowUb[r]].
// math.Inf(1)/math.Inf(-1) stand in for unbounded.
type Problem struct {
	Obj            []float64
	Rows           [][]float64
	ColLb, ColUb   []float64
	RowLb, RowUb   []float64
}

// Relaxer produces a warm-start basis for a minimisation problem: a slice
// naming, for each row, which column is basic in it, and the resulting
// (approximate) objective value.
type Relaxer interface {
	Relax(ctx context.Context, p Problem) (basis []int, obj float64, err error)
}

const (
	relaxEpsilon = 1e-7
	bigM         = 1e7
	maxRelaxIter = 5000
)

// GonumRelaxer is the default Relaxer: a Big-M primal simplex over dense
// gonum matrices, grounded on felipends-revised-simplex's artificial-
// variable/all-slack-basis construction and pivot loop, generalised here
// to accept pre-existing bounded rows instead of only `Ax = b` equalities.
// Column bounds (ColLb/ColUb) are not consulted: every column is treated as
// non-negative, as in the plain `Ax = b` construction, since the point of
// this pass is a fast approximate basis, not bound-exact optimality.
type GonumRelaxer struct{}

func (GonumRelaxer) Relax(ctx context.Context, p Problem) (basis []int, obj float64, err error) {
	if len(p.Rows) == 0 {
		return nil, 0, nil
	}
	numCols := len(p.Obj)
	numRows := len(p.Rows)

	a := mat.NewDense(numRows, numCols, nil)
	for r, row := range p.Rows {
		a.SetRow(r, row)
	}
	b := make([]float64, numRows)
	for r := range b {
		// Big-M treats every row as an equality pinned to its lower bound
		// when finite, else its upper bound, else 0, since this pass only needs a
		// plausible starting basis, not a certified feasible point.
		switch {
		case !math.IsInf(p.RowLb[r], -1):
			b[r] = p.RowLb[r]
		case !math.IsInf(p.RowUb[r], 1):
			b[r] = p.RowUb[r]
		default:
			b[r] = 0
		}
	}

	// Extend A with an identity block of artificial variables, and cost
	// row with a Big-M penalty on them, exactly as
	// felipends-revised-simplex/simplex.AddArtificialVariables does.
	totalCols := numCols + numRows
	fullA := mat.NewDense(numRows, totalCols, nil)
	fullA.Copy(sliceView(a, numRows, numCols))
	for r := 0; r < numRows; r++ {
		fullA.Set(r, numCols+r, 1)
	}
	fullC := make([]float64, totalCols)
	copy(fullC, p.Obj)
	for i := numCols; i < totalCols; i++ {
		fullC[i] = bigM
	}

	basisIdx := make([]int, numRows)
	for r := range basisIdx {
		basisIdx[r] = numCols + r
	}

	for iter := 0; iter < maxRelaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		basisMat := mat.NewDense(numRows, numRows, nil)
		for j, bi := range basisIdx {
			col := make([]float64, numRows)
			mat.Col(col, bi, fullA)
			basisMat.SetCol(j, col)
		}
		var inv mat.Dense
		if err := inv.Inverse(basisMat); err != nil {
			return nil, 0, errors.Wrap(err, "relax: singular basis")
		}

		sol := mat.NewDense(numRows, 1, nil)
		sol.Mul(&inv, mat.NewDense(numRows, 1, b))

		basisCost := make([]float64, numRows)
		for i, bi := range basisIdx {
			basisCost[i] = fullC[bi]
		}
		var dual mat.Dense
		dual.Mul(mat.NewDense(1, numRows, basisCost), &inv)

		entering, bestReduced := -1, -relaxEpsilon
		for j := 0; j < totalCols; j++ {
			if contains(basisIdx, j) {
				continue
			}
			col := make([]float64, numRows)
			mat.Col(col, j, fullA)
			reduced := fullC[j] - mat.Dot(dual.RowView(0), mat.NewVecDense(numRows, col))
			if reduced < bestReduced {
				bestReduced, entering = reduced, j
			}
		}
		if entering == -1 {
			break
		}

		u := make([]float64, numRows)
		col := make([]float64, numRows)
		mat.Col(col, entering, fullA)
		mat.NewDense(numRows, 1, u).Mul(&inv, mat.NewDense(numRows, 1, col))

		leave, minRatio := -1, math.MaxFloat64
		for i := 0; i < numRows; i++ {
			if u[i] <= relaxEpsilon {
				continue
			}
			ratio := sol.At(i, 0) / u[i]
			if ratio < minRatio {
				minRatio, leave = ratio, i
			}
		}
		if leave == -1 {
			break // unbounded in the relaxation; keep the current basis as the best guess
		}
		basisIdx[leave] = entering
	}

	objective := 0.0
	basisMat := mat.NewDense(numRows, numRows, nil)
	for j, bi := range basisIdx {
		col := make([]float64, numRows)
		mat.Col(col, bi, fullA)
		basisMat.SetCol(j, col)
	}
	var inv mat.Dense
	if err := inv.Inverse(basisMat); err == nil {
		sol := mat.NewDense(numRows, 1, nil)
		sol.Mul(&inv, mat.NewDense(numRows, 1, b))
		for i, bi := range basisIdx {
			if bi < numCols {
				objective += p.Obj[bi] * sol.At(i, 0)
			}
		}
	}

	basis = make([]int, numRows)
	for r, bi := range basisIdx {
		if bi < numCols {
			basis[r] = bi
		} else {
			basis[r] = -1 // artificial still basic: relaxation did not fully clear infeasibility
		}
	}
	return basis, objective, nil
}

func sliceView(a *mat.Dense, rows, cols int) mat.Matrix {
	return a.Slice(0, rows, 0, cols)
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
