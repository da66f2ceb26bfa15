//go:build glpk

package relax

import (
	"context"
	"math"

	"github.com/lukpank/go-glpk/glpk"
)

// GLPKRelaxer relaxes through the real GLPK simplex via cgo, for
// deployments that would rather pay a cgo dependency than gonum's
// dense-matrix Big-M pass, particularly on the larger problems where
// GLPK's revised simplex and presolve outperform GonumRelaxer.
type GLPKRelaxer struct{}

func (GLPKRelaxer) Relax(ctx context.Context, p Problem) (basis []int, obj float64, err error) {
	if len(p.Rows) == 0 {
		return nil, 0, nil
	}
	numCols := len(p.Obj)
	numRows := len(p.Rows)

	lp := glpk.New()
	defer lp.Delete()

	lp.SetObjDir(glpk.MIN)
	lp.AddCols(numCols)
	lp.AddRows(numRows)

	for j := 0; j < numCols; j++ {
		lp.SetObjCoef(j+1, p.Obj[j])
		setGlpkColBound(lp, j+1, p.ColLb[j], p.ColUb[j])
	}
	for r := 0; r < numRows; r++ {
		setGlpkRowBound(lp, r+1, p.RowLb[r], p.RowUb[r])
	}

	ind := make([]int32, numCols+1)
	val := make([]float64, numCols+1)
	for r := 0; r < numRows; r++ {
		for j := 0; j < numCols; j++ {
			ind[j+1] = int32(j + 1)
			val[j+1] = p.Rows[r][j]
		}
		lp.SetMatRow(r+1, ind, val)
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	parm := glpk.NewSmcp()
	parm.SetMsgLev(glpk.MSG_OFF)
	if err := lp.Simplex(parm); err != nil {
		return nil, 0, err
	}

	basis = make([]int, numRows)
	for r := 0; r < numRows; r++ {
		if lp.RowStat(r+1) == glpk.BS {
			basis[r] = -1 // structural basis membership is read back per-column below
		}
	}
	for j := 0; j < numCols; j++ {
		if lp.ColStat(j+1) == glpk.BS {
			for r := 0; r < numRows; r++ {
				if basis[r] == -1 {
					basis[r] = j
					break
				}
			}
		}
	}

	return basis, lp.ObjVal(), nil
}

func setGlpkColBound(lp *glpk.Prob, j int, lb, ub float64) {
	switch {
	case math.IsInf(lb, -1) && math.IsInf(ub, 1):
		lp.SetColBnds(j, glpk.FR, 0, 0)
	case math.IsInf(ub, 1):
		lp.SetColBnds(j, glpk.LO, lb, 0)
	case math.IsInf(lb, -1):
		lp.SetColBnds(j, glpk.UP, 0, ub)
	case lb == ub:
		lp.SetColBnds(j, glpk.FX, lb, ub)
	default:
		lp.SetColBnds(j, glpk.DB, lb, ub)
	}
}

func setGlpkRowBound(lp *glpk.Prob, r int, lb, ub float64) {
	switch {
	case math.IsInf(lb, -1) && math.IsInf(ub, 1):
		lp.SetRowBnds(r, glpk.FR, 0, 0)
	case math.IsInf(ub, 1):
		lp.SetRowBnds(r, glpk.LO, lb, 0)
	case math.IsInf(lb, -1):
		lp.SetRowBnds(r, glpk.UP, 0, ub)
	case lb == ub:
		lp.SetRowBnds(r, glpk.FX, lb, ub)
	default:
		lp.SetRowBnds(r, glpk.DB, lb, ub)
	}
}
