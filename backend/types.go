// Package backend implements the rational simplex engine that the delpi
// façade drives. It knows nothing about symbolic variables or formulas: a
// problem is described purely in terms of column and row indices, mirroring
// the abstract LpSolver contract the façade sits on top of.
package backend

import "math/big"

// Result is the verdict returned by Solve.
type Result int

const (
	Unsolved Result = iota
	Optimal
	DeltaOptimal
	Unbounded
	Infeasible
	Error
)

func (r Result) String() string {
	switch r {
	case Unsolved:
		return "unsolved"
	case Optimal:
		return "optimal"
	case DeltaOptimal:
		return "delta-optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Column describes a structural variable at construction time. Lb or Ub may
// be nil to mean unbounded in that direction; a column with both nil is
// free.
type Column struct {
	Obj    *big.Rat
	Lb, Ub *big.Rat
}

// Row describes a constraint's range at construction time: Lb <= a^T x <=
// Ub. A nil bound is unbounded in that direction; Lb == Ub is an equality.
type Row struct {
	Lb, Ub *big.Rat
}
