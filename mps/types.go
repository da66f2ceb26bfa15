// Package mps parses the MPS linear-programming file format into a delpi
// Model: ROWS/COLUMNS/RHS/RANGES/BOUNDS sections accumulate into an
// in-memory representation that is pushed into the model at ENDATA.
package mps

import (
	"strings"

	"github.com/pkg/errors"
)

// RowSense is the relation between a row's linear combination and its
// right-hand side, as declared in the ROWS section.
type RowSense int

const (
	RowL RowSense = iota // <=
	RowE                 // ==
	RowG                 // >=
	RowN                 // objective / free row, no bound
)

func (s RowSense) String() string {
	switch s {
	case RowL:
		return "L"
	case RowE:
		return "E"
	case RowG:
		return "G"
	case RowN:
		return "N"
	default:
		return "?"
	}
}

// ParseRowSense parses a single-letter ROWS sense token.
func ParseRowSense(tok string) (RowSense, error) {
	switch strings.ToUpper(tok) {
	case "L":
		return RowL, nil
	case "E":
		return RowE, nil
	case "G":
		return RowG, nil
	case "N":
		return RowN, nil
	default:
		return 0, errors.Errorf("mps: unknown row sense %q", tok)
	}
}

// BoundType is the kind of bound applied to a column in the BOUNDS section.
type BoundType int

const (
	BoundUP BoundType = iota // upper bound
	BoundLO                  // lower bound
	BoundFX                  // fixed
	BoundUI                  // upper bound, integer (integrality ignored)
	BoundLI                  // lower bound, integer (integrality ignored)
	BoundFR                  // free: (-inf, +inf)
	BoundMI                  // lower bound -inf
	BoundPL                  // upper bound +inf (no-op: already the default)
	BoundBV                  // binary: [0, 1]
)

func (b BoundType) String() string {
	switch b {
	case BoundUP:
		return "UP"
	case BoundLO:
		return "LO"
	case BoundFX:
		return "FX"
	case BoundUI:
		return "UI"
	case BoundLI:
		return "LI"
	case BoundFR:
		return "FR"
	case BoundMI:
		return "MI"
	case BoundPL:
		return "PL"
	case BoundBV:
		return "BV"
	default:
		return "?"
	}
}

// ParseBoundType parses a BOUNDS type token. Unknown types are fail-fast:
// the caller should abort parsing rather than guess a default.
func ParseBoundType(tok string) (BoundType, error) {
	switch strings.ToUpper(tok) {
	case "UP":
		return BoundUP, nil
	case "LO":
		return BoundLO, nil
	case "FX":
		return BoundFX, nil
	case "UI":
		return BoundUI, nil
	case "LI":
		return BoundLI, nil
	case "FR":
		return BoundFR, nil
	case "MI":
		return BoundMI, nil
	case "PL":
		return BoundPL, nil
	case "BV":
		return BoundBV, nil
	default:
		return 0, errors.Errorf("mps: unknown bound type %q", tok)
	}
}
