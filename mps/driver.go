package mps

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/costela/delpi"
	"github.com/costela/delpi/symbolic"
)

// row accumulates one ROWS/COLUMNS/RHS/RANGES record until finalization
// turns it into a delpi Model row.
type row struct {
	sense    RowSense
	addends  []symbolic.Addend
	rhsValue *big.Rat // the raw RHS value, before sense turns it into lb/ub
	lb, ub   *big.Rat
}

// column accumulates one COLUMNS/BOUNDS record until finalization turns it
// into a delpi Model column.
type column struct {
	v          symbolic.Variable
	lb, ub     *big.Rat
	infiniteLb bool
}

// effectiveLb implements the MPS default-lower-bound rule: an explicit lb
// wins, then FR/MI wins, then a negative upper bound implies -inf, and only
// then does the MPS-standard 0 apply.
func (c *column) effectiveLb() *big.Rat {
	if c.lb != nil {
		return c.lb
	}
	if c.infiniteLb {
		return nil
	}
	if c.ub != nil && c.ub.Sign() < 0 {
		return nil
	}
	return new(big.Rat)
}

// Driver assembles a stream of MPS records into a delpi.Model, mirroring
// the section-by-section accumulation of the format: ROWS and COLUMNS build
// up addend lists, RHS/RANGES/BOUNDS narrow lb/ub, and Parse's finalization
// step pushes the result into the model in one pass.
type Driver struct {
	// Model receives the parsed problem. It must be freshly constructed:
	// the driver only ever adds columns and rows, never removes them.
	Model *delpi.Model

	// StrictMPS restricts RHS/BOUNDS/RANGES to the first group name
	// encountered, skipping (with a warning) any record belonging to a
	// later group of the same kind. When false, all groups are merged.
	StrictMPS bool

	// SkipObjective drops coefficients contributed to the objective row
	// instead of accumulating them, for callers that only want the
	// constraint matrix.
	SkipObjective bool

	// Warnings accumulates non-fatal issues encountered while parsing:
	// mismatched strict-mode group names, rows with no RHS, and the like.
	Warnings []string

	problemName string
	isMin       bool
	objRowSet   bool
	objRow      string

	rhsName      string
	rhsNameSet   bool
	boundName    string
	boundNameSet bool

	rowOrder []string
	rows     map[string]*row
	colOrder []string
	columns  map[string]*column
}

// NewDriver returns a Driver that parses into model.
func NewDriver(model *delpi.Model) *Driver {
	return &Driver{
		Model: model,
		isMin: true,
		rows:  map[string]*row{},
		columns: map[string]*column{},
	}
}

// ProblemName returns the name given in the NAME section, if any.
func (d *Driver) ProblemName() string { return d.problemName }

func (d *Driver) warnf(format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// sectionKeyword reports whether tok is one of the MPS section headers,
// returning its canonical uppercase spelling.
func sectionKeyword(tok string) (string, bool) {
	switch strings.ToUpper(tok) {
	case "NAME", "OBJSENSE", "OBJNAME", "ROWS", "COLUMNS", "RHS", "RANGES", "BOUNDS", "ENDATA":
		return strings.ToUpper(tok), true
	default:
		return "", false
	}
}

// Parse reads MPS records from r, accumulating them, and finalizes the
// model once ENDATA is reached (or the input is exhausted, treated as an
// implicit ENDATA).
func (d *Driver) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "*") {
			d.handleComment(trimmed)
			continue
		}

		fields := strings.Fields(line)
		// A section keyword only starts a new section when it is alone on
		// the line (NAME may carry the problem name as a second token):
		// group names in RHS/RANGES/BOUNDS conventionally reuse the
		// section's own keyword (e.g. an RHS group literally named "RHS"),
		// so a keyword with trailing data is just an ordinary record.
		if kw, ok := sectionKeyword(fields[0]); ok && (len(fields) == 1 || (kw == "NAME" && len(fields) == 2)) {
			section = kw
			if kw == "NAME" && len(fields) > 1 {
				d.problemName = fields[1]
			}
			if kw == "ENDATA" {
				return d.finalize()
			}
			continue
		}

		var err error
		switch section {
		case "OBJSENSE":
			err = d.handleObjSense(fields)
		case "OBJNAME":
			err = d.handleObjName(fields)
		case "ROWS":
			err = d.handleRow(fields)
		case "COLUMNS":
			err = d.handleColumn(fields)
		case "RHS":
			err = d.handleRhs(fields)
		case "RANGES":
			err = d.handleRange(fields)
		case "BOUNDS":
			err = d.handleBound(fields)
		default:
			err = errors.Errorf("mps: line %d: data outside any section", lineNo)
		}
		if err != nil {
			return errors.Wrapf(err, "mps: line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "mps: reading input")
	}
	return d.finalize()
}

func (d *Driver) handleComment(trimmed string) {
	fields := strings.Fields(trimmed)
	if len(fields) < 3 {
		return
	}
	switch fields[1] {
	case "@set-option":
		if len(fields) < 4 || d.Model == nil {
			return
		}
		if err := d.Model.Config().SetOption(fields[2], fields[3]); err != nil {
			d.warnf("invalid embedded option %s %s: %v", fields[2], fields[3], err)
		}
	case "@set-info":
		if len(fields) < 4 || d.Model == nil {
			return
		}
		d.Model.SetInfo(fields[2], strings.Join(fields[3:], " "))
	}
}

func (d *Driver) handleObjSense(fields []string) error {
	if len(fields) == 0 {
		return errors.New("mps: OBJSENSE section: empty line")
	}
	switch strings.ToUpper(fields[0]) {
	case "MAX", "MAXIMIZE":
		d.isMin = false
	case "MIN", "MINIMIZE":
		d.isMin = true
	default:
		return errors.Errorf("mps: unknown OBJSENSE %q", fields[0])
	}
	return nil
}

func (d *Driver) handleObjName(fields []string) error {
	if len(fields) == 0 {
		return errors.New("mps: OBJNAME section: empty line")
	}
	d.objRow = fields[0]
	d.objRowSet = true
	return nil
}

func (d *Driver) handleRow(fields []string) error {
	if len(fields) < 2 {
		return errors.Errorf("mps: malformed ROWS record %q", strings.Join(fields, " "))
	}
	sense, err := ParseRowSense(fields[0])
	if err != nil {
		return err
	}
	name := fields[1]
	if sense == RowN && !d.objRowSet {
		d.objRow = name
		d.objRowSet = true
	}
	if _, exists := d.rows[name]; !exists {
		d.rows[name] = &row{sense: sense}
		d.rowOrder = append(d.rowOrder, name)
	}
	return nil
}

func (d *Driver) handleColumn(fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("mps: malformed COLUMNS record %q", strings.Join(fields, " "))
	}
	if fields[1] == "'MARKER'" {
		return nil // integer markers: integrality is out of scope, ignore.
	}
	name := fields[0]
	col, ok := d.columns[name]
	if !ok {
		col = &column{v: symbolic.NewVariable(name)}
		d.columns[name] = col
		d.colOrder = append(d.colOrder, name)
	}
	return d.applyColumnPairs(col, fields[1:])
}

func (d *Driver) applyColumnPairs(col *column, pairs []string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		rowName, valTok := pairs[i], pairs[i+1]
		val, infSign, err := parseNumber(valTok)
		if err != nil {
			return err
		}
		if infSign != 0 {
			return errors.Errorf("mps: coefficient for column %q, row %q, is infinite", col.v.Name(), rowName)
		}
		r, ok := d.rows[rowName]
		if !ok {
			return errors.Errorf("mps: column %q references unknown row %q", col.v.Name(), rowName)
		}
		if rowName == d.objRow && d.SkipObjective {
			continue
		}
		r.addends = append(r.addends, symbolic.Addend{Var: col.v, Coeff: val})
	}
	return nil
}

func (d *Driver) handleRhs(fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("mps: malformed RHS record %q", strings.Join(fields, " "))
	}
	group := fields[0]
	if !d.verifyStrictRhs(group) {
		return nil
	}
	pairs := fields[1:]
	for i := 0; i+1 < len(pairs); i += 2 {
		rowName, valTok := pairs[i], pairs[i+1]
		val, infSign, err := parseNumber(valTok)
		if err != nil {
			return err
		}
		if infSign != 0 {
			return errors.Errorf("mps: RHS value for row %q is infinite", rowName)
		}
		r, ok := d.rows[rowName]
		if !ok {
			return errors.Errorf("mps: RHS references unknown row %q", rowName)
		}
		r.rhsValue = val
		switch r.sense {
		case RowL:
			r.ub = val
		case RowG:
			r.lb = val
		case RowE:
			r.lb, r.ub = val, new(big.Rat).Set(val)
		case RowN:
			d.warnf("RHS given for objective/free row %q; ignoring", rowName)
		}
	}
	return nil
}

func (d *Driver) handleRange(fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("mps: malformed RANGES record %q", strings.Join(fields, " "))
	}
	group := fields[0]
	if !d.verifyStrictRhs(group) {
		return nil
	}
	pairs := fields[1:]
	for i := 0; i+1 < len(pairs); i += 2 {
		rowName, valTok := pairs[i], pairs[i+1]
		val, infSign, err := parseNumber(valTok)
		if err != nil {
			return err
		}
		if infSign != 0 {
			return errors.Errorf("mps: RANGE value for row %q is infinite", rowName)
		}
		r, ok := d.rows[rowName]
		if !ok {
			return errors.Errorf("mps: RANGES references unknown row %q", rowName)
		}
		base := new(big.Rat)
		if r.rhsValue != nil {
			base.Set(r.rhsValue)
		}
		abs := new(big.Rat).Abs(val)
		switch r.sense {
		case RowG:
			r.lb = new(big.Rat).Set(base)
			r.ub = new(big.Rat).Add(base, abs)
		case RowL:
			r.lb = new(big.Rat).Sub(base, abs)
			r.ub = new(big.Rat).Set(base)
		case RowE:
			if val.Sign() > 0 {
				r.lb = new(big.Rat).Set(base)
				r.ub = new(big.Rat).Add(base, val)
			} else {
				r.lb = new(big.Rat).Add(base, val)
				r.ub = new(big.Rat).Set(base)
			}
		case RowN:
			d.warnf("RANGE given for objective/free row %q; ignoring", rowName)
		}
	}
	return nil
}

func (d *Driver) handleBound(fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("mps: malformed BOUNDS record %q", strings.Join(fields, " "))
	}
	bt, err := ParseBoundType(fields[0])
	if err != nil {
		return err
	}
	group := fields[1]
	if !d.verifyStrictBound(group) {
		return nil
	}
	colName := fields[2]
	col, ok := d.columns[colName]
	if !ok {
		return errors.Errorf("mps: BOUNDS references unknown column %q", colName)
	}

	needsValue := bt != BoundFR && bt != BoundMI && bt != BoundPL && bt != BoundBV
	var val *big.Rat
	var infSign int
	if needsValue {
		if len(fields) < 4 {
			return errors.Errorf("mps: BOUNDS record %q missing value", strings.Join(fields, " "))
		}
		val, infSign, err = parseNumber(fields[3])
		if err != nil {
			return err
		}
	}

	switch bt {
	case BoundUP, BoundUI:
		switch {
		case infSign > 0: // +inf upper bound: same as no upper bound at all.
		case infSign < 0:
			d.warnf("column %q: UP bound of -inf is not meaningful; ignoring", colName)
		default:
			col.ub = val
		}
	case BoundLO, BoundLI:
		switch {
		case infSign < 0:
			col.infiniteLb = true
		case infSign > 0:
			d.warnf("column %q: LO bound of +inf is not meaningful; ignoring", colName)
		default:
			col.lb = val
		}
	case BoundFX:
		if infSign != 0 {
			return errors.Errorf("mps: column %q: FX bound cannot be infinite", colName)
		}
		col.lb, col.ub = val, new(big.Rat).Set(val)
	case BoundBV:
		col.lb, col.ub = new(big.Rat), big.NewRat(1, 1)
	case BoundFR, BoundMI:
		col.infiniteLb = true
	case BoundPL:
		// no-op: +inf upper bound is already the default.
	}
	return nil
}

func (d *Driver) verifyStrictRhs(group string) bool {
	if !d.StrictMPS {
		return true
	}
	if !d.rhsNameSet {
		d.rhsName, d.rhsNameSet = group, true
		return true
	}
	if d.rhsName != group {
		d.warnf("first RHS/RANGES group was %q, found new group %q; skipping", d.rhsName, group)
		return false
	}
	return true
}

func (d *Driver) verifyStrictBound(group string) bool {
	if !d.StrictMPS {
		return true
	}
	if !d.boundNameSet {
		d.boundName, d.boundNameSet = group, true
		return true
	}
	if d.boundName != group {
		d.warnf("first BOUNDS group was %q, found new group %q; skipping", d.boundName, group)
		return false
	}
	return true
}

// finalize pushes the accumulated rows and columns into the model: it is
// idempotent-in-spirit but only meant to run once, at ENDATA or end of
// input.
func (d *Driver) finalize() error {
	for _, name := range d.rowOrder {
		r := d.rows[name]
		if r.sense == RowN || r.lb != nil || r.ub != nil {
			continue
		}
		d.warnf("row %q has no RHS or RANGES; assuming 0", name)
		zero := new(big.Rat)
		switch r.sense {
		case RowL:
			r.ub = zero
		case RowG:
			r.lb = zero
		case RowE:
			r.lb, r.ub = zero, new(big.Rat)
		}
	}

	for _, name := range d.colOrder {
		col := d.columns[name]
		d.Model.AddColumnWithBounds(col.v, col.effectiveLb(), col.ub)
	}

	for _, name := range d.rowOrder {
		r := d.rows[name]
		if r.sense == RowN || len(r.addends) == 0 {
			continue
		}
		d.Model.AddRowWithAddends(r.addends, r.lb, r.ub)
	}

	if d.objRowSet && d.objRow != "" {
		if r, ok := d.rows[d.objRow]; ok && len(r.addends) > 0 {
			expr := symbolic.FromAddends(r.addends)
			if d.isMin {
				d.Model.Minimise(expr)
			} else {
				d.Model.Maximise(expr)
			}
		}
	}
	return nil
}
