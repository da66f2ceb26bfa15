package symbolic

import "fmt"

// Error reports a precondition violation raised by the symbolic layer, such
// as division by zero or evaluating an expression against an incomplete
// environment. Every failure in this package is fail-fast: it panics with a
// value of this type so callers can recover and errors.As it if needed.
type Error struct {
	Op  string
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("symbolic: %s: %s", e.Op, e.Msg) }

func fail(op, format string, args ...interface{}) {
	panic(&Error{Op: op, Msg: fmt.Sprintf(format, args...)})
}
