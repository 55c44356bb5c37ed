package flow

import (
	"fmt"
	"strings"

	"github.com/andriiyaremenko/flow/internal"
)

var (
	_ error = new(ErrAggregated)
	_ error = new(ErrPanic)
	_ error = new(ErrUnitType)
)

// Combines errors reported by the units of one joined stage.
// Returns nil for no errors and the error itself for exactly one error,
// otherwise *ErrAggregated.
func Aggregate(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return NewErrAggregated(errs...)
	}
}

// Returns new *ErrAggregated holding errors in arrival order.
func NewErrAggregated(errs ...error) *ErrAggregated {
	return &ErrAggregated{errors: errs}
}

type ErrAggregated struct {
	errors []error
}

// Implementation of error.
// Messages of the underlying errors joined by a new line.
func (err *ErrAggregated) Error() string {
	var sb strings.Builder

	for i, e := range err.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}

		if internal.IsNil(e) {
			sb.WriteString("<nil>")

			continue
		}

		sb.WriteString(e.Error())
	}

	return sb.String()
}

// Returns list of all errors reported by the joined units.
func (err *ErrAggregated) Inner() []error {
	return err.errors
}

// Returns underlying errors.
func (err *ErrAggregated) Unwrap() []error {
	return err.errors
}

// Returns new *ErrPanic for a unit that panicked with value.
func NewErrPanic(unit any, value any) *ErrPanic {
	return &ErrPanic{unitName: internal.InstanceTypeName(unit), value: value}
}

// Error reported instead of a recovered unit panic.
type ErrPanic struct {
	unitName string
	value    any
}

// Returns the value passed to panic.
func (err *ErrPanic) Value() any {
	return err.value
}

// Implementation of error.
func (err *ErrPanic) Error() string {
	return fmt.Sprintf("%s recovered from panic: %v", err.unitName, err.value)
}

// Returns underlying error if the unit panicked with one.
func (err *ErrPanic) Unwrap() error {
	if e, ok := err.value.(error); ok {
		return e
	}

	return nil
}

// Panic value for builder arguments that are not units.
type ErrUnitType struct {
	builder string
	value   any
}

// Implementation of error.
func (err *ErrUnitType) Error() string {
	return fmt.Sprintf(
		"flow: %s: got %s, want unit or list of units",
		err.builder,
		internal.InstanceTypeName(err.value),
	)
}
