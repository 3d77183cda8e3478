package rainreport

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFieldValue is matched by errors.Is for every *InvalidFieldValueError.
	ErrInvalidFieldValue = errors.New("invalid field value")
	// ErrRenderIO is matched by errors.Is for every *RenderIOError.
	ErrRenderIO = errors.New("render io error")
)

// InvalidFieldValueError reports an input field whose value cannot be used
// for the slot it feeds, e.g. a non-numeric string for a rainfall value.
type InvalidFieldValueError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("field %q: %s (got %#v)", e.Field, e.Reason, e.Value)
}

func (e *InvalidFieldValueError) Is(target error) bool {
	return target == ErrInvalidFieldValue
}

// RenderIOError wraps a failure while serializing the workbook. No partial
// document is ever returned alongside it.
type RenderIOError struct {
	Err error
}

func (e *RenderIOError) Error() string {
	return "rendering report: " + e.Err.Error()
}

func (e *RenderIOError) Is(target error) bool {
	return target == ErrRenderIO
}

func (e *RenderIOError) Unwrap() error {
	return e.Err
}
