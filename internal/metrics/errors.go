package metrics

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTestType is the match target for UnsupportedTestTypeError.
var ErrUnsupportedTestType = errors.New("unsupported test type")

// UnsupportedTestTypeError reports a metrics request for a test type with
// no defined analysis algorithm.
type UnsupportedTestTypeError struct {
	TestType TestType
}

func (e *UnsupportedTestTypeError) Error() string {
	return fmt.Sprintf("no analysis algorithm for test type %q", string(e.TestType))
}

func (e *UnsupportedTestTypeError) Unwrap() error { return ErrUnsupportedTestType }
