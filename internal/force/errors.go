package force

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a vector is divided by a zero scalar.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidChannelCount is the match target for ChannelCountError.
	ErrInvalidChannelCount = errors.New("invalid channel count")

	// ErrOutOfOrder is the match target for OutOfOrderError.
	ErrOutOfOrder = errors.New("out of order sample")

	// ErrSeriesFrozen is returned when appending to a series that has been
	// frozen for analysis.
	ErrSeriesFrozen = errors.New("series is frozen")

	// ErrInsufficientData is the match target for InsufficientDataError.
	ErrInsufficientData = errors.New("insufficient data")
)

// ChannelCountError reports a raw frame whose channel slice does not carry
// exactly one reading per load cell.
type ChannelCountError struct {
	Got int // Number of channels received
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("expected %d load cell channels, got %d", NumChannels, e.Got)
}

func (e *ChannelCountError) Unwrap() error { return ErrInvalidChannelCount }

// OutOfOrderError reports an append whose timestamp precedes the last
// accepted sample. The series keeps its previous contents.
type OutOfOrderError struct {
	LastMs int64 // Timestamp of the last accepted sample
	GotMs  int64 // Timestamp of the rejected sample
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("sample timestamp %dms precedes last accepted %dms", e.GotMs, e.LastMs)
}

func (e *OutOfOrderError) Unwrap() error { return ErrOutOfOrder }

// InsufficientDataError reports a series too short (or too brief) to
// analyze. It is returned instead of degenerate zero or NaN metrics.
type InsufficientDataError struct {
	Samples    int   // Samples available
	Required   int   // Minimum samples required
	DurationMs int64 // Series duration, informational
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("series has %d samples over %dms, need at least %d samples and a non-zero duration",
		e.Samples, e.DurationMs, e.Required)
}

func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }
