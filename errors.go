package koyomi

import (
	"errors"
	"fmt"
)

// ErrNotEnough is returned by [CalendarSpec.Finalize] when neither a single
// token nor both range bounds were given.
var ErrNotEnough = errors.New("koyomi: not enough information to build a calendar")

// Sentinels wrapped by [*StepError].
var (
	ErrNoSuccessor   = errors.New("no successor date")
	ErrNoPredecessor = errors.New("no predecessor date")
)

// FormatError reports text that is not an accepted date or range token,
// or that names a date that does not exist.
type FormatError struct {
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("koyomi: invalid format %q", e.Text)
}

// TermError reports a calendar range whose end is not after its start.
type TermError struct {
	From, Until Date
}

func (e *TermError) Error() string {
	return fmt.Sprintf("koyomi: invalid term %s..%s", e.From, e.Until)
}

// StepError reports stepping past the first or last supported date.
// Err is [ErrNoSuccessor] or [ErrNoPredecessor].
type StepError struct {
	Date Date
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("koyomi: %s: %v", e.Date, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
