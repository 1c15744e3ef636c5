package arginput

import (
	"errors"
	"fmt"
	"strings"
)

// OpenError records one named input that could not be opened.
type OpenError struct {
	// Path is the argument as given, not cleaned or absolutized.
	Path string
	// Err is the underlying cause, e.g. fs.ErrNotExist.
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// AggregateError is the only error returned by resolution. It collects
// every open failure from one [Input] call, in argument order, so that
// naming several bad files reports all of them at once. It is never
// returned alongside a usable stream.
type AggregateError struct {
	Errors []*OpenError
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, open := range e.Errors {
		msgs[i] = open.Error()
	}
	return fmt.Sprintf("%d inputs failed to open: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes every open failure to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, open := range e.Errors {
		errs[i] = open
	}
	return errs
}

func newAggregateError(failures []error) *AggregateError {
	agg := &AggregateError{Errors: make([]*OpenError, 0, len(failures))}
	for _, err := range failures {
		var open *OpenError
		if errors.As(err, &open) {
			agg.Errors = append(agg.Errors, open)
		}
	}
	return agg
}
