package domain

import "errors"

// ErrInvalidTraceLength is returned when a trace, after symbol filtering, does
// not divide into whole (input, output) steps.
var ErrInvalidTraceLength = errors.New("trace length must be a multiple of 3")

// ErrNoCompletion is returned when no start state admits a finite-cost
// completion of the trace.
var ErrNoCompletion = errors.New("no completion found")
