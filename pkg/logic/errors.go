package logic

import "fmt"

// InputError reports a malformed KB or query, or a signature restriction
// violation (arity outside {0,1}, more than one sort, more than one free
// variable per conditional, a non-closed fact). No partial KB is retained
// when this is returned.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return "input error: " + e.Message }

// NewInputError builds an InputError.
func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// CapacityError reports that world-set allocation exceeded the configured
// memory bound. Core state resets to "no KB loaded" when this is returned.
type CapacityError struct {
	Interpretables int
	Limit          int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity error: world set needs 2^%d worlds, exceeding the configured limit of 2^%d", e.Interpretables, e.Limit)
}

// InconsistentKBError reports that no valid tolerance pair exists for a KB.
// searchTolerancePairs does not return this error — an empty result list is
// the normal, non-error signal (see spec.md §7). This type is surfaced only
// by operations that require a ranking and were handed no valid pair.
type InconsistentKBError struct{}

func (e *InconsistentKBError) Error() string {
	return "inconsistent knowledge base: no valid tolerance pair"
}

// CancelledError reports that the caller aborted a search via its progress
// sink. Partial results are cleared before this is returned.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "search cancelled" }

// InternalInvariantViolation marks a reachable-but-unsupported case, such as
// an unrecognized Formula kind reaching satisfaction or ranking. It is
// always raised as a panic, never returned as an error: it indicates a bug
// in this package, not a runtime condition a caller can recover from.
type InternalInvariantViolation struct {
	Message string
}

func (e InternalInvariantViolation) Error() string { return "internal invariant violation: " + e.Message }

func invariantf(format string, args ...interface{}) {
	panic(InternalInvariantViolation{Message: fmt.Sprintf(format, args...)})
}
