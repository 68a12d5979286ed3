package scheduling

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller mistakes: negative durations or distances,
// malformed time strings, unknown service or weekday. These are surfaced to
// the immediate caller and never retried.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownService is returned for service IDs missing from the catalog.
var ErrUnknownService = fmt.Errorf("unknown service: %w", ErrInvalidInput)

// invalidf wraps ErrInvalidInput with a formatted message so callers can
// match with errors.Is.
func invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// DependencyError reports a failed external collaborator (e.g. the distance
// provider). It is distinct from ErrInvalidInput so callers can retry or opt
// in to on-site fallback; the engine itself never retries since it performs
// no I/O.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
