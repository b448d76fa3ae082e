// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Engines wrap these with %w and callers match with
// errors.Is, so the transport layer can map each kind to a status code
// without inspecting message text.
var (
	// ErrNotFound covers both "entity absent" and "entity not owned by the
	// caller's organization" so cross-tenant probes cannot distinguish the two.
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
	ErrInvalid   = errors.New("invalid")
)

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrNotFound, args)...)
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrConflict, args)...)
}

func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrForbidden, args)...)
}

func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrInvalid, args)...)
}

func prepend(err error, args []any) []any {
	return append([]any{err}, args...)
}

// Message returns the human-readable portion of a wrapped kind error,
// stripping the sentinel prefix when present.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrForbidden, ErrInvalid} {
		prefix := kind.Error() + ": "
		if msg := err.Error(); len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return err.Error()
}
