package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Error kinds surfaced to API callers. Every caller-facing error is marked
// with exactly one of these.
var (
	ErrValidation             = New("validation failed")
	ErrAuthenticationRequired = New("authentication required")
	ErrPermissionDenied       = New("permission denied")
	ErrNotFound               = New("not found")
	ErrConflict               = New("conflict")
)

// Public builds an error of the given kind whose caller-facing message is detail.
func Public(kind error, detail string) error {
	return cr.Mark(cr.WithHint(cr.NewWithDepth(1, detail), detail), kind)
}

// Detail returns the caller-facing message attached by Public, or "" if none.
func Detail(err error) string {
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}

// Validation is a shorthand for Public(ErrValidation, detail).
func Validation(detail string) error {
	return Public(ErrValidation, detail)
}

func NotFound(detail string) error {
	return Public(ErrNotFound, detail)
}

// Invalid is a validation error that also matches sentinel under Is.
func Invalid(sentinel error, detail string) error {
	return cr.Mark(Public(ErrValidation, detail), sentinel)
}
