package errs

import (
	"sort"
	"strings"
)

// FieldErrors collects per-field validation messages keyed by wire field name.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Merge(other FieldErrors) {
	for k, msgs := range other {
		f[k] = append(f[k], msgs...)
	}
}

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(f[k], " "))
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Err returns nil when no field failed, otherwise the collection marked as ErrValidation.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return Mark(f, ErrValidation)
}

// AsFieldErrors extracts a FieldErrors collection from err's chain.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Common messages used by field validation.
const (
	MsgRequired  = "This field is required."
	MsgBlank     = "This field may not be blank."
	MsgNotNumber = "A valid number is required."
	MsgInteger   = "A valid integer is required."
	MsgDate      = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
)
