package patch

import "stay-marketplace/internal/pkg/errs"

// Apply merges one caller-supplied field into dst. A nil value leaves dst untouched,
// or is reported as missing when required. Parse failures are collected under field.
func Apply[T, U any](fe errs.FieldErrors, field string, value *T, required bool, parse func(T) (U, error), dst *U) {
	if value == nil {
		if required {
			fe.Add(field, errs.MsgRequired)
		}
		return
	}
	v, err := parse(*value)
	if err != nil {
		fe.Add(field, errs.Detail(err))
		return
	}
	*dst = v
}

