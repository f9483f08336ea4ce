package queries

import (
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/pkg/errs"
)

// notFound rewrites a store miss into the caller-facing 404.
func notFound(err error, detail string) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.NotFound(detail)
	}
	return err
}

var errNotVisible = errs.NotFound(policy.MsgNotFound)
