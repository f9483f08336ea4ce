// Package policy decides whether a principal may perform an action on a resource.
// Decisions are pure: callers load the target and pass it in.
package policy

import (
	"net/http"

	"stay-marketplace/internal/pkg/errs"
)

type Action string

const (
	ActionList          Action = "list"
	ActionRetrieve      Action = "retrieve"
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
	ActionListMine      Action = "list_mine"
)

const (
	MsgNotAuthenticated = "Authentication credentials were not provided."
	MsgAuthRequired     = "Authentication required."
	MsgNotFound         = "Not found."
	MsgActionNotAllowed = "You do not have permission to perform this action."
)

func (a Action) IsRead() bool {
	return a == ActionList || a == ActionRetrieve
}

func (a Action) IsWrite() bool {
	return a == ActionUpdate || a == ActionPartialUpdate || a == ActionDestroy
}

// Decision is Allow or Deny with a caller-facing reason.
type Decision struct {
	kind   error
	reason string
}

func Allow() Decision {
	return Decision{}
}

func Deny(kind error, reason string) Decision {
	return Decision{kind: kind, reason: reason}
}

func (d Decision) Allowed() bool  { return d.kind == nil }
func (d Decision) Reason() string { return d.reason }

// Status is the HTTP status a denial maps to; 200 when allowed.
func (d Decision) Status() int {
	switch d.kind {
	case nil:
		return http.StatusOK
	case errs.ErrAuthenticationRequired:
		return http.StatusUnauthorized
	case errs.ErrPermissionDenied:
		return http.StatusForbidden
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusForbidden
	}
}

// Err is nil when allowed, otherwise a public error of the denial kind.
func (d Decision) Err() error {
	if d.Allowed() {
		return nil
	}
	return errs.Public(d.kind, d.reason)
}

func denyUnauthenticated() Decision {
	return Deny(errs.ErrAuthenticationRequired, MsgNotAuthenticated)
}

func ownershipMessage(a Action, noun string) string {
	verb := "update"
	if a == ActionDestroy {
		verb = "delete"
	}
	return "You can only " + verb + " your own " + noun + "."
}
