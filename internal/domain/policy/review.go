package policy

import (
	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/pkg/errs"
)

func Review(p auth.Principal, a Action, target *review.Review) Decision {
	switch {
	case a.IsRead():
		return Allow()
	case a == ActionListMine:
		if !p.IsAuthenticated() {
			return Deny(errs.ErrAuthenticationRequired, MsgAuthRequired)
		}
		return Allow()
	case a == ActionCreate:
		if !p.IsAuthenticated() {
			return denyUnauthenticated()
		}
		return Allow()
	case a.IsWrite():
		if !p.IsAuthenticated() {
			return denyUnauthenticated()
		}
		if target != nil && !p.Is(target.UserID()) {
			return Deny(errs.ErrPermissionDenied, ownershipMessage(a, "reviews"))
		}
		return Allow()
	default:
		return Deny(errs.ErrPermissionDenied, MsgActionNotAllowed)
	}
}
