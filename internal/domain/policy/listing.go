package policy

import (
	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/pkg/errs"
)

// Listing: reads are public, creation needs a principal, mutation needs the host.
// With a nil target only the authentication part of a write is checked.
func Listing(p auth.Principal, a Action, target *listing.Listing) Decision {
	switch {
	case a.IsRead():
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
		if target != nil && !p.Is(target.HostID()) {
			return Deny(errs.ErrPermissionDenied, ownershipMessage(a, "listings"))
		}
		return Allow()
	default:
		return Deny(errs.ErrPermissionDenied, MsgActionNotAllowed)
	}
}
