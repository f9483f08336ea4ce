package policy

import (
	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/pkg/errs"
)

const MsgPaymentServerControlled = "Payments can only be changed by the payment gateway."

// Payment visibility follows the booking scope. Callers can never mutate a payment.
func Payment(p auth.Principal, a Action) Decision {
	if !p.IsAuthenticated() {
		return denyUnauthenticated()
	}
	switch {
	case a.IsRead(), a == ActionCreate:
		return Allow()
	case a.IsWrite():
		return Deny(errs.ErrPermissionDenied, MsgPaymentServerControlled)
	default:
		return Deny(errs.ErrPermissionDenied, MsgActionNotAllowed)
	}
}
