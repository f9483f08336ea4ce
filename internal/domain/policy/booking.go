package policy

import (
	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingScope is the set of bookings a principal can see: its own.
type BookingScope struct {
	userID uuid.UUID
}

// VisibleBookings returns the principal's scope, or a denial for anonymous callers.
func VisibleBookings(p auth.Principal) (BookingScope, Decision) {
	if !p.IsAuthenticated() {
		return BookingScope{}, denyUnauthenticated()
	}
	return BookingScope{userID: p.UserID()}, Allow()
}

func (s BookingScope) UserID() uuid.UUID { return s.userID }

// Owns reports whether a booking made by userID is inside the scope.
func (s BookingScope) Owns(userID uuid.UUID) bool {
	return s.userID != uuid.Nil && userID == s.userID
}

func (s BookingScope) Includes(b *booking.Booking) bool {
	return b != nil && s.Owns(b.UserID())
}

// Booking requires a principal for every action. It does not filter visibility;
// callers resolve targets through VisibleBookings first.
func Booking(p auth.Principal, a Action, target *booking.Booking) Decision {
	if !p.IsAuthenticated() {
		return denyUnauthenticated()
	}
	switch {
	case a.IsRead(), a == ActionCreate:
		return Allow()
	case a.IsWrite():
		if target != nil && !p.Is(target.UserID()) {
			return Deny(errs.ErrPermissionDenied, ownershipMessage(a, "bookings"))
		}
		return Allow()
	default:
		return Deny(errs.ErrPermissionDenied, MsgActionNotAllowed)
	}
}
