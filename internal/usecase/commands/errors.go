package commands

import (
	"strings"

	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MsgListingRequired = "Listing ID is required."
	MsgListingNotFound = "Listing not found."
	MsgSelfBooking     = "You cannot book your own listing."
	MsgDuplicateReview = "You have already reviewed this listing."
	MsgBookingNotFound = "Booking not found."
	MsgPaymentNotFound = "Payment not found."
)

// notFound rewrites a store miss into the caller-facing 404.
func notFound(err error, detail string) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.NotFound(detail)
	}
	return err
}

// resolveListingRef validates the listing reference from a request body. A value
// that is not a UUID can never resolve, so it is reported as a missing listing.
func resolveListingRef(raw *string) (uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return uuid.Nil, errs.Validation(MsgListingRequired)
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return uuid.Nil, errs.NotFound(MsgListingNotFound)
	}
	return id, nil
}

func updateAction(partial bool) policy.Action {
	if partial {
		return policy.ActionPartialUpdate
	}
	return policy.ActionUpdate
}
