package shared

import (
	"stay-marketplace/internal/domain/payment"

	"github.com/google/uuid"
)

// PaymentSnapshot carries the payment together with the owner of its booking,
// which the gateway callback needs for notifications.
type PaymentSnapshot struct {
	Payment       *payment.Payment
	BookingUserID uuid.UUID
}
