package response

import (
	"time"

	"stay-marketplace/internal/usecase/queries"
)

// PaymentResponse expands the booking it pays for.
type PaymentResponse struct {
	ID                   string           `json:"payment_id"`
	Booking              *BookingResponse `json:"booking" copier:"-"`
	Amount               string           `json:"amount" example:"600.00"`
	Status               string           `json:"status" enums:"PENDING,COMPLETED,FAILED"`
	TransactionReference string           `json:"transaction_reference"`
	GatewayTransactionID *string          `json:"gateway_transaction_id"`
	CreatedAt            time.Time        `json:"created_at"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	res := copyView[PaymentResponse](v)
	res.Booking = FromBookingView(&v.Booking)
	return res
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromPaymentView(v))
	}
	return out
}
