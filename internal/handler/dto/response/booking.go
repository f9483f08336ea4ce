package response

import (
	"time"

	"stay-marketplace/internal/usecase/queries"
)

type BookingResponse struct {
	ID         string    `json:"booking_id"`
	ListingID  string    `json:"listing"`
	UserID     string    `json:"user"`
	StartDate  Date      `json:"start_date" swaggertype:"string" example:"2026-07-01"`
	EndDate    Date      `json:"end_date" swaggertype:"string" example:"2026-07-05"`
	TotalPrice string    `json:"total_price" example:"600.00"`
	Status     string    `json:"status" enums:"PENDING,CONFIRMED,CANCELLED"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return copyView[BookingResponse](v)
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	return copyViews[BookingResponse](views)
}
