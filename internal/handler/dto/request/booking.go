package request

import (
	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/usecase/commands"
)

type BookingRequest struct {
	Listing    *string  `json:"listing"`
	StartDate  *string  `json:"start_date" example:"2026-07-01"`
	EndDate    *string  `json:"end_date" example:"2026-07-05"`
	TotalPrice *Decimal `json:"total_price" swaggertype:"string" example:"600.00"`
	Status     *string  `json:"status" enums:"PENDING,CONFIRMED,CANCELLED"`
}

func (r *BookingRequest) ToFields() booking.Fields {
	return booking.Fields{
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice.text(),
		Status:     r.Status,
	}
}

// ToCreateInput keeps the listing reference raw; the usecase decides between
// "required" and "not found".
func (r *BookingRequest) ToCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ListingID: r.Listing,
		Fields:    r.ToFields(),
	}
}
