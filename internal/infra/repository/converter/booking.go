package converter

import (
	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) query.CreateBookingParams {
	return query.CreateBookingParams{
		ID:         b.ID(),
		ListingID:  b.ListingID(),
		UserID:     b.UserID(),
		StartDate:  pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:    pgconv.DateToPgtype(b.Dates().End()),
		TotalPrice: b.TotalPrice().String(),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) query.UpdateBookingParams {
	return query.UpdateBookingParams{
		ID:         b.ID(),
		StartDate:  pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:    pgconv.DateToPgtype(b.Dates().End()),
		TotalPrice: b.TotalPrice().String(),
		Status:     b.Status().String(),
	}
}

func BookingFromRow(row query.Bookings) (*booking.Booking, error) {
	total, err := pgconv.DecimalFromText(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		row.ListingID,
		row.UserID,
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		total,
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
