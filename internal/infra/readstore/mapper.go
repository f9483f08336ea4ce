package readstore

import (
	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
	"stay-marketplace/internal/usecase/queries"
)

func toListingView(row query.Listings) (*queries.ListingView, error) {
	price, err := pgconv.DecimalFromText(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listing price", err)
	}
	return &queries.ListingView{
		ID:            row.ID,
		HostID:        row.HostID,
		Name:          row.Name,
		Description:   row.Description,
		Location:      row.Location,
		PricePerNight: price,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toBookingView(row query.Bookings) (*queries.BookingView, error) {
	total, err := pgconv.DecimalFromText(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking total", err)
	}
	return &queries.BookingView{
		ID:         row.ID,
		ListingID:  row.ListingID,
		UserID:     row.UserID,
		StartDate:  pgconv.DateFromPgtype(row.StartDate),
		EndDate:    pgconv.DateFromPgtype(row.EndDate),
		TotalPrice: total,
		Status:     row.Status,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func toReviewView(row query.Reviews) *queries.ReviewView {
	return &queries.ReviewView{
		ID:        row.ID,
		ListingID: row.ListingID,
		UserID:    row.UserID,
		Rating:    row.Rating,
		Comment:   row.Comment,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toPaymentView(row query.PaymentWithBooking) (*queries.PaymentView, error) {
	amount, err := pgconv.DecimalFromText(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment amount", err)
	}
	b, err := toBookingView(row.Booking)
	if err != nil {
		return nil, err
	}
	return &queries.PaymentView{
		ID:                   row.ID,
		Booking:              *b,
		Amount:               amount,
		Status:               row.Status,
		TransactionReference: row.TransactionReference,
		GatewayTransactionID: pgconv.StringPtrFromPgtype(row.GatewayTransactionID),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func mapRows[R, V any](rows []R, conv func(R) (*V, error)) ([]*V, error) {
	result := make([]*V, 0, len(rows))
	for _, row := range rows {
		v, err := conv(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
