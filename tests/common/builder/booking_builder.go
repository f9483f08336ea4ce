//go:build unit || e2e

package builder

import (
	"time"

	dombooking "stay-marketplace/internal/domain/booking"
	reqdto "stay-marketplace/internal/handler/dto/request"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	UserID     uuid.UUID
	StartDate  string
	EndDate    string
	TotalPrice string
	Status     dombooking.Status
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		UserID:     uuid.New(),
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-05",
		TotalPrice: "600.00",
		Status:     dombooking.StatusPending,
		CreatedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) Fields() dombooking.Fields {
	start, end, total := b.StartDate, b.EndDate, b.TotalPrice
	return dombooking.Fields{StartDate: &start, EndDate: &end, TotalPrice: &total}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ListingID, b.UserID, b.Fields(), b.CreatedAt)
}

func (b *BookingBuilder) BuildStored() *dombooking.Booking {
	return dombooking.ReconstructBooking(b.ID, b.ListingID, b.UserID, b.start(), b.end(),
		decimal.RequireFromString(b.TotalPrice), b.Status, b.CreatedAt)
}

func (b *BookingBuilder) BuildRow() query.Bookings {
	return query.Bookings{
		ID:         b.ID,
		ListingID:  b.ListingID,
		UserID:     b.UserID,
		StartDate:  pgtype.Date{Time: b.start(), Valid: true},
		EndDate:    pgtype.Date{Time: b.end(), Valid: true},
		TotalPrice: b.TotalPrice,
		Status:     b.Status.String(),
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		ListingID:  b.ListingID,
		UserID:     b.UserID,
		StartDate:  b.start(),
		EndDate:    b.end(),
		TotalPrice: decimal.RequireFromString(b.TotalPrice),
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildRequest() reqdto.BookingRequest {
	listing := b.ListingID.String()
	start, end := b.StartDate, b.EndDate
	total := reqdto.Decimal(b.TotalPrice)
	return reqdto.BookingRequest{Listing: &listing, StartDate: &start, EndDate: &end, TotalPrice: &total}
}

func (b *BookingBuilder) start() time.Time {
	t, _ := time.Parse(dombooking.DateLayout, b.StartDate)
	return t
}

func (b *BookingBuilder) end() time.Time {
	t, _ := time.Parse(dombooking.DateLayout, b.EndDate)
	return t
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithListingID(listingID uuid.UUID) *BookingBuilder {
	b.ListingID = listingID
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithTotalPrice(total string) *BookingBuilder {
	b.TotalPrice = total
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}
