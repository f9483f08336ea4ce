package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingView represents read-optimized listing data
type ListingView struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	UserID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice decimal.Decimal
	Status     string
	CreatedAt  time.Time
}

// ReviewView represents read-optimized review data
type ReviewView struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int32
	Comment   string
	CreatedAt time.Time
}

// PaymentView embeds the full booking it pays for
type PaymentView struct {
	ID                   uuid.UUID
	Booking              BookingView
	Amount               decimal.Decimal
	Status               string
	TransactionReference string
	GatewayTransactionID *string
	CreatedAt            time.Time
}

type ListingFilter struct {
	HostUsername *string
}

type ReviewFilter struct {
	ListingID *uuid.UUID
	UserID    *uuid.UUID
}
