package shared

import (
	"context"

	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/domain/payment"
	"stay-marketplace/internal/domain/review"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to a single transaction.
type Tx interface {
	Users() UserRepository
	Listings() ListingRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Payments() PaymentRepository
	Reads() CommandReads
}

// CommandReads load write-side state inside the transaction. Lookups that
// miss return an infra not-found error.
type CommandReads interface {
	// ListingByID takes a share lock so the listing cannot vanish before commit.
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	ListingForUpdate(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	// BookingForUser only finds bookings owned by userID.
	BookingForUser(ctx context.Context, id, userID uuid.UUID) (*booking.Booking, error)
	ReviewForUpdate(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ReviewExists(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	PaymentByReference(ctx context.Context, reference string) (*PaymentSnapshot, error)
}

type UserRepository interface {
	// Upsert mirrors the identity provider's user locally.
	Upsert(ctx context.Context, id uuid.UUID, username string) error
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) error
	Update(ctx context.Context, l *listing.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	// CreateIfAbsent inserts unless (user, listing) already has a review; inserted=false then.
	CreateIfAbsent(ctx context.Context, r *review.Review) (inserted bool, err error)
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	UpdateSettlement(ctx context.Context, p *payment.Payment) error
}
