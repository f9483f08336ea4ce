//go:build unit || e2e

package builder

import (
	"time"

	domlisting "stay-marketplace/internal/domain/listing"
	reqdto "stay-marketplace/internal/handler/dto/request"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return &ListingBuilder{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		Name:          "Seaside Cottage",
		Description:   "Two bedrooms, five minutes from the beach.",
		Location:      "Brighton",
		PricePerNight: "150.00",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ListingBuilder) Fields() domlisting.Fields {
	name, desc, loc, price := b.Name, b.Description, b.Location, b.PricePerNight
	return domlisting.Fields{Name: &name, Description: &desc, Location: &loc, PricePerNight: &price}
}

func (b *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	return domlisting.NewListing(b.HostID, b.Fields(), b.CreatedAt)
}

// BuildStored returns a listing as loaded from storage, keeping the builder's ID.
func (b *ListingBuilder) BuildStored() *domlisting.Listing {
	return domlisting.ReconstructListing(b.ID, b.HostID, b.Name, b.Description, b.Location,
		decimal.RequireFromString(b.PricePerNight), b.CreatedAt, b.UpdatedAt)
}

func (b *ListingBuilder) BuildRow() query.Listings {
	return query.Listings{
		ID:            b.ID,
		HostID:        b.HostID,
		Name:          b.Name,
		Description:   b.Description,
		Location:      b.Location,
		PricePerNight: b.PricePerNight,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:            b.ID,
		HostID:        b.HostID,
		Name:          b.Name,
		Description:   b.Description,
		Location:      b.Location,
		PricePerNight: decimal.RequireFromString(b.PricePerNight),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ListingBuilder) BuildRequest() reqdto.ListingRequest {
	name, desc, loc := b.Name, b.Description, b.Location
	price := reqdto.Decimal(b.PricePerNight)
	return reqdto.ListingRequest{Name: &name, Description: &desc, Location: &loc, PricePerNight: &price}
}

// Fluent builder methods
func (b *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	b.ID = id
	return b
}

func (b *ListingBuilder) WithHostID(hostID uuid.UUID) *ListingBuilder {
	b.HostID = hostID
	return b
}

func (b *ListingBuilder) WithName(name string) *ListingBuilder {
	b.Name = name
	return b
}

func (b *ListingBuilder) WithLocation(location string) *ListingBuilder {
	b.Location = location
	return b
}

func (b *ListingBuilder) WithPricePerNight(price string) *ListingBuilder {
	b.PricePerNight = price
	return b
}
