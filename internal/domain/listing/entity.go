package listing

import (
	"time"

	"stay-marketplace/internal/domain/money"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Listing struct {
	id            uuid.UUID
	hostID        uuid.UUID
	name          Name
	description   Description
	location      Location
	pricePerNight money.Amount
	createdAt     time.Time
	updatedAt     time.Time
}

// Fields carries caller-supplied attributes. A nil field is absent from the request.
type Fields struct {
	Name          *string
	Description   *string
	Location      *string
	// PricePerNight is the literal decimal text; it is parsed during validation.
	PricePerNight *string
}

// NewListing validates every field; the host is always the creating principal.
func NewListing(hostID uuid.UUID, in Fields, now time.Time) (*Listing, error) {
	l := &Listing{
		id:        uuid.New(),
		hostID:    hostID,
		createdAt: now,
		updatedAt: now,
	}
	if err := l.apply(in, true); err != nil {
		return nil, err
	}
	return l, nil
}

func ReconstructListing(id, hostID uuid.UUID, name, description, location string, price decimal.Decimal, createdAt, updatedAt time.Time) *Listing {
	return &Listing{
		id:            id,
		hostID:        hostID,
		name:          Name{value: name},
		description:   Description{value: description},
		location:      Location{value: location},
		pricePerNight: money.Reconstruct(price),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update applies the supplied fields. With partial set, absent ones keep their
// current value; otherwise every field is required.
func (l *Listing) Update(in Fields, partial bool, now time.Time) error {
	if err := l.apply(in, !partial); err != nil {
		return err
	}
	l.updatedAt = now
	return nil
}

func (l *Listing) apply(in Fields, requireAll bool) error {
	fe := errs.FieldErrors{}
	next := *l

	patch.Apply(fe, "name", in.Name, requireAll, NewName, &next.name)
	patch.Apply(fe, "description", in.Description, requireAll, NewDescription, &next.description)
	patch.Apply(fe, "location", in.Location, requireAll, NewLocation, &next.location)
	patch.Apply(fe, "price_per_night", in.PricePerNight, requireAll, money.Parse, &next.pricePerNight)

	if err := fe.Err(); err != nil {
		return err
	}
	*l = next
	return nil
}

func (l *Listing) ID() uuid.UUID               { return l.id }
func (l *Listing) HostID() uuid.UUID           { return l.hostID }
func (l *Listing) Name() Name                  { return l.name }
func (l *Listing) Description() Description    { return l.description }
func (l *Listing) Location() Location          { return l.location }
func (l *Listing) PricePerNight() money.Amount { return l.pricePerNight }
func (l *Listing) CreatedAt() time.Time        { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time        { return l.updatedAt }
