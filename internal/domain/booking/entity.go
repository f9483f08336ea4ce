package booking

import (
	"time"

	"stay-marketplace/internal/domain/money"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	id         uuid.UUID
	listingID  uuid.UUID
	userID     uuid.UUID
	dates      DateRange
	totalPrice money.Amount
	status     Status
	createdAt  time.Time
}

// Fields carries caller-supplied attributes. A nil field is absent from the request.
type Fields struct {
	StartDate  *string
	EndDate    *string
	TotalPrice *string
	Status     *string
}

// NewBooking always starts in StatusPending; a status supplied on creation is ignored.
func NewBooking(listingID, userID uuid.UUID, in Fields, now time.Time) (*Booking, error) {
	b := &Booking{
		id:        uuid.New(),
		listingID: listingID,
		userID:    userID,
		status:    StatusPending,
		createdAt: now,
	}
	in.Status = nil
	if err := b.apply(in, true); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBooking(id, listingID, userID uuid.UUID, start, end time.Time, totalPrice decimal.Decimal, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:         id,
		listingID:  listingID,
		userID:     userID,
		dates:      DateRange{start: start, end: end},
		totalPrice: money.Reconstruct(totalPrice),
		status:     status,
		createdAt:  createdAt,
	}
}

// Update applies the supplied fields; a full update requires dates and price.
// Status is always optional and may move between any of the known values.
func (b *Booking) Update(in Fields, partial bool) error {
	return b.apply(in, !partial)
}

func (b *Booking) apply(in Fields, requireAll bool) error {
	fe := errs.FieldErrors{}
	next := *b

	start, end := b.dates.start, b.dates.end
	patch.Apply(fe, "start_date", in.StartDate, requireAll, ParseDate, &start)
	patch.Apply(fe, "end_date", in.EndDate, requireAll, ParseDate, &end)
	if _, bad := fe["start_date"]; !bad {
		if _, bad = fe["end_date"]; !bad {
			r, err := NewDateRange(start, end)
			if err != nil {
				fe.Add("end_date", errs.Detail(err))
			}
			next.dates = r
		}
	}

	patch.Apply(fe, "total_price", in.TotalPrice, requireAll, money.Parse, &next.totalPrice)
	patch.Apply(fe, "status", in.Status, false, ParseStatus, &next.status)

	if err := fe.Err(); err != nil {
		return err
	}
	*b = next
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) ListingID() uuid.UUID     { return b.listingID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) Dates() DateRange         { return b.dates }
func (b *Booking) TotalPrice() money.Amount { return b.totalPrice }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
