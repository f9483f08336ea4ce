package queries

import (
	"context"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/policy"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context, p auth.Principal) ([]*BookingView, error)
	GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) List(ctx context.Context, p auth.Principal) ([]*BookingView, error) {
	scope, d := policy.VisibleBookings(p)
	if err := d.Err(); err != nil {
		return nil, err
	}
	views, err := q.store.ListByUser(ctx, scope.UserID())
	if err != nil {
		return nil, err
	}
	visible := views[:0]
	for _, v := range views {
		if scope.Owns(v.UserID) {
			visible = append(visible, v)
		}
	}
	return visible, nil
}

// GetByID answers 404 for bookings outside the principal's scope.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*BookingView, error) {
	scope, d := policy.VisibleBookings(p)
	if err := d.Err(); err != nil {
		return nil, err
	}
	v, err := q.store.FindByIDForUser(ctx, id, scope.UserID())
	if err != nil {
		return nil, notFound(err, policy.MsgNotFound)
	}
	if !scope.Owns(v.UserID) {
		return nil, errNotVisible
	}
	return v, nil
}
