package queries

import (
	"context"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/policy"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*PaymentView, error)
}

type PaymentQueries interface {
	List(ctx context.Context, p auth.Principal) ([]*PaymentView, error)
	GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

// Payments are visible through the bookings they pay for.
func (q *paymentQueriesImpl) List(ctx context.Context, p auth.Principal) ([]*PaymentView, error) {
	if err := policy.Payment(p, policy.ActionList).Err(); err != nil {
		return nil, err
	}
	scope, _ := policy.VisibleBookings(p)
	return q.store.ListByUser(ctx, scope.UserID())
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*PaymentView, error) {
	if err := policy.Payment(p, policy.ActionRetrieve).Err(); err != nil {
		return nil, err
	}
	scope, _ := policy.VisibleBookings(p)
	v, err := q.store.FindByIDForUser(ctx, id, scope.UserID())
	if err != nil {
		return nil, notFound(err, policy.MsgNotFound)
	}
	if !scope.Owns(v.Booking.UserID) {
		return nil, errNotVisible
	}
	return v, nil
}
