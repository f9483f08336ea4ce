package queries

import (
	"context"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/policy"

	"github.com/google/uuid"
)

type ListingReadStore interface {
	List(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ListingQueries interface {
	List(ctx context.Context, p auth.Principal, filter ListingFilter) ([]*ListingView, error)
	GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

// List returns every listing; an unknown host username yields an empty slice.
func (q *listingQueriesImpl) List(ctx context.Context, p auth.Principal, filter ListingFilter) ([]*ListingView, error) {
	if err := policy.Listing(p, policy.ActionList, nil).Err(); err != nil {
		return nil, err
	}
	return q.store.List(ctx, filter)
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*ListingView, error) {
	if err := policy.Listing(p, policy.ActionRetrieve, nil).Err(); err != nil {
		return nil, err
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, policy.MsgNotFound)
	}
	return v, nil
}
