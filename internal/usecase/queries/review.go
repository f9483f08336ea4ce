package queries

import (
	"context"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/policy"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	List(ctx context.Context, filter ReviewFilter) ([]*ReviewView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
}

type ReviewQueries interface {
	List(ctx context.Context, p auth.Principal, filter ReviewFilter) ([]*ReviewView, error)
	GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*ReviewView, error)
	ListMine(ctx context.Context, p auth.Principal) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

// List ignores any UserID in filter; only ListMine scopes by author.
func (q *reviewQueriesImpl) List(ctx context.Context, p auth.Principal, filter ReviewFilter) ([]*ReviewView, error) {
	if err := policy.Review(p, policy.ActionList, nil).Err(); err != nil {
		return nil, err
	}
	filter.UserID = nil
	return q.store.List(ctx, filter)
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, p auth.Principal, id uuid.UUID) (*ReviewView, error) {
	if err := policy.Review(p, policy.ActionRetrieve, nil).Err(); err != nil {
		return nil, err
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, policy.MsgNotFound)
	}
	return v, nil
}

func (q *reviewQueriesImpl) ListMine(ctx context.Context, p auth.Principal) ([]*ReviewView, error) {
	if err := policy.Review(p, policy.ActionListMine, nil).Err(); err != nil {
		return nil, err
	}
	userID := p.UserID()
	return q.store.List(ctx, ReviewFilter{UserID: &userID})
}
