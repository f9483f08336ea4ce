package readstore

import (
	"context"

	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadQueries interface {
	GetReviewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Reviews, error)
	ListReviews(ctx context.Context, db query.DBTX, arg query.ListReviewsParams) ([]query.Reviews, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      query.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db query.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) List(ctx context.Context, filter queries.ReviewFilter) ([]*queries.ReviewView, error) {
	params := query.ListReviewsParams{
		ListingID: toPgUUID(filter.ListingID),
		UserID:    toPgUUID(filter.UserID),
	}
	rows, err := r.queries.ListReviews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(row)
	}
	return result, nil
}

func toPgUUID(v *uuid.UUID) pgtype.UUID {
	if v == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *v, Valid: true}
}
