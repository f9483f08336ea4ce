package repository

import (
	"context"

	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/infra/repository/converter"
	"stay-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReviewIfAbsent(ctx context.Context, db query.DBTX, arg query.CreateReviewParams) (uuid.UUID, error)
	UpdateReview(ctx context.Context, db query.DBTX, arg query.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      query.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db query.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) CreateIfAbsent(ctx context.Context, rev *review.Review) (bool, error) {
	_, err := r.queries.CreateReviewIfAbsent(ctx, r.db, converter.ReviewToCreateParams(rev))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to create review", err)
	}
	return true, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, r.db, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, r.db, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
