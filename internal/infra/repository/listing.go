package repository

import (
	"context"

	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db query.DBTX, arg query.CreateListingParams) error
	UpdateListing(ctx context.Context, db query.DBTX, arg query.UpdateListingParams) (int64, error)
	DeleteListing(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      query.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db query.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	if err := r.queries.CreateListing(ctx, r.db, converter.ListingToCreateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	n, err := r.queries.UpdateListing(ctx, r.db, converter.ListingToUpdateParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteListing(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
