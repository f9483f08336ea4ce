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

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Listings, error)
	ListListings(ctx context.Context, db query.DBTX, hostUsername pgtype.Text) ([]query.Listings, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      query.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db query.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	return toListingView(row)
}

func (r *ListingReadStore) List(ctx context.Context, filter queries.ListingFilter) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListings(ctx, r.db, pgconv.StringPtrToPgtype(filter.HostUsername))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	return mapRows(rows, toListingView)
}
