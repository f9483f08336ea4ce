package readstore

import (
	"context"

	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingForUser(ctx context.Context, db query.DBTX, arg query.BookingForUserParams) (query.Bookings, error)
	ListBookingsByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingForUser(ctx, r.db, query.BookingForUserParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return mapRows(rows, toBookingView)
}
