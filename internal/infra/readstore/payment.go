package readstore

import (
	"context"

	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	GetPaymentForUser(ctx context.Context, db query.DBTX, arg query.PaymentForUserParams) (query.PaymentWithBooking, error)
	ListPaymentsByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.PaymentWithBooking, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      query.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db query.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentForUser(ctx, r.db, query.PaymentForUserParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment by id", err)
	}
	return toPaymentView(row)
}

func (r *PaymentReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by user", err)
	}
	return mapRows(rows, toPaymentView)
}
