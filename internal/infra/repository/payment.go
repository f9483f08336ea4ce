package repository

import (
	"context"

	"stay-marketplace/internal/domain/payment"
	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/infra/repository/converter"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db query.DBTX, arg query.CreatePaymentParams) error
	UpdatePaymentSettlement(ctx context.Context, db query.DBTX, arg query.UpdatePaymentSettlementParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      query.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db query.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

// UpdateSettlement reports KindNotFound when the payment is no longer pending.
func (r *PaymentRepository) UpdateSettlement(ctx context.Context, p *payment.Payment) error {
	n, err := r.queries.UpdatePaymentSettlement(ctx, r.db, converter.PaymentToSettlementParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to settle payment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pending payment not found", nil, infra.KindNotFound)
	}
	return nil
}
