package converter

import (
	"stay-marketplace/internal/domain/payment"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) query.CreatePaymentParams {
	return query.CreatePaymentParams{
		ID:                   p.ID(),
		BookingID:            p.BookingID(),
		Amount:               p.Amount().String(),
		Status:               p.Status().String(),
		TransactionReference: p.TransactionReference(),
		GatewayTransactionID: pgconv.StringPtrToPgtype(p.GatewayTransactionID()),
		CreatedAt:            pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PaymentToSettlementParams(p *payment.Payment) query.UpdatePaymentSettlementParams {
	return query.UpdatePaymentSettlementParams{
		ID:                   p.ID(),
		Status:               p.Status().String(),
		GatewayTransactionID: pgconv.StringPtrToPgtype(p.GatewayTransactionID()),
	}
}

func PaymentFromRow(row query.Payments) (*payment.Payment, error) {
	amount, err := pgconv.DecimalFromText(row.Amount)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(
		row.ID,
		row.BookingID,
		amount,
		payment.Status(row.Status),
		row.TransactionReference,
		pgconv.StringPtrFromPgtype(row.GatewayTransactionID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
