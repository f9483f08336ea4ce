//go:build unit || e2e

package builder

import (
	"time"

	dompayment "stay-marketplace/internal/domain/payment"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	ID                   uuid.UUID
	Booking              *BookingBuilder
	Amount               string
	Status               dompayment.Status
	TransactionReference string
	GatewayTransactionID *string
	CreatedAt            time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	booking := NewBookingBuilder()
	return &PaymentBuilder{
		ID:                   uuid.New(),
		Booking:              booking,
		Amount:               booking.TotalPrice,
		Status:               dompayment.StatusPending,
		TransactionReference: "TX-" + uuid.NewString(),
		CreatedAt:            time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PaymentBuilder) BuildStored() *dompayment.Payment {
	return dompayment.ReconstructPayment(p.ID, p.Booking.ID, decimal.RequireFromString(p.Amount),
		p.Status, p.TransactionReference, p.GatewayTransactionID, p.CreatedAt)
}

func (p *PaymentBuilder) BuildRow() query.PaymentWithBooking {
	gw := pgtype.Text{}
	if p.GatewayTransactionID != nil {
		gw = pgtype.Text{String: *p.GatewayTransactionID, Valid: true}
	}
	return query.PaymentWithBooking{
		Payments: query.Payments{
			ID:                   p.ID,
			BookingID:            p.Booking.ID,
			Amount:               p.Amount,
			Status:               p.Status.String(),
			TransactionReference: p.TransactionReference,
			GatewayTransactionID: gw,
			CreatedAt:            pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		},
		Booking: p.Booking.BuildRow(),
	}
}

func (p *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:                   p.ID,
		Booking:              *p.Booking.BuildView(),
		Amount:               decimal.RequireFromString(p.Amount),
		Status:               p.Status.String(),
		TransactionReference: p.TransactionReference,
		GatewayTransactionID: p.GatewayTransactionID,
		CreatedAt:            p.CreatedAt,
	}
}

// Fluent builder methods
func (p *PaymentBuilder) WithBooking(b *BookingBuilder) *PaymentBuilder {
	p.Booking = b
	p.Amount = b.TotalPrice
	return p
}

func (p *PaymentBuilder) WithStatus(status dompayment.Status) *PaymentBuilder {
	p.Status = status
	return p
}

func (p *PaymentBuilder) WithReference(ref string) *PaymentBuilder {
	p.TransactionReference = ref
	return p
}

func (p *PaymentBuilder) AsCompleted(gatewayTxID string) *PaymentBuilder {
	p.Status = dompayment.StatusCompleted
	p.GatewayTransactionID = &gatewayTxID
	return p
}
