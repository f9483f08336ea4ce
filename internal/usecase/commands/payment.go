package commands

import (
	"context"
	"strings"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/payment"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/pkg/clock"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePaymentResult struct {
	PaymentID uuid.UUID
}

// GatewayUpdate is the payment gateway's out-of-band verdict on a transaction.
type GatewayUpdate struct {
	TransactionReference string
	Status               string
	GatewayTransactionID string
}

type PaymentCommands interface {
	// Create starts a payment for one of the principal's bookings. bookingID is
	// the raw `booking_id` value from the request body.
	Create(ctx context.Context, p auth.Principal, bookingID *string) (*CreatePaymentResult, error)
	ApplyGatewayUpdate(ctx context.Context, in GatewayUpdate) error
}

type paymentCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	dispatcher shared.TaskDispatcher
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock, dispatcher shared.TaskDispatcher) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, clock: clk, dispatcher: dispatcher}
}

func (uc *paymentCommandsImpl) Create(ctx context.Context, p auth.Principal, bookingID *string) (*CreatePaymentResult, error) {
	if err := policy.Payment(p, policy.ActionCreate).Err(); err != nil {
		return nil, err
	}
	scope, d := policy.VisibleBookings(p)
	if err := d.Err(); err != nil {
		return nil, err
	}
	if bookingID == nil || strings.TrimSpace(*bookingID) == "" {
		return nil, errs.FieldErrors{"booking_id": {errs.MsgRequired}}.Err()
	}
	id, err := uuid.Parse(strings.TrimSpace(*bookingID))
	if err != nil {
		return nil, errs.NotFound(MsgBookingNotFound)
	}
	var created *payment.Payment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingForUser(ctx, id, scope.UserID())
		if derr != nil {
			return notFound(derr, MsgBookingNotFound)
		}
		if !scope.Includes(b) {
			return errs.NotFound(MsgBookingNotFound)
		}
		created = payment.NewPayment(b.ID(), b.TotalPrice(), uc.clock.Now())
		return tx.Payments().Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return &CreatePaymentResult{PaymentID: created.ID()}, nil
}

// ApplyGatewayUpdate settles a pending payment. Replays of the same verdict succeed
// without side effects.
func (uc *paymentCommandsImpl) ApplyGatewayUpdate(ctx context.Context, in GatewayUpdate) error {
	status, err := payment.ParseGatewayStatus(in.Status)
	if err != nil {
		return errs.FieldErrors{"status": {errs.Detail(err)}}.Err()
	}
	ref := strings.TrimSpace(in.TransactionReference)
	if ref == "" {
		return errs.FieldErrors{"transaction_reference": {errs.MsgRequired}}.Err()
	}

	var (
		changed bool
		snap    *shared.PaymentSnapshot
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Reads().PaymentByReference(ctx, ref)
		if derr != nil {
			return notFound(derr, MsgPaymentNotFound)
		}
		changed, derr = s.Payment.Settle(status, in.GatewayTransactionID)
		if derr != nil || !changed {
			return derr
		}
		snap = s
		return tx.Payments().UpdateSettlement(ctx, s.Payment)
	})
	if err != nil {
		return err
	}

	if changed && status == payment.StatusCompleted {
		p := snap.Payment
		shared.DispatchBestEffort(ctx, uc.dispatcher, shared.NewTask(shared.TaskPaymentConfirmationEmail, map[string]any{
			"payment_id":            p.ID().String(),
			"booking_id":            p.BookingID().String(),
			"user_id":               snap.BookingUserID.String(),
			"amount":                p.Amount().String(),
			"transaction_reference": p.TransactionReference(),
		}, uc.clock.Now()))
	}
	return nil
}
