package payment

import (
	"strings"
	"time"

	"stay-marketplace/internal/domain/money"
	"stay-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const referencePrefix = "TX-"

// Payment fields other than the booking are server-controlled.
type Payment struct {
	id                   uuid.UUID
	bookingID            uuid.UUID
	amount               money.Amount
	status               Status
	transactionReference string
	gatewayTransactionID *string
	createdAt            time.Time
}

// NewPayment charges the booking's total price and issues a fresh transaction reference.
func NewPayment(bookingID uuid.UUID, amount money.Amount, now time.Time) *Payment {
	return &Payment{
		id:                   uuid.New(),
		bookingID:            bookingID,
		amount:               amount,
		status:               StatusPending,
		transactionReference: referencePrefix + strings.ToUpper(uuid.NewString()),
		createdAt:            now,
	}
}

func ReconstructPayment(id, bookingID uuid.UUID, amount decimal.Decimal, status Status, reference string, gatewayTxID *string, createdAt time.Time) *Payment {
	return &Payment{
		id:                   id,
		bookingID:            bookingID,
		amount:               money.Reconstruct(amount),
		status:               status,
		transactionReference: reference,
		gatewayTransactionID: gatewayTxID,
		createdAt:            createdAt,
	}
}

// Settle records the gateway's verdict. Repeating the same verdict is a no-op and
// reports changed=false; contradicting an earlier verdict fails.
func (p *Payment) Settle(status Status, gatewayTxID string) (changed bool, err error) {
	if !status.IsTerminal() {
		return false, errs.Invalid(ErrInvalidStatus, "Payment can only be settled as COMPLETED or FAILED.")
	}
	gatewayTxID = strings.TrimSpace(gatewayTxID)
	if gatewayTxID == "" {
		return false, errs.Invalid(ErrMissingGatewayRef, "gateway_transaction_id: "+errs.MsgRequired)
	}
	if p.status.IsTerminal() {
		if p.status == status {
			return false, nil
		}
		return false, errs.Invalid(ErrAlreadySettled, "Payment has already been settled.")
	}
	p.status = status
	p.gatewayTransactionID = &gatewayTxID
	return true, nil
}

func (p *Payment) ID() uuid.UUID                 { return p.id }
func (p *Payment) BookingID() uuid.UUID          { return p.bookingID }
func (p *Payment) Amount() money.Amount          { return p.amount }
func (p *Payment) Status() Status                { return p.status }
func (p *Payment) TransactionReference() string  { return p.transactionReference }
func (p *Payment) GatewayTransactionID() *string { return p.gatewayTransactionID }
func (p *Payment) CreatedAt() time.Time          { return p.createdAt }
