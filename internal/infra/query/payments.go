package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Payments struct {
	ID                   uuid.UUID
	BookingID            uuid.UUID
	Amount               string
	Status               string
	TransactionReference string
	GatewayTransactionID pgtype.Text
	CreatedAt            pgtype.Timestamptz
}

// PaymentWithBooking is a payment joined with the booking it pays for.
type PaymentWithBooking struct {
	Payments
	Booking Bookings
}

const paymentColumns = `p.id, p.booking_id, p.amount::text, p.status, p.transaction_reference, p.gateway_transaction_id, p.created_at`

func scanPaymentWithBooking(row pgx.Row) (PaymentWithBooking, error) {
	var i PaymentWithBooking
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.Amount,
		&i.Status,
		&i.TransactionReference,
		&i.GatewayTransactionID,
		&i.CreatedAt,
		&i.Booking.ID,
		&i.Booking.ListingID,
		&i.Booking.UserID,
		&i.Booking.StartDate,
		&i.Booking.EndDate,
		&i.Booking.TotalPrice,
		&i.Booking.Status,
		&i.Booking.CreatedAt,
	)
	return i, err
}

const createPayment = `
INSERT INTO payments (id, booking_id, amount, status, transaction_reference, gateway_transaction_id, created_at)
VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
`

type CreatePaymentParams struct {
	ID                   uuid.UUID
	BookingID            uuid.UUID
	Amount               string
	Status               string
	TransactionReference string
	GatewayTransactionID pgtype.Text
	CreatedAt            pgtype.Timestamptz
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID,
		arg.BookingID,
		arg.Amount,
		arg.Status,
		arg.TransactionReference,
		arg.GatewayTransactionID,
		arg.CreatedAt,
	)
	return err
}

const updatePaymentSettlement = `
UPDATE payments
SET status = $2, gateway_transaction_id = $3
WHERE id = $1 AND status = 'PENDING'
`

type UpdatePaymentSettlementParams struct {
	ID                   uuid.UUID
	Status               string
	GatewayTransactionID pgtype.Text
}

// UpdatePaymentSettlement only touches pending payments.
func (q *Queries) UpdatePaymentSettlement(ctx context.Context, db DBTX, arg UpdatePaymentSettlementParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentSettlement, arg.ID, arg.Status, arg.GatewayTransactionID)
	return tag.RowsAffected(), err
}

const getPaymentByReferenceForUpdate = `
SELECT ` + paymentColumns + `, ` + bookingColumns + `
FROM payments p
JOIN bookings b ON b.id = p.booking_id
WHERE p.transaction_reference = $1
FOR UPDATE OF p
`

func (q *Queries) GetPaymentByReferenceForUpdate(ctx context.Context, db DBTX, reference string) (PaymentWithBooking, error) {
	return scanPaymentWithBooking(db.QueryRow(ctx, getPaymentByReferenceForUpdate, reference))
}

type PaymentForUserParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

const getPaymentForUser = `
SELECT ` + paymentColumns + `, ` + bookingColumns + `
FROM payments p
JOIN bookings b ON b.id = p.booking_id
WHERE p.id = $1 AND b.user_id = $2
`

func (q *Queries) GetPaymentForUser(ctx context.Context, db DBTX, arg PaymentForUserParams) (PaymentWithBooking, error) {
	return scanPaymentWithBooking(db.QueryRow(ctx, getPaymentForUser, arg.ID, arg.UserID))
}

const listPaymentsByUser = `
SELECT ` + paymentColumns + `, ` + bookingColumns + `
FROM payments p
JOIN bookings b ON b.id = p.booking_id
WHERE b.user_id = $1
ORDER BY p.created_at, p.id
`

func (q *Queries) ListPaymentsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]PaymentWithBooking, error) {
	rows, err := db.Query(ctx, listPaymentsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PaymentWithBooking
	for rows.Next() {
		i, err := scanPaymentWithBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
