package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	UserID     uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	TotalPrice string
	Status     string
	CreatedAt  pgtype.Timestamptz
}

const bookingColumns = `b.id, b.listing_id, b.user_id, b.start_date, b.end_date, b.total_price::text, b.status, b.created_at`

func scanBooking(row pgx.Row) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.ListingID,
		&i.UserID,
		&i.StartDate,
		&i.EndDate,
		&i.TotalPrice,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const createBooking = `
INSERT INTO bookings (id, listing_id, user_id, start_date, end_date, total_price, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)
`

type CreateBookingParams struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	UserID     uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	TotalPrice string
	Status     string
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.ListingID,
		arg.UserID,
		arg.StartDate,
		arg.EndDate,
		arg.TotalPrice,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const updateBooking = `
UPDATE bookings
SET start_date = $2, end_date = $3, total_price = $4::numeric, status = $5
WHERE id = $1
`

type UpdateBookingParams struct {
	ID         uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	TotalPrice string
	Status     string
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.StartDate,
		arg.EndDate,
		arg.TotalPrice,
		arg.Status,
	)
	return tag.RowsAffected(), err
}

const deleteBooking = `DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBooking, id)
	return tag.RowsAffected(), err
}

type BookingForUserParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

const getBookingForUserForUpdate = `
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.id = $1 AND b.user_id = $2
FOR UPDATE
`

func (q *Queries) GetBookingForUserForUpdate(ctx context.Context, db DBTX, arg BookingForUserParams) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUserForUpdate, arg.ID, arg.UserID))
}

const getBookingForUser = `
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.id = $1 AND b.user_id = $2
`

func (q *Queries) GetBookingForUser(ctx context.Context, db DBTX, arg BookingForUserParams) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUser, arg.ID, arg.UserID))
}

const listBookingsByUser = `
SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.user_id = $1
ORDER BY b.created_at, b.id
`

func (q *Queries) ListBookingsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookingsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
