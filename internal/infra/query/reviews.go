package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Reviews struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int32
	Comment   string
	CreatedAt pgtype.Timestamptz
}

const reviewColumns = `r.id, r.listing_id, r.user_id, r.rating, r.comment, r.created_at`

func scanReview(row pgx.Row) (Reviews, error) {
	var i Reviews
	err := row.Scan(
		&i.ID,
		&i.ListingID,
		&i.UserID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
	)
	return i, err
}

// Returns pgx.ErrNoRows when (user_id, listing_id) already has a review.
const createReviewIfAbsent = `
INSERT INTO reviews (id, listing_id, user_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, listing_id) DO NOTHING
RETURNING id
`

type CreateReviewParams struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int32
	Comment   string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateReviewIfAbsent(ctx context.Context, db DBTX, arg CreateReviewParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReviewIfAbsent,
		arg.ID,
		arg.ListingID,
		arg.UserID,
		arg.Rating,
		arg.Comment,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateReview = `UPDATE reviews SET rating = $2, comment = $3 WHERE id = $1`

type UpdateReviewParams struct {
	ID      uuid.UUID
	Rating  int32
	Comment string
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReview, arg.ID, arg.Rating, arg.Comment)
	return tag.RowsAffected(), err
}

const deleteReview = `DELETE FROM reviews WHERE id = $1`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReview, id)
	return tag.RowsAffected(), err
}

const reviewExists = `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND listing_id = $2)`

type ReviewExistsParams struct {
	UserID    uuid.UUID
	ListingID uuid.UUID
}

func (q *Queries) ReviewExists(ctx context.Context, db DBTX, arg ReviewExistsParams) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, reviewExists, arg.UserID, arg.ListingID).Scan(&exists)
	return exists, err
}

const getReviewForUpdate = `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.id = $1 FOR UPDATE`

func (q *Queries) GetReviewForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	return scanReview(db.QueryRow(ctx, getReviewForUpdate, id))
}

const getReviewByID = `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.id = $1`

func (q *Queries) GetReviewByID(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	return scanReview(db.QueryRow(ctx, getReviewByID, id))
}

// NULL parameters disable the corresponding filter.
const listReviews = `
SELECT ` + reviewColumns + `
FROM reviews r
WHERE ($1::uuid IS NULL OR r.listing_id = $1::uuid)
  AND ($2::uuid IS NULL OR r.user_id = $2::uuid)
ORDER BY r.created_at, r.id
`

type ListReviewsParams struct {
	ListingID pgtype.UUID
	UserID    pgtype.UUID
}

func (q *Queries) ListReviews(ctx context.Context, db DBTX, arg ListReviewsParams) ([]Reviews, error) {
	rows, err := db.Query(ctx, listReviews, arg.ListingID, arg.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reviews
	for rows.Next() {
		i, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
