package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Listings struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

const listingColumns = `l.id, l.host_id, l.name, l.description, l.location, l.price_per_night::text, l.created_at, l.updated_at`

func scanListing(row pgx.Row) (Listings, error) {
	var i Listings
	err := row.Scan(
		&i.ID,
		&i.HostID,
		&i.Name,
		&i.Description,
		&i.Location,
		&i.PricePerNight,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createListing = `
INSERT INTO listings (id, host_id, name, description, location, price_per_night, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)
`

type CreateListingParams struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateListing(ctx context.Context, db DBTX, arg CreateListingParams) error {
	_, err := db.Exec(ctx, createListing,
		arg.ID,
		arg.HostID,
		arg.Name,
		arg.Description,
		arg.Location,
		arg.PricePerNight,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateListing = `
UPDATE listings
SET name = $2, description = $3, location = $4, price_per_night = $5::numeric, updated_at = $6
WHERE id = $1
`

type UpdateListingParams struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight string
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateListing(ctx context.Context, db DBTX, arg UpdateListingParams) (int64, error) {
	tag, err := db.Exec(ctx, updateListing,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Location,
		arg.PricePerNight,
		arg.UpdatedAt,
	)
	return tag.RowsAffected(), err
}

const deleteListing = `DELETE FROM listings WHERE id = $1`

func (q *Queries) DeleteListing(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteListing, id)
	return tag.RowsAffected(), err
}

const getListingForShare = `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1 FOR SHARE`

func (q *Queries) GetListingForShare(ctx context.Context, db DBTX, id uuid.UUID) (Listings, error) {
	return scanListing(db.QueryRow(ctx, getListingForShare, id))
}

const getListingForUpdate = `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1 FOR UPDATE`

func (q *Queries) GetListingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Listings, error) {
	return scanListing(db.QueryRow(ctx, getListingForUpdate, id))
}

const getListingByID = `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1`

func (q *Queries) GetListingByID(ctx context.Context, db DBTX, id uuid.UUID) (Listings, error) {
	return scanListing(db.QueryRow(ctx, getListingByID, id))
}

// A NULL host username disables the filter.
const listListings = `
SELECT ` + listingColumns + `
FROM listings l
JOIN users u ON u.id = l.host_id
WHERE ($1::text IS NULL OR u.username = $1::text)
ORDER BY l.created_at, l.id
`

func (q *Queries) ListListings(ctx context.Context, db DBTX, hostUsername pgtype.Text) ([]Listings, error) {
	rows, err := db.Query(ctx, listListings, hostUsername)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Listings
	for rows.Next() {
		i, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
