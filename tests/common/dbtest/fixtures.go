//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	err := db.QueryRow(ctx, `
		INSERT INTO users (id, username) VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id`, userID, username).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestListing(t *testing.T, db DBLike, hostID uuid.UUID, name, pricePerNight string) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(), `
		INSERT INTO listings (id, host_id, name, description, location, price_per_night, created_at, updated_at)
		VALUES ($1, $2, $3, 'Fixture listing', 'Lisbon', $4::numeric, $5, $5)`,
		listingID, hostID, name, pricePerNight, now)
	require.NoError(t, err)

	return listingID
}

func CreateTestBooking(t *testing.T, db DBLike, listingID, userID uuid.UUID, startDate, endDate, totalPrice string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, listing_id, user_id, start_date, end_date, total_price, status, created_at)
		VALUES ($1, $2, $3, $4::date, $5::date, $6::numeric, 'PENDING', $7)`,
		bookingID, listingID, userID, startDate, endDate, totalPrice, time.Now().UTC())
	require.NoError(t, err)

	return bookingID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
