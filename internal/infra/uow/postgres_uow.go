package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/infra/repository"
	"stay-marketplace/internal/infra/repository/converter"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/pkg/pgconv"
	"stay-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo     shared.UserRepository
	listingRepo  shared.ListingRepository
	bookingRepo  shared.BookingRepository
	reviewRepo   shared.ReviewRepository
	paymentRepo  shared.PaymentRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository(t.uow.q, t.dbtx)
	}
	return t.listingRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.uow.q, t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{q: t.uow.q, dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads loads aggregates with row locks held until the transaction ends.
type commandReads struct {
	q    *query.Queries
	dbtx query.DBTX
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.q.GetListingForShare(ctx, r.dbtx, id)
	if err != nil {
		return nil, readErr("listing", err)
	}
	return decoded(converter.ListingFromRow(row))
}

func (r *commandReads) ListingForUpdate(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.q.GetListingForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, readErr("listing", err)
	}
	return decoded(converter.ListingFromRow(row))
}

func (r *commandReads) BookingForUser(ctx context.Context, id, userID uuid.UUID) (*booking.Booking, error) {
	row, err := r.q.GetBookingForUserForUpdate(ctx, r.dbtx, query.BookingForUserParams{ID: id, UserID: userID})
	if err != nil {
		return nil, readErr("booking", err)
	}
	return decoded(converter.BookingFromRow(row))
}

func (r *commandReads) ReviewForUpdate(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row, err := r.q.GetReviewForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, readErr("review", err)
	}
	return converter.ReviewFromRow(row), nil
}

func (r *commandReads) ReviewExists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	exists, err := r.q.ReviewExists(ctx, r.dbtx, query.ReviewExistsParams{UserID: userID, ListingID: listingID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}

func (r *commandReads) PaymentByReference(ctx context.Context, reference string) (*shared.PaymentSnapshot, error) {
	row, err := r.q.GetPaymentByReferenceForUpdate(ctx, r.dbtx, reference)
	if err != nil {
		return nil, readErr("payment", err)
	}
	p, err := decoded(converter.PaymentFromRow(row.Payments))
	if err != nil {
		return nil, err
	}
	return &shared.PaymentSnapshot{Payment: p, BookingUserID: row.Booking.UserID}, nil
}

func readErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+entity, err)
}

func decoded[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode row", err)
	}
	return v, nil
}
