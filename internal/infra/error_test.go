//go:build unit

package infra_test

import (
	"testing"

	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		kind         []infra.RepositoryErrorKind
		expectedKind infra.RepositoryErrorKind
		notFound     bool
		conflict     bool
	}{
		{
			name:         "unique violation is a duplicate key",
			err:          &pgconn.PgError{Code: "23505", ConstraintName: "reviews_user_id_listing_id_key"},
			expectedKind: infra.KindDuplicateKey,
			conflict:     true,
		},
		{
			name:         "foreign key violation reads as not found",
			err:          &pgconn.PgError{Code: "23503"},
			expectedKind: infra.KindForeignKeyViolated,
			notFound:     true,
		},
		{
			name:         "explicit kind wins",
			err:          pgx.ErrNoRows,
			kind:         []infra.RepositoryErrorKind{infra.KindNotFound},
			expectedKind: infra.KindNotFound,
			notFound:     true,
		},
		{
			name:         "other postgres errors are failures",
			err:          &pgconn.PgError{Code: "40001"},
			expectedKind: infra.KindDBFailure,
		},
		{
			name:         "plain errors are failures",
			err:          errs.New("connection reset"),
			expectedKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.expectedKind), "got %v", err)
			assert.Equal(t, tt.notFound, errs.Is(err, errs.ErrNotFound))
			assert.Equal(t, tt.conflict, errs.Is(err, errs.ErrConflict))
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestIsKind_ForeignError(t *testing.T) {
	assert.False(t, infra.IsKind(errs.New("boom"), infra.KindDBFailure))
}
