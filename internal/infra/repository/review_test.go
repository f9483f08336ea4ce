//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/infra/repository"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/tests/common/builder"
	repositorymock "stay-marketplace/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		setupMock    func(*repositorymock.MockReviewWriteQueries, query.DBTX)
		wantInserted bool
		expectKind   infra.RepositoryErrorKind
	}{
		{
			name: "success: review inserted",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, db query.DBTX) {
				mock.EXPECT().CreateReviewIfAbsent(ctx, db, gomock.Any()).Return(uuid.New(), nil)
			},
			wantInserted: true,
		},
		{
			name: "success: conflicting review leaves nothing inserted",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, db query.DBTX) {
				mock.EXPECT().CreateReviewIfAbsent(ctx, db, gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)
			},
			wantInserted: false,
		},
		{
			name: "error: listing vanished (foreign key)",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, db query.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateReviewIfAbsent(ctx, db, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, db query.DBTX) {
				mock.EXPECT().CreateReviewIfAbsent(ctx, db, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			inserted, actualError := repo.CreateIfAbsent(ctx, domainReview)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.False(t, inserted)
				return
			}
			assert.NoError(t, actualError)
			assert.Equal(t, tc.wantInserted, inserted)
		})
	}
}

// =============================================================================
// Update Review Tests
// =============================================================================

func TestReviewRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReviewWriteQueries, query.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: review updated",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, db query.DBTX) {
				mock.EXPECT().UpdateReview(ctx, db, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: review not found",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, db query.DBTX) {
				mock.EXPECT().UpdateReview(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, db query.DBTX) {
				mock.EXPECT().UpdateReview(ctx, db, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Update(ctx, builder.NewReviewBuilder().BuildStored())
			assertKind(t, actualError, tc.expectKind)
		})
	}
}

func TestReviewRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReviewRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().DeleteReview(ctx, mockDB, id).Return(int64(0), nil)

	err := repo.Delete(ctx, id)
	assertKind(t, err, infra.KindNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

// =============================================================================
// Test Helper Functions
// =============================================================================

func assertKind(t *testing.T, err error, kind infra.RepositoryErrorKind) {
	t.Helper()
	if kind == "" {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, kind), "expected kind [%v] but got [%T] (%v)", kind, err, err)
}

// mockDBTX is a mock implementation of query.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
