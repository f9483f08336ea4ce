//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"stay-marketplace/internal/domain/payment"
	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/infra/repository"
	"stay-marketplace/tests/common/builder"
	repositorymock "stay-marketplace/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentRepository_UpdateSettlement(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: pending payment settled", rows: 1},
		{name: "error: payment already settled elsewhere", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			repo := repository.NewPaymentRepository(mockQueries, &mockDBTX{})

			p := builder.NewPaymentBuilder().BuildStored()
			_, err := p.Settle(payment.StatusCompleted, "gw-9")
			require.NoError(t, err)

			mockQueries.EXPECT().UpdatePaymentSettlement(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.UpdatePaymentSettlementParams) (int64, error) {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, "COMPLETED", arg.Status)
					assert.Equal(t, "gw-9", arg.GatewayTransactionID.String)
					return tc.rows, tc.dbErr
				})

			assertKind(t, repo.UpdateSettlement(ctx, p), tc.expectKind)
		})
	}
}

func TestUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	repo := repository.NewUserRepository(mockQueries, &mockDBTX{})

	id := uuid.New()
	mockQueries.EXPECT().UpsertUser(ctx, gomock.Any(), query.UpsertUserParams{ID: id, Username: "dave"}).Return(nil)
	mockQueries.EXPECT().UpsertUser(ctx, gomock.Any(), gomock.Any()).Return(errors.New("down"))

	assert.NoError(t, repo.Upsert(ctx, id, "dave"))
	assertKind(t, repo.Upsert(ctx, uuid.New(), "erin"), infra.KindDBFailure)
}
