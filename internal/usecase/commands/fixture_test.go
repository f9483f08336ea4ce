//go:build unit

package commands_test

import (
	"context"
	"time"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/pkg/clock"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"
	sharedmock "stay-marketplace/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

// txFixture wires a mocked unit of work whose Within runs the callback against mocked repositories.
type txFixture struct {
	suite.Suite
	ctrl       *gomock.Controller
	clock      *clock.MockClock
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	users      *sharedmock.MockUserRepository
	listings   *sharedmock.MockListingRepository
	bookings   *sharedmock.MockBookingRepository
	reviews    *sharedmock.MockReviewRepository
	payments   *sharedmock.MockPaymentRepository
	dispatcher *sharedmock.MockTaskDispatcher
	principal  auth.Principal
}

func (f *txFixture) SetupTest() {
	f.ctrl = gomock.NewController(f.T())
	f.clock = clock.NewMockClock(fixedNow)
	f.uow = sharedmock.NewMockUnitOfWork(f.ctrl)
	f.tx = sharedmock.NewMockTx(f.ctrl)
	f.reads = sharedmock.NewMockCommandReads(f.ctrl)
	f.users = sharedmock.NewMockUserRepository(f.ctrl)
	f.listings = sharedmock.NewMockListingRepository(f.ctrl)
	f.bookings = sharedmock.NewMockBookingRepository(f.ctrl)
	f.reviews = sharedmock.NewMockReviewRepository(f.ctrl)
	f.payments = sharedmock.NewMockPaymentRepository(f.ctrl)
	f.dispatcher = sharedmock.NewMockTaskDispatcher(f.ctrl)
	f.principal = auth.NewPrincipal(uuid.New(), "alice")

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Listings().Return(f.listings).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
}

func (f *txFixture) TearDownTest() {
	f.ctrl.Finish()
}

func (f *txFixture) expectTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func (f *txFixture) assertPublic(err error, kind error, detail string) {
	f.Require().Error(err)
	f.True(errs.Is(err, kind), "unexpected kind: %v", err)
	f.Equal(detail, errs.Detail(err))
}

func (f *txFixture) assertFieldError(err error, field, msg string) {
	f.Require().Error(err)
	f.True(errs.Is(err, errs.ErrValidation))
	fe, ok := errs.AsFieldErrors(err)
	f.Require().True(ok, "expected field errors, got %v", err)
	f.Contains(fe[field], msg)
}

func storeMiss() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func ptr[T any](v T) *T {
	return &v
}
