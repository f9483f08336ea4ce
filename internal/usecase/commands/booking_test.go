//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/internal/usecase/shared"
	"stay-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	txFixture
	uc commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.txFixture.SetupTest()
	s.uc = commands.NewBookingCommands(s.uow, s.clock, s.dispatcher)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) createInput(listingID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ListingID: ptr(listingID.String()),
		Fields:    builder.NewBookingBuilder().Fields(),
	}
}

func (s *BookingCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	l := builder.NewListingBuilder().BuildStored()

	s.Run("creates a pending booking and queues the confirmation email", func() {
		var (
			saved *booking.Booking
			task  shared.Task
		)
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.users.EXPECT().Upsert(gomock.Any(), s.principal.UserID(), "alice").Return(nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				saved = b
				return nil
			})
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, t shared.Task) error {
				task = t
				return nil
			})

		res, err := s.uc.Create(ctx, s.principal, s.createInput(l.ID()))
		s.Require().NoError(err)
		s.Equal(saved.ID(), res.BookingID)
		s.Equal(booking.StatusPending, saved.Status())
		s.Equal(s.principal.UserID(), saved.UserID())

		s.Equal(shared.TaskBookingConfirmationEmail, task.Name)
		s.Equal(saved.ID().String(), task.Payload["booking_id"])
		s.Equal("2026-07-01", task.Payload["start_date"])
		s.Equal(4, task.Payload["nights"])
		s.Equal(fixedNow, task.CreatedAt)
	})

	s.Run("dispatch failure does not fail the request", func() {
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := s.uc.Create(ctx, s.principal, s.createInput(l.ID()))
		s.NoError(err)
	})

	s.Run("missing listing reference", func() {
		in := s.createInput(l.ID())
		in.ListingID = nil
		_, err := s.uc.Create(ctx, s.principal, in)
		s.assertPublic(err, errs.ErrValidation, commands.MsgListingRequired)
	})

	s.Run("malformed listing reference", func() {
		in := s.createInput(l.ID())
		in.ListingID = ptr("not-a-uuid")
		_, err := s.uc.Create(ctx, s.principal, in)
		s.assertPublic(err, errs.ErrNotFound, commands.MsgListingNotFound)
	})

	s.Run("unknown listing", func() {
		id := uuid.New()
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), id).Return(nil, storeMiss())

		_, err := s.uc.Create(ctx, s.principal, s.createInput(id))
		s.assertPublic(err, errs.ErrNotFound, commands.MsgListingNotFound)
	})

	s.Run("host cannot book own listing", func() {
		own := builder.NewListingBuilder().WithHostID(s.principal.UserID()).BuildStored()
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), own.ID()).Return(own, nil)

		_, err := s.uc.Create(ctx, s.principal, s.createInput(own.ID()))
		s.assertPublic(err, errs.ErrValidation, commands.MsgSelfBooking)
	})

	s.Run("end before start", func() {
		in := s.createInput(l.ID())
		in.Fields.EndDate = ptr("2026-06-01")
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)

		_, err := s.uc.Create(ctx, s.principal, in)
		s.assertFieldError(err, "end_date", "End date must not be before start date.")
	})

	s.Run("anonymous", func() {
		_, err := s.uc.Create(ctx, auth.Anonymous(), s.createInput(l.ID()))
		s.assertPublic(err, errs.ErrAuthenticationRequired, policy.MsgNotAuthenticated)
	})
}

func (s *BookingCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("owner confirms booking", func() {
		stored := builder.NewBookingBuilder().WithUserID(s.principal.UserID()).BuildStored()
		s.expectTx()
		s.reads.EXPECT().BookingForUser(gomock.Any(), stored.ID(), s.principal.UserID()).Return(stored, nil)
		s.bookings.EXPECT().Update(gomock.Any(), stored).Return(nil)

		err := s.uc.Update(ctx, s.principal, stored.ID(), booking.Fields{Status: ptr("CONFIRMED")}, true)
		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, stored.Status())
	})

	s.Run("booking outside scope is not found", func() {
		id := uuid.New()
		s.expectTx()
		s.reads.EXPECT().BookingForUser(gomock.Any(), id, s.principal.UserID()).Return(nil, storeMiss())

		err := s.uc.Update(ctx, s.principal, id, booking.Fields{}, true)
		s.assertPublic(err, errs.ErrNotFound, policy.MsgNotFound)
	})

	s.Run("anonymous", func() {
		err := s.uc.Update(ctx, auth.Anonymous(), uuid.New(), booking.Fields{}, true)
		s.assertPublic(err, errs.ErrAuthenticationRequired, policy.MsgNotAuthenticated)
	})
}

func (s *BookingCommandsTestSuite) TestDelete() {
	ctx := context.Background()
	stored := builder.NewBookingBuilder().WithUserID(s.principal.UserID()).BuildStored()

	s.expectTx()
	s.reads.EXPECT().BookingForUser(gomock.Any(), stored.ID(), s.principal.UserID()).Return(stored, nil)
	s.bookings.EXPECT().Delete(gomock.Any(), stored.ID()).Return(nil)

	s.NoError(s.uc.Delete(ctx, s.principal, stored.ID()))
}
