//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	txFixture
	uc commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.txFixture.SetupTest()
	s.uc = commands.NewReviewCommands(s.uow, s.clock)
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	l := builder.NewListingBuilder().BuildStored()
	input := func() commands.CreateReviewInput {
		return commands.CreateReviewInput{
			ListingID: ptr(l.ID().String()),
			Fields:    builder.NewReviewBuilder().Fields(),
		}
	}

	s.Run("first review is stored", func() {
		var saved *review.Review
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.reads.EXPECT().ReviewExists(gomock.Any(), s.principal.UserID(), l.ID()).Return(false, nil)
		s.users.EXPECT().Upsert(gomock.Any(), s.principal.UserID(), "alice").Return(nil)
		s.reviews.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *review.Review) (bool, error) {
				saved = r
				return true, nil
			})

		res, err := s.uc.Create(ctx, s.principal, input())
		s.Require().NoError(err)
		s.Equal(saved.ID(), res.ReviewID)
		s.Equal(l.ID(), saved.ListingID())
	})

	s.Run("second review by the same user", func() {
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.reads.EXPECT().ReviewExists(gomock.Any(), s.principal.UserID(), l.ID()).Return(true, nil)

		_, err := s.uc.Create(ctx, s.principal, input())
		s.assertPublic(err, errs.ErrValidation, commands.MsgDuplicateReview)
	})

	s.Run("duplicate check runs before field validation", func() {
		in := input()
		in.Fields.Rating = ptr(9)
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.reads.EXPECT().ReviewExists(gomock.Any(), s.principal.UserID(), l.ID()).Return(true, nil)

		_, err := s.uc.Create(ctx, s.principal, in)
		s.assertPublic(err, errs.ErrValidation, commands.MsgDuplicateReview)
	})

	s.Run("concurrent duplicate loses the conditional insert", func() {
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.reads.EXPECT().ReviewExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.reviews.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := s.uc.Create(ctx, s.principal, input())
		s.assertPublic(err, errs.ErrValidation, commands.MsgDuplicateReview)
	})

	s.Run("rating out of range", func() {
		in := input()
		in.Fields.Rating = ptr(0)
		s.expectTx()
		s.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.reads.EXPECT().ReviewExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := s.uc.Create(ctx, s.principal, in)
		s.assertFieldError(err, "rating", "Ensure this value is greater than or equal to 1.")
	})

	s.Run("blank listing reference", func() {
		in := input()
		in.ListingID = ptr("  ")
		_, err := s.uc.Create(ctx, s.principal, in)
		s.assertPublic(err, errs.ErrValidation, commands.MsgListingRequired)
	})
}

func (s *ReviewCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("author edits comment", func() {
		stored := builder.NewReviewBuilder().WithUserID(s.principal.UserID()).BuildStored()
		s.expectTx()
		s.reads.EXPECT().ReviewForUpdate(gomock.Any(), stored.ID()).Return(stored, nil)
		s.reviews.EXPECT().Update(gomock.Any(), stored).Return(nil)

		err := s.uc.Update(ctx, s.principal, stored.ID(), review.Fields{Comment: ptr("Still great")}, true)
		s.Require().NoError(err)
		s.Equal("Still great", stored.Comment().String())
	})

	s.Run("someone else's review", func() {
		stored := builder.NewReviewBuilder().BuildStored()
		s.expectTx()
		s.reads.EXPECT().ReviewForUpdate(gomock.Any(), stored.ID()).Return(stored, nil)

		err := s.uc.Update(ctx, s.principal, stored.ID(), review.Fields{}, true)
		s.assertPublic(err, errs.ErrPermissionDenied, "You can only update your own reviews.")
	})

	s.Run("missing review", func() {
		id := uuid.New()
		s.expectTx()
		s.reads.EXPECT().ReviewForUpdate(gomock.Any(), id).Return(nil, storeMiss())

		err := s.uc.Update(ctx, s.principal, id, review.Fields{}, true)
		s.assertPublic(err, errs.ErrNotFound, policy.MsgNotFound)
	})
}

func (s *ReviewCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("author deletes", func() {
		stored := builder.NewReviewBuilder().WithUserID(s.principal.UserID()).BuildStored()
		s.expectTx()
		s.reads.EXPECT().ReviewForUpdate(gomock.Any(), stored.ID()).Return(stored, nil)
		s.reviews.EXPECT().Delete(gomock.Any(), stored.ID()).Return(nil)

		s.NoError(s.uc.Delete(ctx, s.principal, stored.ID()))
	})

	s.Run("other user", func() {
		stored := builder.NewReviewBuilder().BuildStored()
		s.expectTx()
		s.reads.EXPECT().ReviewForUpdate(gomock.Any(), stored.ID()).Return(stored, nil)

		err := s.uc.Delete(ctx, s.principal, stored.ID())
		s.assertPublic(err, errs.ErrPermissionDenied, "You can only delete your own reviews.")
	})
}
