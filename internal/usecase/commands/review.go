package commands

import (
	"context"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/pkg/clock"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	// ListingID is the raw `listing` value from the request body.
	ListingID *string
	Fields    review.Fields
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	Create(ctx context.Context, p auth.Principal, in CreateReviewInput) (*CreateReviewResult, error)
	Update(ctx context.Context, p auth.Principal, id uuid.UUID, in review.Fields, partial bool) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

// Create checks, in order: listing present, listing exists, no earlier review by
// the principal, fields valid. The insert itself is conditional on the
// (user, listing) unique key, so concurrent duplicates still get the same answer.
func (uc *reviewCommandsImpl) Create(ctx context.Context, p auth.Principal, in CreateReviewInput) (*CreateReviewResult, error) {
	if err := policy.Review(p, policy.ActionCreate, nil).Err(); err != nil {
		return nil, err
	}
	listingID, err := resolveListingRef(in.ListingID)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			return notFound(derr, MsgListingNotFound)
		}

		exists, derr := tx.Reads().ReviewExists(ctx, p.UserID(), l.ID())
		if derr != nil {
			return derr
		}
		if exists {
			return errs.Validation(MsgDuplicateReview)
		}

		rev, derr := review.NewReview(l.ID(), p.UserID(), in.Fields, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Users().Upsert(ctx, p.UserID(), p.Username()); derr != nil {
			return derr
		}
		inserted, derr := tx.Reviews().CreateIfAbsent(ctx, rev)
		if derr != nil {
			return notFound(derr, MsgListingNotFound)
		}
		if !inserted {
			return errs.Validation(MsgDuplicateReview)
		}
		createdID = rev.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, p auth.Principal, id uuid.UUID, in review.Fields, partial bool) error {
	return uc.withOwnedReview(ctx, p, id, updateAction(partial), func(ctx context.Context, tx shared.Tx, rev *review.Review) error {
		if err := rev.Update(in, partial); err != nil {
			return err
		}
		return tx.Reviews().Update(ctx, rev)
	})
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	return uc.withOwnedReview(ctx, p, id, policy.ActionDestroy, func(ctx context.Context, tx shared.Tx, rev *review.Review) error {
		return tx.Reviews().Delete(ctx, rev.ID())
	})
}

func (uc *reviewCommandsImpl) withOwnedReview(ctx context.Context, p auth.Principal, id uuid.UUID, action policy.Action, fn func(ctx context.Context, tx shared.Tx, rev *review.Review) error) error {
	if err := policy.Review(p, action, nil).Err(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := tx.Reads().ReviewForUpdate(ctx, id)
		if derr != nil {
			return notFound(derr, policy.MsgNotFound)
		}
		if derr = policy.Review(p, action, rev).Err(); derr != nil {
			return derr
		}
		return fn(ctx, tx, rev)
	})
}
