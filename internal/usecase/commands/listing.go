package commands

import (
	"context"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/pkg/clock"
	"stay-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingResult struct {
	ListingID uuid.UUID
}

type ListingCommands interface {
	Create(ctx context.Context, p auth.Principal, in listing.Fields) (*CreateListingResult, error)
	Update(ctx context.Context, p auth.Principal, id uuid.UUID, in listing.Fields, partial bool) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, clock: clk}
}

// Create makes the acting principal the host, whatever the request said.
func (uc *listingCommandsImpl) Create(ctx context.Context, p auth.Principal, in listing.Fields) (*CreateListingResult, error) {
	if err := policy.Listing(p, policy.ActionCreate, nil).Err(); err != nil {
		return nil, err
	}

	l, err := listing.NewListing(p.UserID(), in, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().Upsert(ctx, p.UserID(), p.Username()); derr != nil {
			return derr
		}
		return tx.Listings().Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return &CreateListingResult{ListingID: l.ID()}, nil
}

func (uc *listingCommandsImpl) Update(ctx context.Context, p auth.Principal, id uuid.UUID, in listing.Fields, partial bool) error {
	action := updateAction(partial)
	if err := policy.Listing(p, action, nil).Err(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := tx.Reads().ListingForUpdate(ctx, id)
		if derr != nil {
			return notFound(derr, policy.MsgNotFound)
		}
		if derr = policy.Listing(p, action, l).Err(); derr != nil {
			return derr
		}
		if derr = l.Update(in, partial, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Listings().Update(ctx, l)
	})
}

// Delete cascades to the listing's bookings, reviews and their payments.
func (uc *listingCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := policy.Listing(p, policy.ActionDestroy, nil).Err(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := tx.Reads().ListingForUpdate(ctx, id)
		if derr != nil {
			return notFound(derr, policy.MsgNotFound)
		}
		if derr = policy.Listing(p, policy.ActionDestroy, l).Err(); derr != nil {
			return derr
		}
		return tx.Listings().Delete(ctx, id)
	})
}
