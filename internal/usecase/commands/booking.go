package commands

import (
	"context"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/pkg/clock"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	// ListingID is the raw `listing` value from the request body.
	ListingID *string
	Fields    booking.Fields
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, p auth.Principal, in CreateBookingInput) (*CreateBookingResult, error)
	Update(ctx context.Context, p auth.Principal, id uuid.UUID, in booking.Fields, partial bool) error
	Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	dispatcher shared.TaskDispatcher
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, dispatcher shared.TaskDispatcher) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk, dispatcher: dispatcher}
}

// Create checks, in order: listing present, listing exists, not the host, fields valid.
func (uc *bookingCommandsImpl) Create(ctx context.Context, p auth.Principal, in CreateBookingInput) (*CreateBookingResult, error) {
	if err := policy.Booking(p, policy.ActionCreate, nil).Err(); err != nil {
		return nil, err
	}
	listingID, err := resolveListingRef(in.ListingID)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			return notFound(derr, MsgListingNotFound)
		}
		if p.Is(l.HostID()) {
			return errs.Validation(MsgSelfBooking)
		}

		b, derr := booking.NewBooking(l.ID(), p.UserID(), in.Fields, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Users().Upsert(ctx, p.UserID(), p.Username()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return notFound(derr, MsgListingNotFound)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	shared.DispatchBestEffort(ctx, uc.dispatcher, shared.NewTask(shared.TaskBookingConfirmationEmail, map[string]any{
		"booking_id": created.ID().String(),
		"listing_id": created.ListingID().String(),
		"user_id":    created.UserID().String(),
		"start_date": created.Dates().Start().Format(booking.DateLayout),
		"end_date":   created.Dates().End().Format(booking.DateLayout),
		"nights":     created.Dates().Nights(),
	}, uc.clock.Now()))

	return &CreateBookingResult{BookingID: created.ID()}, nil
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, p auth.Principal, id uuid.UUID, in booking.Fields, partial bool) error {
	return uc.withOwnedBooking(ctx, p, id, updateAction(partial), func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if err := b.Update(in, partial); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, b)
	})
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	return uc.withOwnedBooking(ctx, p, id, policy.ActionDestroy, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		return tx.Bookings().Delete(ctx, b.ID())
	})
}

// withOwnedBooking resolves id inside the principal's scope (404 outside it) and
// then re-checks ownership for the action (403).
func (uc *bookingCommandsImpl) withOwnedBooking(ctx context.Context, p auth.Principal, id uuid.UUID, action policy.Action, fn func(ctx context.Context, tx shared.Tx, b *booking.Booking) error) error {
	scope, d := policy.VisibleBookings(p)
	if err := d.Err(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingForUser(ctx, id, scope.UserID())
		if derr != nil {
			return notFound(derr, policy.MsgNotFound)
		}
		if !scope.Includes(b) {
			return errs.NotFound(policy.MsgNotFound)
		}
		if derr = policy.Booking(p, action, b).Err(); derr != nil {
			return derr
		}
		return fn(ctx, tx, b)
	})
}
