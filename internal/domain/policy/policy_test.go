//go:build unit

package policy_test

import (
	"net/http"
	"testing"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/domain/policy"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListingPolicy(t *testing.T) {
	host := auth.NewPrincipal(uuid.New(), "host")
	other := auth.NewPrincipal(uuid.New(), "guest")
	target := builder.NewListingBuilder().WithHostID(host.UserID()).BuildStored()

	tests := []struct {
		name       string
		principal  auth.Principal
		action     policy.Action
		wantStatus int
		wantReason string
	}{
		{"anonymous can list", auth.Anonymous(), policy.ActionList, http.StatusOK, ""},
		{"anonymous can retrieve", auth.Anonymous(), policy.ActionRetrieve, http.StatusOK, ""},
		{"anonymous cannot create", auth.Anonymous(), policy.ActionCreate, http.StatusUnauthorized, policy.MsgNotAuthenticated},
		{"anonymous cannot delete", auth.Anonymous(), policy.ActionDestroy, http.StatusUnauthorized, policy.MsgNotAuthenticated},
		{"any user can create", other, policy.ActionCreate, http.StatusOK, ""},
		{"host can update", host, policy.ActionUpdate, http.StatusOK, ""},
		{"host can delete", host, policy.ActionDestroy, http.StatusOK, ""},
		{"other cannot update", other, policy.ActionPartialUpdate, http.StatusForbidden, "You can only update your own listings."},
		{"other cannot delete", other, policy.ActionDestroy, http.StatusForbidden, "You can only delete your own listings."},
		{"unknown action", host, policy.ActionListMine, http.StatusForbidden, policy.MsgActionNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.Listing(tt.principal, tt.action, target)
			assert.Equal(t, tt.wantStatus, d.Status())
			assert.Equal(t, tt.wantReason, d.Reason())
			assert.Equal(t, tt.wantStatus == http.StatusOK, d.Allowed())
		})
	}
}

func TestReviewPolicy(t *testing.T) {
	author := auth.NewPrincipal(uuid.New(), "author")
	target := builder.NewReviewBuilder().WithUserID(author.UserID()).BuildStored()

	t.Run("my reviews needs a principal", func(t *testing.T) {
		d := policy.Review(auth.Anonymous(), policy.ActionListMine, nil)
		assert.Equal(t, http.StatusUnauthorized, d.Status())
		assert.Equal(t, policy.MsgAuthRequired, d.Reason())
	})

	t.Run("author can delete", func(t *testing.T) {
		assert.True(t, policy.Review(author, policy.ActionDestroy, target).Allowed())
	})

	t.Run("other user cannot update", func(t *testing.T) {
		d := policy.Review(auth.NewPrincipal(uuid.New(), "x"), policy.ActionUpdate, target)
		assert.Equal(t, http.StatusForbidden, d.Status())
		assert.Equal(t, "You can only update your own reviews.", d.Reason())
	})

	t.Run("nil target only checks authentication", func(t *testing.T) {
		assert.True(t, policy.Review(auth.NewPrincipal(uuid.New(), "x"), policy.ActionUpdate, nil).Allowed())
	})
}

func TestBookingPolicy(t *testing.T) {
	owner := auth.NewPrincipal(uuid.New(), "owner")
	target := builder.NewBookingBuilder().WithUserID(owner.UserID()).BuildStored()

	t.Run("anonymous is rejected for reads", func(t *testing.T) {
		d := policy.Booking(auth.Anonymous(), policy.ActionList, nil)
		assert.Equal(t, http.StatusUnauthorized, d.Status())
	})

	t.Run("scope only includes own bookings", func(t *testing.T) {
		scope, d := policy.VisibleBookings(owner)
		assert.True(t, d.Allowed())
		assert.True(t, scope.Includes(target))
		assert.False(t, scope.Owns(uuid.New()))
		assert.False(t, scope.Includes(nil))
	})

	t.Run("anonymous has no scope", func(t *testing.T) {
		scope, d := policy.VisibleBookings(auth.Anonymous())
		assert.False(t, d.Allowed())
		assert.False(t, scope.Owns(uuid.Nil))
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		d := policy.Booking(auth.NewPrincipal(uuid.New(), "x"), policy.ActionDestroy, target)
		assert.Equal(t, "You can only delete your own bookings.", d.Reason())
	})
}

func TestPaymentPolicy(t *testing.T) {
	p := auth.NewPrincipal(uuid.New(), "payer")

	assert.True(t, policy.Payment(p, policy.ActionCreate).Allowed())
	assert.True(t, policy.Payment(p, policy.ActionRetrieve).Allowed())
	assert.Equal(t, policy.MsgPaymentServerControlled, policy.Payment(p, policy.ActionUpdate).Reason())
	assert.Equal(t, http.StatusUnauthorized, policy.Payment(auth.Anonymous(), policy.ActionList).Status())
}

func TestDecisionErr(t *testing.T) {
	assert.NoError(t, policy.Allow().Err())

	err := policy.Deny(errs.ErrPermissionDenied, "nope").Err()
	assert.True(t, errs.Is(err, errs.ErrPermissionDenied))
	assert.Equal(t, "nope", errs.Detail(err))
}
