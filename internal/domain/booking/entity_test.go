//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, b.ListingID, actual.ListingID())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, "600.00", actual.TotalPrice().String())
		assert.Equal(t, 4, actual.Dates().Nights())
	})

	t.Run("status supplied on create is ignored", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		in := b.Fields()
		status := "CONFIRMED"
		in.Status = &status

		actual, err := booking.NewBooking(b.ListingID, b.UserID, in, b.CreatedAt)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, actual.Status())
	})

	tests := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		want   map[string][]string
	}{
		{
			name:   "same day stay",
			mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-01", "2026-07-01") },
		},
		{
			name:   "end before start",
			mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-05", "2026-07-01") },
			want:   map[string][]string{"end_date": {"End date must not be before start date."}},
		},
		{
			name:   "malformed start date",
			mutate: func(b *builder.BookingBuilder) { b.WithDates("07/01/2026", "2026-07-05") },
			want:   map[string][]string{"start_date": {errs.MsgDate}},
		},
		{
			name:   "datetime instead of date",
			mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-01", "2026-07-05T10:00:00Z") },
			want:   map[string][]string{"end_date": {errs.MsgDate}},
		},
		{
			name:   "price and dates both invalid",
			mutate: func(b *builder.BookingBuilder) { b.WithDates("2026-07-05", "2026-07-01").WithTotalPrice("x") },
			want: map[string][]string{
				"end_date":    {"End date must not be before start date."},
				"total_price": {errs.MsgNotNumber},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(tt.mutate).BuildDomain()
			if tt.want == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Error(t, err)
			fe, ok := errs.AsFieldErrors(err)
			require.True(t, ok)
			assert.Equal(t, errs.FieldErrors(tt.want), fe)
		})
	}
}

func TestBookingUpdate(t *testing.T) {
	t.Run("status moves freely between known values", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildStored()
		status := "PENDING"

		require.NoError(t, b.Update(booking.Fields{Status: &status}, true))
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		status := "BOGUS"

		err := b.Update(booking.Fields{Status: &status}, true)
		fe, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{`"BOGUS" is not a valid choice.`}, fe["status"])
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("end date checked against stored start date", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		end := "2026-06-30"

		err := b.Update(booking.Fields{EndDate: &end}, true)
		fe, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fe, "end_date")
		assert.Equal(t, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), b.Dates().End())
	})

	t.Run("full update requires dates and price", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		status := "CONFIRMED"

		err := b.Update(booking.Fields{Status: &status}, false)
		fe, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, errs.FieldErrors{
			"start_date":  {errs.MsgRequired},
			"end_date":    {errs.MsgRequired},
			"total_price": {errs.MsgRequired},
		}, fe)
		assert.Equal(t, booking.StatusPending, b.Status())
	})
}
