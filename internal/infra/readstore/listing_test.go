//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/infra/readstore"
	"stay-marketplace/internal/usecase/queries"
	"stay-marketplace/tests/common/builder"
	readstoremock "stay-marketplace/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestListingReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("host filter is passed as text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		b := builder.NewListingBuilder()
		mockQueries.EXPECT().ListListings(ctx, gomock.Any(), pgtype.Text{String: "carol", Valid: true}).
			Return([]query.Listings{b.BuildRow()}, nil)

		host := "carol"
		got, err := store.List(ctx, queries.ListingFilter{HostUsername: &host})
		require.NoError(t, err)
		if diff := cmp.Diff([]*queries.ListingView{b.BuildView()}, got, decimalEqual); diff != "" {
			t.Errorf("views mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no filter lists everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListListings(ctx, gomock.Any(), pgtype.Text{}).Return(nil, nil)

		got, err := store.List(ctx, queries.ListingFilter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("corrupt price fails the read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		row := builder.NewListingBuilder().BuildRow()
		row.PricePerNight = "n/a"
		mockQueries.EXPECT().GetListingByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		_, err := store.FindByID(ctx, row.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("missing listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		b := builder.NewListingBuilder()
		mockQueries.EXPECT().GetListingByID(ctx, gomock.Any(), b.ID).Return(query.Listings{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
