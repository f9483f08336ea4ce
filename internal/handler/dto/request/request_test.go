//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	reqdto "stay-marketplace/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRequest_PriceLiteral(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *string
	}{
		{"string keeps trailing zeros", `{"price_per_night":"150.00"}`, ptr("150.00")},
		{"number keeps its literal", `{"price_per_night": 99.999}`, ptr("99.999")},
		{"non-numeric string reaches the domain as is", `{"price_per_night":"cheap"}`, ptr("cheap")},
		{"absent stays nil", `{"name":"Loft"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req reqdto.ListingRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.expected, req.ToFields().PricePerNight)
		})
	}
}

func TestBookingRequest_ToCreateInput(t *testing.T) {
	var req reqdto.BookingRequest
	body := `{"listing":"abc","start_date":"2026-07-01","end_date":"2026-07-03","total_price":300,"status":"CONFIRMED"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.ToCreateInput()
	assert.Equal(t, ptr("abc"), in.ListingID)
	assert.Equal(t, ptr("300"), in.Fields.TotalPrice)
	assert.Equal(t, ptr("CONFIRMED"), in.Fields.Status)
}

func TestReviewListQuery_ToFilter(t *testing.T) {
	id := uuid.New()
	q := reqdto.ReviewListQuery{ListingID: id.String()}
	filter := q.ToFilter()
	require.NotNil(t, filter.ListingID)
	assert.Equal(t, id, *filter.ListingID)
	assert.Nil(t, filter.UserID)

	assert.Nil(t, (&reqdto.ReviewListQuery{}).ToFilter().ListingID)
}

func TestListingListQuery_ToFilter(t *testing.T) {
	assert.Nil(t, (&reqdto.ListingListQuery{}).ToFilter().HostUsername)
	assert.Equal(t, ptr("carol"), (&reqdto.ListingListQuery{Host: "carol"}).ToFilter().HostUsername)
}

func ptr[T any](v T) *T {
	return &v
}
