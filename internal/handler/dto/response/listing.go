package response

import (
	"time"

	"stay-marketplace/internal/usecase/queries"
)

type ListingResponse struct {
	ID            string    `json:"listing_id"`
	HostID        string    `json:"host"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight string    `json:"price_per_night" example:"150.00"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return copyView[ListingResponse](v)
}

func FromListingViews(views []*queries.ListingView) []*ListingResponse {
	return copyViews[ListingResponse](views)
}
