package response

import (
	"time"

	"stay-marketplace/internal/usecase/queries"
)

type ReviewResponse struct {
	ID        string    `json:"review_id"`
	ListingID string    `json:"listing"`
	UserID    string    `json:"user"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return copyView[ReviewResponse](v)
}

func FromReviewViews(views []*queries.ReviewView) []*ReviewResponse {
	return copyViews[ReviewResponse](views)
}
