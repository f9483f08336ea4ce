package request

import (
	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/usecase/commands"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewRequest struct {
	Listing *string `json:"listing"`
	Rating  *int    `json:"rating" example:"5"`
	Comment *string `json:"comment"`
}

func (r *ReviewRequest) ToFields() review.Fields {
	return review.Fields{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewRequest) ToCreateInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		ListingID: r.Listing,
		Fields:    r.ToFields(),
	}
}

type ReviewListQuery struct {
	ListingID string `form:"listing_id" binding:"omitempty,uuid"`
}

func (q *ReviewListQuery) ToFilter() queries.ReviewFilter {
	id, err := uuid.Parse(q.ListingID)
	if err != nil {
		return queries.ReviewFilter{}
	}
	return queries.ReviewFilter{ListingID: &id}
}
