package converter

import (
	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) query.CreateReviewParams {
	return query.CreateReviewParams{
		ID:        r.ID(),
		ListingID: r.ListingID(),
		UserID:    r.UserID(),
		Rating:    int32(r.Rating().Value()), // #nosec G115 -- rating is bounded to [1,5]
		Comment:   r.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) query.UpdateReviewParams {
	return query.UpdateReviewParams{
		ID:      r.ID(),
		Rating:  int32(r.Rating().Value()), // #nosec G115 -- rating is bounded to [1,5]
		Comment: r.Comment().String(),
	}
}

func ReviewFromRow(row query.Reviews) *review.Review {
	return review.ReconstructReview(
		row.ID,
		row.ListingID,
		row.UserID,
		int(row.Rating),
		row.Comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
