//go:build unit || e2e

package builder

import (
	"time"

	domreview "stay-marketplace/internal/domain/review"
	reqdto "stay-marketplace/internal/handler/dto/request"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:        uuid.New(),
		ListingID: uuid.New(),
		UserID:    uuid.New(),
		Rating:    5,
		Comment:   "Excellent stay!",
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) Fields() domreview.Fields {
	rating, comment := r.Rating, r.Comment
	return domreview.Fields{Rating: &rating, Comment: &comment}
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ListingID, r.UserID, r.Fields(), r.CreatedAt)
}

func (r *ReviewBuilder) BuildStored() *domreview.Review {
	return domreview.ReconstructReview(r.ID, r.ListingID, r.UserID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildRow() query.Reviews {
	return query.Reviews{
		ID:        r.ID,
		ListingID: r.ListingID,
		UserID:    r.UserID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        r.ID,
		ListingID: r.ListingID,
		UserID:    r.UserID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildRequest() reqdto.ReviewRequest {
	listing := r.ListingID.String()
	rating, comment := r.Rating, r.Comment
	return reqdto.ReviewRequest{Listing: &listing, Rating: &rating, Comment: &comment}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithListingID(listingID uuid.UUID) *ReviewBuilder {
	r.ListingID = listingID
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Noisy and cold."
	return r
}
