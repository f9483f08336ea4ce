package review

import (
	"time"

	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	listingID uuid.UUID
	userID    uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

// Fields carries caller-supplied attributes. A nil field is absent from the request.
type Fields struct {
	Rating  *int
	Comment *string
}

func NewReview(listingID, userID uuid.UUID, in Fields, now time.Time) (*Review, error) {
	r := &Review{
		id:        uuid.New(),
		listingID: listingID,
		userID:    userID,
		createdAt: now,
	}
	if err := r.apply(in, true); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructReview(id, listingID, userID uuid.UUID, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		listingID: listingID,
		userID:    userID,
		rating:    Rating{value: rating},
		comment:   Comment{text: comment},
		createdAt: createdAt,
	}
}

func (r *Review) Update(in Fields, partial bool) error {
	return r.apply(in, !partial)
}

func (r *Review) apply(in Fields, requireAll bool) error {
	fe := errs.FieldErrors{}
	next := *r

	patch.Apply(fe, "rating", in.Rating, requireAll, NewRating, &next.rating)
	patch.Apply(fe, "comment", in.Comment, requireAll, NewComment, &next.comment)

	if err := fe.Err(); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ListingID() uuid.UUID { return r.listingID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
