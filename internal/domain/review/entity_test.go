//go:build unit

package review_test

import (
	"testing"
	"time"

	"stay-marketplace/internal/domain/review"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name     string
	mutate   func(*builder.ReviewBuilder)
	errField string
	errMsg   string
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ListingID, actual.ListingID())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent stay!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:     "below minimum rating",
				mutate:   func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errField: "rating",
				errMsg:   "Ensure this value is greater than or equal to 1.",
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(review.MinRating) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(review.MaxRating) },
			},
			{
				name:     "above maximum rating",
				mutate:   func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errField: "rating",
				errMsg:   "Ensure this value is less than or equal to 5.",
			},
			{
				name:     "negative rating",
				mutate:   func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errField: "rating",
				errMsg:   "Ensure this value is greater than or equal to 1.",
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name:     "empty comment",
				mutate:   func(b *builder.ReviewBuilder) { b.WithComment("") },
				errField: "comment",
				errMsg:   errs.MsgBlank,
			},
			{
				name:     "whitespace only comment",
				mutate:   func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errField: "comment",
				errMsg:   errs.MsgBlank,
			},
		})
	})

	t.Run("missing fields are required on create", func(t *testing.T) {
		actual, err := review.NewReview(uuid.New(), uuid.New(), review.Fields{}, time.Now())
		require.Error(t, err)
		assert.Nil(t, actual)

		fe, ok := errs.AsFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{errs.MsgRequired}, fe["rating"])
		assert.Equal(t, []string{errs.MsgRequired}, fe["comment"])
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("  Trimmed comment  ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Trimmed comment", actual.Comment().String())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		review1, err1 := b.BuildDomain()
		review2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, review1.ID(), review2.ID())
	})
}

func TestReviewUpdate(t *testing.T) {
	t.Run("partial update keeps absent fields", func(t *testing.T) {
		r := builder.NewReviewBuilder().BuildStored()
		rating := 2

		require.NoError(t, r.Update(review.Fields{Rating: &rating}, true))

		assert.Equal(t, 2, r.Rating().Value())
		assert.Equal(t, "Excellent stay!", r.Comment().String())
	})

	t.Run("failed update leaves review untouched", func(t *testing.T) {
		r := builder.NewReviewBuilder().BuildStored()
		rating, comment := 9, "fine"

		err := r.Update(review.Fields{Rating: &rating, Comment: &comment}, false)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		assert.Equal(t, 5, r.Rating().Value())
		assert.Equal(t, "Excellent stay!", r.Comment().String())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errField == "" {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Error(t, err)
			require.Nil(t, actual)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			fe, ok := errs.AsFieldErrors(err)
			require.True(t, ok)
			assert.Equal(t, []string{c.errMsg}, fe[c.errField])
		})
	}
}
