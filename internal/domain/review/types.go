package review

import "stay-marketplace/internal/pkg/errs"

var (
	ErrInvalidRating = errs.New("rating must be between 1 and 5")
	ErrEmptyComment  = errs.New("comment cannot be empty")
)
