package review

import (
	"fmt"
	"strings"

	"stay-marketplace/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating {
		return Rating{}, errs.Invalid(ErrInvalidRating, fmt.Sprintf("Ensure this value is greater than or equal to %d.", MinRating))
	}
	if v > MaxRating {
		return Rating{}, errs.Invalid(ErrInvalidRating, fmt.Sprintf("Ensure this value is less than or equal to %d.", MaxRating))
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, errs.Invalid(ErrEmptyComment, errs.MsgBlank)
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
