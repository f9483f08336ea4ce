package listing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"stay-marketplace/internal/pkg/errs"
)

const (
	MaxNameLength     = 100
	MaxLocationLength = 100
)

var (
	ErrInvalidName        = errs.New("invalid listing name")
	ErrInvalidDescription = errs.New("invalid listing description")
	ErrInvalidLocation    = errs.New("invalid listing location")
)

type Name struct{ value string }

func NewName(s string) (Name, error) {
	v, err := boundedText(ErrInvalidName, s, MaxNameLength)
	return Name{value: v}, err
}

func (n Name) String() string { return n.value }

type Description struct{ value string }

func NewDescription(s string) (Description, error) {
	v, err := boundedText(ErrInvalidDescription, s, 0)
	return Description{value: v}, err
}

func (d Description) String() string { return d.value }

type Location struct{ value string }

func NewLocation(s string) (Location, error) {
	v, err := boundedText(ErrInvalidLocation, s, MaxLocationLength)
	return Location{value: v}, err
}

func (l Location) String() string { return l.value }

// max <= 0 means unbounded.
func boundedText(sentinel error, s string, max int) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errs.Invalid(sentinel, errs.MsgBlank)
	}
	if max > 0 && utf8.RuneCountInString(t) > max {
		return "", errs.Invalid(sentinel, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
	}
	return t, nil
}
