package booking

import (
	"fmt"

	"stay-marketplace/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

var (
	ErrInvalidStatus    = errs.New("invalid booking status")
	ErrInvalidDate      = errs.New("invalid booking date")
	ErrInvalidDateRange = errs.New("end date before start date")
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", errs.Invalid(ErrInvalidStatus, fmt.Sprintf("%q is not a valid choice.", s))
	}
}

func (s Status) String() string { return string(s) }
