package payment

import (
	"fmt"

	"stay-marketplace/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

var (
	ErrInvalidStatus     = errs.New("invalid payment status")
	ErrAlreadySettled    = errs.New("payment already settled")
	ErrMissingGatewayRef = errs.New("gateway transaction id required")
)

// ParseGatewayStatus accepts only the terminal states a gateway may report.
func ParseGatewayStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCompleted, StatusFailed:
		return Status(s), nil
	default:
		return "", errs.Invalid(ErrInvalidStatus, fmt.Sprintf("%q is not a valid choice.", s))
	}
}

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
