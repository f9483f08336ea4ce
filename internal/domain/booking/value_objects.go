package booking

import (
	"time"

	"stay-marketplace/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// ParseDate accepts calendar dates only; the result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Invalid(ErrInvalidDate, errs.MsgDate)
	}
	return t, nil
}

type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, errs.Invalid(ErrInvalidDateRange, "End date must not be before start date.")
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Nights is the number of nights covered by the range.
func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}
