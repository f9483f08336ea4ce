package response

import (
	"time"

	"stay-marketplace/internal/domain/booking"
	"stay-marketplace/internal/domain/money"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Date is a calendar date rendered as YYYY-MM-DD.
type Date string

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(money.DecimalPlaces), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: Date(""),
			Fn: func(src any) (any, error) {
				return Date(src.(time.Time).Format(booking.DateLayout)), nil
			},
		},
	},
}

func copyView[T any](src any) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		// every converter above is total; a failure means the view and response drifted apart
		panic(err)
	}
	return dst
}

func copyViews[T, V any](views []*V) []*T {
	out := make([]*T, 0, len(views))
	for _, v := range views {
		out = append(out, copyView[T](v))
	}
	return out
}
