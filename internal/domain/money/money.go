package money

import (
	"fmt"
	"math/big"
	"strings"

	"stay-marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amounts are stored as numeric(9,2).
const (
	MaxDigits     = 9
	DecimalPlaces = 2
)

var (
	ErrInvalidAmount  = errs.New("invalid amount")
	ErrNegativeAmount = errs.New("amount must not be negative")
)

type Amount struct {
	value decimal.Decimal
}

// NewAmount checks scale and magnitude on the coefficient and exponent
// before any rescale.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, errs.Invalid(ErrNegativeAmount, "Ensure this value is greater than or equal to 0.")
	}
	if d.IsZero() {
		return Amount{value: decimal.New(0, -DecimalPlaces)}, nil
	}

	digits := d.Coefficient().String()
	significant := strings.TrimRight(digits, "0")
	exp := int64(d.Exponent()) + int64(len(digits)-len(significant))

	if exp < -DecimalPlaces {
		return Amount{}, errs.Invalid(ErrInvalidAmount,
			fmt.Sprintf("Ensure that there are no more than %d decimal places.", DecimalPlaces))
	}
	if int64(len(significant))+exp > MaxDigits-DecimalPlaces {
		return Amount{}, errs.Invalid(ErrInvalidAmount,
			fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", MaxDigits-DecimalPlaces))
	}

	coef, _ := new(big.Int).SetString(significant, 10)
	return Amount{value: decimal.NewFromBigInt(coef, int32(exp)).Round(DecimalPlaces)}, nil
}

func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.Invalid(ErrInvalidAmount, errs.MsgNotNumber)
	}
	return NewAmount(d)
}

// Reconstruct trusts values already persisted under the column constraint.
func Reconstruct(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// MustParse is for constants and fixtures.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) String() string           { return a.value.StringFixed(DecimalPlaces) }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) }
