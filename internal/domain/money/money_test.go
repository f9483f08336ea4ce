//go:build unit

package money_test

import (
	"testing"

	"stay-marketplace/internal/domain/money"
	"stay-marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
		detail  string
	}{
		{name: "integer", input: "150", want: "150.00"},
		{name: "two decimals", input: "99.95", want: "99.95"},
		{name: "trailing zeros beyond scale", input: "10.500", want: "10.50"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "zero with huge scale", input: "0e-40000000", want: "0.00"},
		{name: "exponent notation", input: "150e-2", want: "1.50"},
		{name: "positive exponent", input: "12E+5", want: "1200000.00"},
		{name: "trailing zeros with exponent", input: "1.2000000000000000000e2", want: "120.00"},
		{name: "largest amount", input: "9999999.99", want: "9999999.99"},
		{name: "not a number", input: "ten", wantErr: money.ErrInvalidAmount, detail: errs.MsgNotNumber},
		{name: "empty", input: "", wantErr: money.ErrInvalidAmount, detail: errs.MsgNotNumber},
		{name: "negative", input: "-0.01", wantErr: money.ErrNegativeAmount, detail: "Ensure this value is greater than or equal to 0."},
		{name: "three decimals", input: "1.234", wantErr: money.ErrInvalidAmount, detail: "Ensure that there are no more than 2 decimal places."},
		{name: "tiny exponent", input: "1e-40000000", wantErr: money.ErrInvalidAmount, detail: "Ensure that there are no more than 2 decimal places."},
		{name: "very large negative exponent", input: "1e-2000000000", wantErr: money.ErrInvalidAmount, detail: "Ensure that there are no more than 2 decimal places."},
		{name: "huge exponent", input: "1e40000000", wantErr: money.ErrInvalidAmount, detail: "Ensure that there are no more than 7 digits before the decimal point."},
		{name: "too many whole digits", input: "10000000", wantErr: money.ErrInvalidAmount, detail: "Ensure that there are no more than 7 digits before the decimal point."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.String())
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr))
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Equal(t, tt.detail, errs.Detail(err))
		})
	}
}

func TestAmountEqual(t *testing.T) {
	assert.True(t, money.MustParse("12.5").Equal(money.MustParse("12.50")))
	assert.False(t, money.MustParse("12.5").Equal(money.MustParse("12.51")))
	assert.Panics(t, func() { money.MustParse("oops") })
}
