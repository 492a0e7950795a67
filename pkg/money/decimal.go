package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	centsPerEuroDecimal = decimal.NewFromInt(CentsPerEuro)
	maxCentsDecimal     = decimal.NewFromInt(math.MaxInt64)
)

// Decimal возвращает сумму в евро, например 40.55 для "40,55".
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.cents, -2)
}

// NewFromDecimal создает сумму из значения в евро. Доли цента округляются вверх.
func NewFromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("new from decimal %s: %w", d.String(), ErrInvalidAmount)
	}

	cents := d.Mul(centsPerEuroDecimal).Ceil()
	if cents.GreaterThan(maxCentsDecimal) {
		return Amount{}, fmt.Errorf("new from decimal %s: %w", d.String(), ErrOverflow)
	}
	return Amount{cents: cents.IntPart()}, nil
}

func decimalFromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidFormat, err.Error())
	}
	return d, nil
}
