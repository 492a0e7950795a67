package money

import (
	"fmt"
	"math"
)

// Add складывает две суммы. Если результат не помещается в int64, возвращает ErrOverflow.
func Add(a, b Amount) (Amount, error) {
	if a.cents > math.MaxInt64-b.cents {
		return Amount{}, fmt.Errorf("add %s + %s: %w", a, b, ErrOverflow)
	}
	return Amount{cents: a.cents + b.cents}, nil
}

// Add то же, что Add(a, b).
func (a Amount) Add(b Amount) (Amount, error) {
	return Add(a, b)
}

// Sum складывает все суммы. Для пустого списка возвращает Zero.
func Sum(amounts ...Amount) (Amount, error) {
	total := Zero
	for _, a := range amounts {
		var err error
		if total, err = Add(total, a); err != nil {
			return Amount{}, err
		}
	}
	return total, nil
}

// Diff возвращает модуль разности |a - b|. Из большей суммы вычитается меньшая,
// поэтому результат всегда неотрицателен и переполнение невозможно.
func Diff(a, b Amount) Amount {
	if a.cents >= b.cents {
		return Amount{cents: a.cents - b.cents}
	}
	return Amount{cents: b.cents - a.cents}
}

// Diff то же, что Diff(a, b).
func (a Amount) Diff(b Amount) Amount {
	return Diff(a, b)
}

// Sub возвращает модуль разности, как Diff, а не знаковую разность.
//
// Deprecated: используйте Diff, название которого отражает поведение.
func (a Amount) Sub(b Amount) Amount {
	return Diff(a, b)
}

// Multiply умножает сумму на целый множитель.
// Отрицательный множитель - ErrInvalidAmount, выход за пределы int64 - ErrOverflow.
func Multiply(a Amount, factor int64) (Amount, error) {
	if factor < 0 {
		return Amount{}, fmt.Errorf("multiply %s * %d: negative factor: %w", a, factor, ErrInvalidAmount)
	}
	if factor != 0 && a.cents > math.MaxInt64/factor {
		return Amount{}, fmt.Errorf("multiply %s * %d: %w", a, factor, ErrOverflow)
	}
	return Amount{cents: a.cents * factor}, nil
}

// Multiply то же, что Multiply(a, factor).
func (a Amount) Multiply(factor int64) (Amount, error) {
	return Multiply(a, factor)
}
