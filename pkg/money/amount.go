// Package money реализует неизменяемую денежную сумму в евро и центах.
//
// Сумма хранится целым числом центов и никогда не бывает отрицательной:
// все конструкторы и операции, которые могли бы дать отрицательное значение,
// возвращают ErrInvalidAmount. Переполнение int64 возвращает ErrOverflow.
package money

import "fmt"

const CentsPerEuro = 100

// Zero нулевая сумма. Совпадает с нулевым значением Amount{}.
var Zero = Amount{}

// Amount денежная сумма в центах. Значение неизменяемо, поэтому его можно
// свободно копировать и разделять между горутинами.
type Amount struct {
	cents int64
}

// NewFromCents создает сумму из количества центов. Отрицательное n - ошибка ErrInvalidAmount.
func NewFromCents(n int64) (Amount, error) {
	if n < 0 {
		return Amount{}, fmt.Errorf("new from cents %d: %w", n, ErrInvalidAmount)
	}
	return Amount{cents: n}, nil
}

// MustNewFromCents как NewFromCents, но паникует при ошибке. Для констант и тестов.
func MustNewFromCents(n int64) Amount {
	a, err := NewFromCents(n)
	if err != nil {
		panic(err)
	}
	return a
}

// Euros возвращает целую часть суммы в евро.
func (a Amount) Euros() int64 {
	return a.cents / CentsPerEuro
}

// Cents возвращает остаток в центах, всегда в диапазоне 0..99 независимо от знака суммы.
func (a Amount) Cents() int64 {
	return abs(a.cents % CentsPerEuro)
}

// TotalCents возвращает всю сумму в центах.
func (a Amount) TotalCents() int64 {
	return a.cents
}

func (a Amount) IsZero() bool {
	return a.cents == 0
}

// abs возвращает модуль n. Для остатка от деления на CentsPerEuro переполнение невозможно.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// String возвращает сумму в виде "евро,центы", центы всегда двумя цифрами: "1,00", "0,99".
func (a Amount) String() string {
	return fmt.Sprintf("%d,%02d", a.Euros(), a.Cents())
}
