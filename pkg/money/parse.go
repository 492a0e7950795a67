package money

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MaxParsableCents наибольшая сумма, строковое представление которой принимает Parse
// (не более 7 цифр в целой части).
const MaxParsableCents int64 = 9_999_999*CentsPerEuro + 99

var (
	// "40,55", "1,5", "1,".
	fractionalPattern = regexp.MustCompile(`^([0-9]{1,7}),([0-9]{0,2})$`)
	// "40", "-0".
	wholePattern = regexp.MustCompile(`^(-?)([0-9]{1,7})$`)
)

// Parse разбирает сумму из строки.
//
// Поддерживаемые форматы (проверяются по порядку):
//  1. "E,C" - от 1 до 7 цифр евро, запятая и от 0 до 2 цифр дробной части.
//     Одна цифра означает десятые ("1,5" = 1,50), пустая дробная часть - ноль ("1," = 1,00).
//  2. "E" - от 1 до 7 цифр целых евро, допускается знак минус. Результат обязан быть
//     неотрицательным: "-0" дает ноль, "-5" - ErrInvalidAmount.
//
// Все остальное - ErrInvalidFormat.
func Parse(s string) (Amount, error) {
	if m := fractionalPattern.FindStringSubmatch(s); m != nil {
		a, err := parseFractional(m[1], m[2])
		if err != nil {
			return Amount{}, fmt.Errorf("parse %q: %w", s, err)
		}
		return a, nil
	}

	if m := wholePattern.FindStringSubmatch(s); m != nil {
		a, err := parseWhole(m[1] == "-", m[2])
		if err != nil {
			return Amount{}, fmt.Errorf("parse %q: %w", s, err)
		}
		return a, nil
	}

	return Amount{}, fmt.Errorf("parse %q: %w", s, ErrInvalidFormat)
}

// ParseLenient разбирает строку как Parse, но для строки неизвестного формата
// возвращает нулевую сумму без ошибки. Отрицательные суммы по-прежнему ошибка.
func ParseLenient(s string) (Amount, error) {
	a, err := Parse(s)
	if errors.Is(err, ErrInvalidFormat) {
		return Zero, nil
	}
	return a, err
}

func parseFractional(euros, fraction string) (Amount, error) {
	for len(fraction) < 2 {
		fraction += "0"
	}
	d, err := decimalFromString(euros + "." + fraction)
	if err != nil {
		return Amount{}, err
	}
	return NewFromDecimal(d)
}

func parseWhole(negative bool, digits string) (Amount, error) {
	// не более 7 цифр, в int64 помещается всегда.
	euros, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidFormat, err.Error())
	}
	if negative {
		euros = -euros
	}
	return NewFromCents(euros * CentsPerEuro)
}
