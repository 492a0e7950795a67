package money

import "errors"

var (
	ErrInvalidAmount = errors.New("[money] invalid amount")
	ErrInvalidFormat = errors.New("[money] invalid format")
	ErrOverflow      = errors.New("[money] overflow")
)
