package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArgumentsCount   = errors.New("wrong arguments count")
	ErrInvalidFactor    = errors.New("invalid factor")
	ErrEmptyResult      = errors.New("empty calculation result")
)

// ArgumentsCountError сообщает, сколько аргументов ожидала операция.
type ArgumentsCountError struct {
	Operation OperationType
	Want      int
	Got       int
	Variadic  bool
}

func NewArgumentsCountError(op OperationType, want, got int, variadic bool) error {
	return &ArgumentsCountError{Operation: op, Want: want, Got: got, Variadic: variadic}
}

func (e *ArgumentsCountError) Error() string {
	if e.Variadic {
		return fmt.Sprintf("operation %s expects at least %d arguments, got %d", e.Operation, e.Want, e.Got)
	}
	return fmt.Sprintf("operation %s expects %d arguments, got %d", e.Operation, e.Want, e.Got)
}

func (e *ArgumentsCountError) Unwrap() error {
	return ErrArgumentsCount
}
