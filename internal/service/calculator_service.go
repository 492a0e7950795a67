package service

import (
	"context"
	"strconv"

	"github.com/fsdevblog/geldbetrag/internal/domain"
	"github.com/fsdevblog/geldbetrag/pkg/money"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// variadicArgs отмечает операции с переменным числом аргументов (не меньше одного).
const variadicArgs = -1

var operationArgs = map[domain.OperationType]int{
	domain.OperationParse:   1,
	domain.OperationCents:   1,
	domain.OperationAdd:     2,
	domain.OperationSum:     variadicArgs,
	domain.OperationDiff:    2,
	domain.OperationSub:     2,
	domain.OperationMul:     2,
	domain.OperationCmp:     2,
	domain.OperationDecimal: 1,
}

type parseFunc func(string) (money.Amount, error)

// CalculatorService выполняет операции над суммами, заданными строками.
type CalculatorService struct {
	parse parseFunc
	l     *logrus.Entry
}

// NewCalculatorService создает сервис. При lenient=true строки неизвестного формата
// трактуются как нулевая сумма, иначе это ошибка money.ErrInvalidFormat.
func NewCalculatorService(lenient bool, l *logrus.Logger) *CalculatorService {
	parse := money.Parse
	if lenient {
		parse = money.ParseLenient
	}
	return &CalculatorService{
		parse: parse,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "calculator",
			"lenient":   lenient,
		}),
	}
}

// Calculate проверяет число аргументов, разбирает операнды и выполняет операцию op.
// Ошибки пакета money доступны через errors.Is.
func (c *CalculatorService) Calculate(
	ctx context.Context,
	op domain.OperationType,
	args []string,
) (*domain.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if argsErr := checkArgs(op, args); argsErr != nil {
		return nil, argsErr
	}

	result, calcErr := c.calculate(op, args)
	if calcErr != nil {
		c.l.WithError(calcErr).WithField("operation", op).Debug("calculation failed")
		return nil, errors.Wrapf(calcErr, "calculate %s", op)
	}

	c.l.WithFields(logrus.Fields{
		"operation": op,
		"args":      args,
	}).Debug("calculated")

	return result, nil
}

func (c *CalculatorService) calculate(op domain.OperationType, args []string) (*domain.CalculationResult, error) {
	result := &domain.CalculationResult{Operation: op}

	switch op {
	case domain.OperationParse:
		a, err := c.parse(args[0])
		if err != nil {
			return nil, err
		}
		result.Amount = &a

	case domain.OperationCents:
		cents, parseErr := strconv.ParseInt(args[0], 10, 64)
		if parseErr != nil {
			return nil, errors.Wrapf(money.ErrInvalidFormat, "cents %q", args[0])
		}
		a, err := money.NewFromCents(cents)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		result.Amount = &a

	case domain.OperationAdd, domain.OperationSum:
		amounts, err := c.parseAll(args)
		if err != nil {
			return nil, err
		}
		total, sumErr := money.Sum(amounts...)
		if sumErr != nil {
			return nil, sumErr //nolint:wrapcheck
		}
		result.Amount = &total

	case domain.OperationDiff, domain.OperationSub:
		amounts, err := c.parseAll(args)
		if err != nil {
			return nil, err
		}
		diff := money.Diff(amounts[0], amounts[1])
		result.Amount = &diff

	case domain.OperationMul:
		a, err := c.parse(args[0])
		if err != nil {
			return nil, err
		}
		factor, factorErr := strconv.ParseInt(args[1], 10, 64)
		if factorErr != nil {
			return nil, errors.Wrapf(domain.ErrInvalidFactor, "factor %q", args[1])
		}
		product, mulErr := money.Multiply(a, factor)
		if mulErr != nil {
			return nil, mulErr //nolint:wrapcheck
		}
		result.Amount = &product

	case domain.OperationCmp:
		amounts, err := c.parseAll(args)
		if err != nil {
			return nil, err
		}
		cmp := money.Compare(amounts[0], amounts[1])
		result.Compare = &cmp

	case domain.OperationDecimal:
		a, err := c.parse(args[0])
		if err != nil {
			return nil, err
		}
		result.Decimal = a.Decimal().StringFixed(2)
	}

	return result, nil
}

func (c *CalculatorService) parseAll(args []string) ([]money.Amount, error) {
	amounts := make([]money.Amount, 0, len(args))
	for _, arg := range args {
		a, err := c.parse(arg)
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, a)
	}
	return amounts, nil
}

func checkArgs(op domain.OperationType, args []string) error {
	want, ok := operationArgs[op]
	if !ok {
		return errors.Wrapf(domain.ErrUnknownOperation, "operation %q", op)
	}
	if want == variadicArgs {
		if len(args) < 1 {
			return domain.NewArgumentsCountError(op, 1, len(args), true)
		}
		return nil
	}
	if len(args) != want {
		return domain.NewArgumentsCountError(op, want, len(args), false)
	}
	return nil
}
