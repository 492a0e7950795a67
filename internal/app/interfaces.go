package app

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/geldbetrag/internal/domain"
)

// Calculator интерфейс исключительно для моков. Реализация - service.CalculatorService.
type Calculator interface {
	Calculate(ctx context.Context, op domain.OperationType, args []string) (*domain.CalculationResult, error)
}
