package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fsdevblog/geldbetrag/internal/config"
	"github.com/fsdevblog/geldbetrag/internal/domain"
	"github.com/fsdevblog/geldbetrag/internal/service"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var _ Calculator = (*service.CalculatorService)(nil)

type App struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Out        io.Writer
	Calculator Calculator
}

// New создает приложение с сервисом service.CalculatorService в качестве калькулятора.
func New(conf *config.Config, l *logrus.Logger, out io.Writer) *App {
	return &App{
		Config:     conf,
		Logger:     l,
		Out:        out,
		Calculator: service.NewCalculatorService(conf.Lenient, l),
	}
}

// SetCalculator заменяет калькулятор приложения.
func (a *App) SetCalculator(c Calculator) *App {
	a.Calculator = c
	return a
}

// Run выполняет операцию из конфигурации и печатает результат в Out.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Debugf("Starting app with config: %+v", a.Config)

	result, calcErr := a.Calculator.Calculate(ctx, domain.OperationType(a.Config.Operation), a.Config.Operands)
	if calcErr != nil {
		return errors.Wrap(calcErr, "app run")
	}

	if renderErr := a.render(result); renderErr != nil {
		return errors.Wrap(renderErr, "app run")
	}
	return nil
}

// render печатает результат. Результат без значения - ошибка domain.ErrEmptyResult.
func (a *App) render(result *domain.CalculationResult) error {
	if result == nil || (result.Compare == nil && result.Decimal == "" && result.Amount == nil) {
		return domain.ErrEmptyResult
	}

	if a.Config.OutputFormat == config.OutputJSON {
		return json.NewEncoder(a.Out).Encode(result) //nolint:wrapcheck
	}

	var line string
	switch {
	case result.Compare != nil:
		line = fmt.Sprintf("%d", *result.Compare)
	case result.Decimal != "":
		line = result.Decimal
	case result.Amount != nil:
		line = result.Amount.String()
	}

	_, err := fmt.Fprintln(a.Out, line)
	return err //nolint:wrapcheck
}
