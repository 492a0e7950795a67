package app

import (
	"bytes"
	"io"
	"testing"

	"github.com/fsdevblog/geldbetrag/internal/app/mocks"
	"github.com/fsdevblog/geldbetrag/internal/config"
	"github.com/fsdevblog/geldbetrag/internal/domain"
	"github.com/fsdevblog/geldbetrag/internal/logger"
	"github.com/fsdevblog/geldbetrag/pkg/money"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockCalculator *mocks.MockCalculator
	out            *bytes.Buffer
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCalculator = mocks.NewMockCalculator(s.mockCtrl)
	s.out = new(bytes.Buffer)
}

func (s *AppTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AppTestSuite) newApp(format string, op string, operands ...string) *App {
	conf := &config.Config{
		OutputFormat: format,
		Operation:    op,
		Operands:     operands,
	}
	return New(conf, logger.New(io.Discard, "debug"), s.out).SetCalculator(s.mockCalculator)
}

func (s *AppTestSuite) TestRun_PassesOperationAndOperands() {
	amount := money.MustNewFromCents(638)

	s.mockCalculator.EXPECT().
		Calculate(gomock.Any(), domain.OperationAdd, []string{"5,00", "1,38"}).
		Return(&domain.CalculationResult{Operation: domain.OperationAdd, Amount: &amount}, nil)

	s.Require().NoError(s.newApp(config.OutputText, "add", "5,00", "1,38").Run(s.T().Context()))
	s.Equal("6,38\n", s.out.String())
}

func (s *AppTestSuite) TestRun_RendersJSON() {
	cmp := 1

	s.mockCalculator.EXPECT().
		Calculate(gomock.Any(), domain.OperationCmp, gomock.Any()).
		Return(&domain.CalculationResult{Operation: domain.OperationCmp, Compare: &cmp}, nil)

	s.Require().NoError(s.newApp(config.OutputJSON, "cmp", "2", "1").Run(s.T().Context()))
	s.JSONEq(`{"operation":"cmp","compare":1}`, s.out.String())
}

func (s *AppTestSuite) TestRun_WrapsCalculatorError() {
	s.mockCalculator.EXPECT().
		Calculate(gomock.Any(), domain.OperationMul, gomock.Any()).
		Return(nil, money.ErrOverflow)

	err := s.newApp(config.OutputText, "mul", "9999999,99", "9223372036854775807").Run(s.T().Context())
	s.Require().ErrorIs(err, money.ErrOverflow)
	s.Contains(err.Error(), "app run")
	s.Empty(s.out.String())
}

func (s *AppTestSuite) TestRun_EmptyResult() {
	cases := []struct {
		name   string
		format string
		result *domain.CalculationResult
	}{
		{name: "nil compare text", format: config.OutputText, result: &domain.CalculationResult{Operation: domain.OperationCmp}},
		{name: "nil compare json", format: config.OutputJSON, result: &domain.CalculationResult{Operation: domain.OperationCmp}},
		{name: "nil result", format: config.OutputText, result: nil},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.out.Reset()
			s.mockCalculator.EXPECT().
				Calculate(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(t.result, nil)

			err := s.newApp(t.format, "cmp", "1", "2").Run(s.T().Context())
			s.Require().ErrorIs(err, domain.ErrEmptyResult)
			s.Empty(s.out.String())
		})
	}
}
