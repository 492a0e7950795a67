package app

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/fsdevblog/geldbetrag/internal/config"
	"github.com/fsdevblog/geldbetrag/internal/domain"
	"github.com/fsdevblog/geldbetrag/internal/logger"
	"github.com/fsdevblog/geldbetrag/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, conf *config.Config) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := New(conf, logger.New(io.Discard, "debug"), &out).Run(t.Context())
	return out.String(), err
}

func TestRun_Text(t *testing.T) {
	cases := []struct {
		name     string
		op       string
		operands []string
		want     string
	}{
		{name: "add", op: "add", operands: []string{"5,00", "1,38"}, want: "6,38\n"},
		{name: "diff", op: "diff", operands: []string{"5,00", "1,38"}, want: "3,62\n"},
		{name: "mul", op: "mul", operands: []string{"0,50", "2"}, want: "1,00\n"},
		{name: "cmp", op: "cmp", operands: []string{"4,99", "5"}, want: "-1\n"},
		{name: "cmp equal", op: "cmp", operands: []string{"4,99", "4,99"}, want: "0\n"},
		{name: "decimal", op: "decimal", operands: []string{"40,55"}, want: "40.55\n"},
		{name: "cents", op: "cents", operands: []string{"99"}, want: "0,99\n"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, &config.Config{
				OutputFormat: config.OutputText,
				Operation:    tt.op,
				Operands:     tt.operands,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_JSON(t *testing.T) {
	cases := []struct {
		name     string
		op       string
		operands []string
		want     string
	}{
		{name: "amount", op: "add", operands: []string{"5,00", "1,38"}, want: `{"operation":"add","amount":"6,38"}`},
		{name: "compare zero", op: "cmp", operands: []string{"1", "1,00"}, want: `{"operation":"cmp","compare":0}`},
		{name: "decimal", op: "decimal", operands: []string{"1,5"}, want: `{"operation":"decimal","decimal":"1.50"}`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, &config.Config{
				OutputFormat: config.OutputJSON,
				Operation:    tt.op,
				Operands:     tt.operands,
			})
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestRun_Lenient(t *testing.T) {
	out, err := runApp(t, &config.Config{
		OutputFormat: config.OutputText,
		Lenient:      true,
		Operation:    "parse",
		Operands:     []string{"garbage"},
	})
	require.NoError(t, err)
	assert.Equal(t, "0,00\n", out)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name     string
		op       string
		operands []string
		wantErr  error
	}{
		{name: "unknown operation", op: "div", operands: []string{"1", "2"}, wantErr: domain.ErrUnknownOperation},
		{name: "invalid format", op: "parse", operands: []string{"1.50"}, wantErr: money.ErrInvalidFormat},
		{name: "negative", op: "parse", operands: []string{"-1"}, wantErr: money.ErrInvalidAmount},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, &config.Config{
				OutputFormat: config.OutputText,
				Operation:    tt.op,
				Operands:     tt.operands,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), "app run")
			assert.Empty(t, out)
		})
	}
}
