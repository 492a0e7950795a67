package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	defaultDotEnvFile = ".env"
)

var ErrOperationNotSet = errors.New("operation is not set")

type Config struct {
	OutputFormat string `env:"OUTPUT_FORMAT" validate:"oneof=text json"`
	LogLevel     string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Lenient      bool   `env:"LENIENT_PARSE"`

	// Operation и Operands берутся из позиционных аргументов.
	Operation string
	Operands  []string
}

// LoadConfig собирает конфигурацию из .env файла, переменных окружения и аргументов
// командной строки args (без имени программы). Переменные окружения имеют приоритет над флагами.
// На флаг -h возвращает ошибку, для которой errors.Is(err, flag.ErrHelp) истинно.
func LoadConfig(args []string) (*Config, error) {
	if dotEnvErr := loadDotEnv(defaultDotEnvFile); dotEnvErr != nil {
		return nil, dotEnvErr
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %w", flagsErr)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.Operation == "" {
		return nil, ErrOperationNotSet
	}

	if validateErr := validator.New().Struct(conf); validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}
	return conf, nil
}

// loadDotEnv подгружает переменные из файла path, если он существует.
// Уже заданные переменные окружения не перезаписываются.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadFlags(flagConfig *Config, args []string) error {
	flagSet := flag.NewFlagSet("geldbetrag", flag.ContinueOnError)
	flagSet.StringVar(&flagConfig.OutputFormat, "o", OutputText, "Output format: text or json")
	flagSet.StringVar(&flagConfig.LogLevel, "l", "info", "Log level: debug, info, warn or error")
	flagSet.BoolVar(&flagConfig.Lenient, "lenient", false, "Treat unparsable amounts as zero")

	if err := flagSet.Parse(args); err != nil {
		return err //nolint:wrapcheck
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		flagConfig.Operation = rest[0]
		flagConfig.Operands = rest[1:]
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		OutputFormat: defaultIfBlank(envConfig.OutputFormat, flagsConfig.OutputFormat),
		LogLevel:     defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		Lenient:      envConfig.Lenient || flagsConfig.Lenient,
		Operation:    flagsConfig.Operation,
		Operands:     flagsConfig.Operands,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
