package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер с уровнем level. Неизвестный уровень заменяется на info.
func New(output io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	// вне продакшн окружения логи читает человек.
	if os.Getenv("APP_ENV") != "production" {
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
