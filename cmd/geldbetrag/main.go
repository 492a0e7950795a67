package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/geldbetrag/internal/app"
	"github.com/fsdevblog/geldbetrag/internal/config"
	"github.com/fsdevblog/geldbetrag/internal/logger"
)

func main() {
	conf, confErr := config.LoadConfig(os.Args[1:])
	if confErr != nil {
		// справку по флагам уже напечатал flag.FlagSet.
		if errors.Is(confErr, flag.ErrHelp) {
			os.Exit(0)
		}
		panic(confErr)
	}
	l := logger.New(os.Stderr, conf.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	if err := app.New(conf, l, os.Stdout).Run(ctx); err != nil {
		l.WithError(err).Error("calculation failed")
		stop()
		os.Exit(1)
	}
	stop()
}
