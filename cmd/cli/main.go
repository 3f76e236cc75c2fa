package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/ipms/internal/buildinfo"
	"github.com/dmitrijs2005/ipms/internal/client/cli"
	"github.com/dmitrijs2005/ipms/internal/client/config"
	"github.com/dmitrijs2005/ipms/internal/logging"
	"golang.org/x/term"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Color = false
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

	if err := app.Close(); err != nil {
		logger.Error(ctx, "close", "error", err)
	}
}
