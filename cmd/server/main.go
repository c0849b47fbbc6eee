// Package main is the entry point for the wrapquote API server.
// It is configured entirely by the config file and WRAPQUOTE_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"wrapquote/api"
	"wrapquote/internal/config"
	"wrapquote/internal/logging"
)

const version = "0.1.0"

// EnvConfigPath points at the config file; it defaults to $HOME/.wrapquote.json
const EnvConfigPath = "WRAPQUOTE_CONFIG"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	defaults, err := cfg.Shop.Job()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("starting wrapquote server",
		zap.String("version", version),
		zap.String("config", path),
	)
	return api.NewServer(cfg.Server, defaults, version).ListenAndServe(ctx)
}
