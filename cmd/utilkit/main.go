package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/utilkit/internal/cli"
	"github.com/dmitrymomot/utilkit/pkg/config"
)

func main() {
	if path := os.Getenv("UTILKIT_ENV_FILE"); path != "" {
		if err := config.LoadEnv(path); err != nil {
			log.Fatalf("Failed to load env file: %v", err)
		}
	}

	var cfg cli.Config
	config.MustLoad(&cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}
