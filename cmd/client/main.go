// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-car-rental/internal/adapter"
	"github.com/MKhiriev/go-car-rental/internal/client"
	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.NewConsoleLogger("car-rental-client", cfg.LogLevel, os.Stderr)
	log.Debug().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Str("address", cfg.Adapter.HTTPAddress).
		Msg("client started")

	api, err := adapter.NewHTTPRentalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 1
	}
	api.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrInvalidFlags) {
			app.Usage(os.Stderr)
			return 2
		}
		return 1
	}
	return 0
}
