// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line API client.
type ClientConfig struct {
	Adapter Adapter `envPrefix:"CAR_RENTAL_"`

	// Token is the bearer token sent with booking requests.
	// Env: CAR_RENTAL_TOKEN
	Token string `env:"CAR_RENTAL_TOKEN"`

	// LogLevel is the minimal log level. Env: CAR_RENTAL_LOG_LEVEL
	LogLevel string `env:"CAR_RENTAL_LOG_LEVEL"`
}

// Adapter holds the outbound HTTP settings of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the server. Env: CAR_RENTAL_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request. Env: CAR_RENTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client defaults.
const (
	DefaultClientAddress        = "http://localhost:3000"
	DefaultClientRequestTimeout = 15 * time.Second
	DefaultClientLogLevel       = "warn"
)

// GetClientConfig loads the client configuration from the environment and
// the global flags in args. It returns the remaining positional arguments
// (the subcommand and its own flags).
//
// Flags:
//
//	-a server base URL
//	-t bearer token
//	-timeout request timeout
//	-log-level minimal log level
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	address := fs.String("a", "", "Server base URL")
	token := fs.String("t", "", "Bearer token")
	timeout := fs.Duration("timeout", 0, "Request timeout")
	logLevel := fs.String("log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := envCfg
	if *address != "" {
		cfg.Adapter.HTTPAddress = *address
	}
	if *token != "" {
		cfg.Token = *token
	}
	if *timeout != 0 {
		cfg.Adapter.RequestTimeout = *timeout
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultClientLogLevel
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid client config: %w", err)
	}

	return cfg, fs.Args(), nil
}
