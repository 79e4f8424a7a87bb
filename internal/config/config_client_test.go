// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, rest, err := GetClientConfig([]string{"list"})
	require.NoError(t, err)

	assert.Equal(t, DefaultClientAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultClientLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, []string{"list"}, rest)
}

func TestGetClientConfig_EnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CAR_RENTAL_ADDRESS":         "http://env:3000",
		"CAR_RENTAL_TOKEN":           "env-token",
		"CAR_RENTAL_REQUEST_TIMEOUT": "5s",
	})

	cfg, rest, err := GetClientConfig([]string{
		"-a", "http://flag:3000", "-timeout", "2s", "get", "-id", "7",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"get", "-id", "7"}, rest)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	clearEnvVars(t)

	_, _, err := GetClientConfig([]string{"-timeout", "1ns"})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)

	_, _, err = GetClientConfig([]string{"-unknown"})
	assert.Error(t, err)
}
