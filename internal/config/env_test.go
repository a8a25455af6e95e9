// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOCALE":               "en",
		"APP_VERSION":              "1.2.3",
		"APP_SESSION_SIGN_KEY":     "sign",
		"APP_SESSION_ISSUER":       "issuer",
		"APP_SESSION_DURATION":     "2h",
		"APP_SESSION_IDLE_TIMEOUT": "10m",

		"ADAPTER_ADDRESS":         "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
		"ADAPTER_TOKEN":           "secret",

		"SERVER_ADDRESS":         "localhost:9000",
		"SERVER_REQUEST_TIMEOUT": "20s",

		"NAVIGATION_DETAIL_URL":   "/inspection",
		"NAVIGATION_PDF_URL":      "/pdf",
		"NAVIGATION_CUSTOMER_URL": "/customer",

		"WORKERS_SESSION_SWEEP_INTERVAL": "30s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "sign", cfg.App.SessionSignKey)
	assert.Equal(t, "issuer", cfg.App.SessionIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 10*time.Minute, cfg.App.SessionIdleTimeout)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "secret", cfg.Adapter.Token)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/inspection", cfg.Navigation.DetailURL)
	assert.Equal(t, "/pdf", cfg.Navigation.PDFURL)
	assert.Equal(t, "/customer", cfg.Navigation.CustomerURL)

	assert.Equal(t, 30*time.Second, cfg.Workers.SessionSweepInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "api:8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "api:8080", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.App.Locale)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
