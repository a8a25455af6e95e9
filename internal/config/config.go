// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags and an
// optional JSON file, and finally filled with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds locale, version and session settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the records API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the web front end listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Navigation holds the URLs of the views that row actions lead to.
	Navigation Navigation `envPrefix:"NAVIGATION_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Locale selects UI language and number/date formatting ("ja" or "en").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// Version is reported by the /api/version/ endpoint when no linker
	// provided build version exists.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SessionSignKey signs the session cookie (HS256). Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of session tokens.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a session cookie stays valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionIdleTimeout is how long an unused session keeps its working set.
	// Env: APP_SESSION_IDLE_TIMEOUT
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT"`

	// MaxSessions caps live sessions; the least recently used one is evicted
	// to make room.
	// Env: APP_MAX_SESSIONS
	MaxSessions int `env:"MAX_SESSIONS"`
}

// Adapter holds the outbound records API settings.
type Adapter struct {
	// HTTPAddress is the records API base URL, e.g. "https://api.example.com".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is an optional bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Server holds network and timeout settings of the web front end.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Navigation holds the targets of row actions. Each is a URL or path to
// which the action appends its query parameter.
type Navigation struct {
	// DetailURL is the detail/edit view, parameterised by ?id=.
	// Env: NAVIGATION_DETAIL_URL
	DetailURL string `env:"DETAIL_URL"`

	// PDFURL is the PDF export view, parameterised by ?id=.
	// Env: NAVIGATION_PDF_URL
	PDFURL string `env:"PDF_URL"`

	// CustomerURL is the customer-facing view, parameterised by ?token=.
	// Env: NAVIGATION_CUSTOMER_URL
	CustomerURL string `env:"CUSTOMER_URL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often idle sessions are torn down.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following order (later non-zero values win):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill any field that is still zero. The result is not validated;
// use [GetServerConfig] or [GetClientConfig] for a checked view.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
