// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the stub server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token settings used by the stub server.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite settings of the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the stub server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote goals API settings of the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the sync worker settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log level and log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds token lifecycle settings.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is a SQLite file path or URI (e.g. "goal-keeper.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds inbound transport settings of the stub server.
type Server struct {
	// HTTPAddress is the "host:port" the stub server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote goals API. A bare
	// "host:port" is treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds sync worker settings.
type Workers struct {
	// SyncInterval is the period of the optional background sync ticker.
	// Zero disables the ticker; cycles then run only on explicit triggers.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the client log file path. Empty means next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults returns the configuration used when no other source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "goal-keeper",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "goal-keeper.db"}},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{SyncInterval: time.Minute},
		Log:     Log{Level: "info"},
	}
}

// GetStructuredConfig loads and merges all configuration layers. fs holds
// already parsed command-line flags registered with [RegisterClientFlags] or
// [RegisterServerFlags]; nil skips the flag layer.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
