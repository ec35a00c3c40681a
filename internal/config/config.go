// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// helios-keeper host. It aggregates all sub-configurations and is populated
// by merging defaults with values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: name, version, data directory and
	// log level.
	App App `envPrefix:"APP_"`

	// Helios holds light-client session settings.
	Helios Helios `envPrefix:"HELIOS_"`

	// Storage holds configuration for the session journal database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the background task runtime.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is used for the per-user data directory and log file names.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is reported by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DataDir overrides the application data directory. When empty the
	// OS user config directory joined with Name is used.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// ReplacePolicy decides what Start does when a session is already running.
type ReplacePolicy string

const (
	// PolicyReplace installs the new session and gracefully shuts the old
	// one down once its in-flight reads finish.
	PolicyReplace ReplacePolicy = "replace"

	// PolicyReject refuses to start while a session is running.
	PolicyReject ReplacePolicy = "reject"
)

// Helios holds light-client session settings.
type Helios struct {
	// DefaultExecutionRPC is used when a start request omits rpc_url.
	// Env: HELIOS_EXECUTION_RPC
	DefaultExecutionRPC string `env:"EXECUTION_RPC"`

	// DefaultConsensusRPC overrides the network's default beacon endpoint
	// when a start request omits consensus_rpc.
	// Env: HELIOS_CONSENSUS_RPC
	DefaultConsensusRPC string `env:"CONSENSUS_RPC"`

	// SyncTimeout bounds the wait for a freshly started client to sync.
	// Env: HELIOS_SYNC_TIMEOUT
	SyncTimeout time.Duration `env:"SYNC_TIMEOUT"`

	// PollInterval is how often the head tracker polls the beacon node.
	// Env: HELIOS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// RequestTimeout bounds a single outbound request to either endpoint.
	// Env: HELIOS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReplacePolicy is "replace" or "reject".
	// Env: HELIOS_REPLACE_POLICY
	ReplacePolicy ReplacePolicy `env:"REPLACE_POLICY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the session journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings for the session journal.
type DB struct {
	// DSN is the SQLite file path. Relative paths are resolved against the
	// application data directory.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on
	// (e.g. "127.0.0.1:8787").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request that is not a Start.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful server and session shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for the background task runtime.
type Workers struct {
	// RuntimeSize is the maximum number of concurrently running tasks.
	// Env: WORKERS_RUNTIME_SIZE
	RuntimeSize int `env:"RUNTIME_SIZE"`
}

// Defaults used when no source sets a value.
const (
	DefaultAppName         = "helios-keeper"
	DefaultAppVersion      = "dev"
	DefaultLogLevel        = "info"
	DefaultSyncTimeout     = 5 * time.Minute
	DefaultPollInterval    = 12 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
	DefaultHTTPAddress     = "127.0.0.1:8787"
	DefaultShutdownTimeout = 15 * time.Second
	DefaultRuntimeSize     = 4
	DefaultDSN             = "helios-keeper.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     DefaultAppName,
			Version:  DefaultAppVersion,
			LogLevel: DefaultLogLevel,
		},
		Helios: Helios{
			SyncTimeout:    DefaultSyncTimeout,
			PollInterval:   DefaultPollInterval,
			RequestTimeout: DefaultRequestTimeout,
			ReplacePolicy:  PolicyReplace,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Workers: Workers{
			RuntimeSize: DefaultRuntimeSize,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
