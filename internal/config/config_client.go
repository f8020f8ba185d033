package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the server API endpoint used by the client
	// (e.g. "http://localhost:8080").
	// Env: CLIENT_ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path used for the local contact
	// cache. ":memory:" keeps everything in process memory.
	// Env: CLIENT_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB `envPrefix:"DB_"`
}

// ClientAuth holds the credentials the client uses to authenticate against
// the server. Authentication is non-interactive: the one-shot command mode
// has to work in scripts.
type ClientAuth struct {
	// Login is the account login on the sync server.
	// Env: CLIENT_AUTH_LOGIN
	Login string `env:"LOGIN"`

	// Password is the account password. Prefer the JSON config file or a
	// process environment over shell history for supplying it.
	// Env: CLIENT_AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	// Env: CLIENT_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// ClientConfig is the top-level configuration container for the interactive
// client. It is populated from environment variables and an optional JSON
// file; there is no flag source (see package doc).
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Storage contains client storage settings.
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// Auth contains the sync-server credentials.
	Auth ClientAuth `envPrefix:"AUTH_"`

	// Workers contains background worker settings.
	Workers ClientWorkers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CLIENT_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// GetClientConfig loads and merges the client configuration from the
// environment (CLIENT_-prefixed variables) and an optional JSON file,
// then applies defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseClientEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.JSONFilePath != "" {
		jsonCfg, err := parseClientJSON(cfg.JSONFilePath)
		if err != nil {
			return nil, fmt.Errorf("error loading client json config: %w", err)
		}
		mergeClientConfig(cfg, jsonCfg)
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

// applyDefaults fills in values a fresh installation can live with.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = 5 * time.Minute
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "contacts.db"
	}
}
