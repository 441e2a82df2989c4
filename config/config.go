// Package config provides configuration loading for the fund daemon.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
	BackendRedis  = "redis"
)

// Config represents the complete fundd configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Events EventsConfig `yaml:"events"`
	Fund   FundConfig   `yaml:"fund"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	// Addr is the listen address (default: :8080)
	Addr string `yaml:"addr"`
	// JWTSecret signs and verifies caller tokens (HS256)
	JWTSecret string `yaml:"jwt_secret"`
	// CORSOrigins lists allowed browser origins (empty = none)
	CORSOrigins []string `yaml:"cors_origins,omitempty"`
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StoreConfig selects and configures the state backend
type StoreConfig struct {
	// Backend is one of memory, mysql, redis
	Backend string `yaml:"backend"`
	// SnapshotPath persists the memory backend (empty = volatile)
	SnapshotPath string `yaml:"snapshot_path"`
	// MySQLDSN is used by the mysql backend
	MySQLDSN string `yaml:"mysql_dsn"`
	// RedisURL is used by the redis backend, e.g. redis://localhost:6379/0
	RedisURL string `yaml:"redis_url"`
	// RedisPrefix namespaces state keys
	RedisPrefix string `yaml:"redis_prefix"`
}

// EventsConfig configures where committed events are published
type EventsConfig struct {
	// RedisURL enables the redis stream publisher
	RedisURL string `yaml:"redis_url"`
	// RedisStream is the stream name
	RedisStream string `yaml:"redis_stream"`
	// NATSURL enables the nats publisher
	NATSURL string `yaml:"nats_url"`
	// NATSSubjectPrefix is followed by the event kind
	NATSSubjectPrefix string `yaml:"nats_subject_prefix"`
}

// FundConfig holds deployment level fund settings
type FundConfig struct {
	// Authority may bootstrap the admin council
	Authority string `yaml:"authority"`
	// VaultAccount is the account holding the pool
	VaultAccount string `yaml:"vault_account"`
	// Genesis seeds balances once, the first time a store is used
	Genesis []GenesisBalance `yaml:"genesis,omitempty"`
}

// GenesisBalance is one starting balance in smallest units
type GenesisBalance struct {
	Address string `yaml:"address"`
	Amount  uint64 `yaml:"amount"`
}

// LogConfig configures the slog handler
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level"`
	// Format is text or json
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Backend:     BackendMemory,
			RedisPrefix: "fund:",
		},
		Events: EventsConfig{
			RedisStream:       "fund.events",
			NATSSubjectPrefix: "fund.events",
		},
		Fund: FundConfig{
			VaultAccount: "system:vault",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.JWTSecret == "" {
		return fmt.Errorf("server.jwt_secret is required")
	}
	switch c.Store.Backend {
	case BackendMemory:
	case BackendMySQL:
		if c.Store.MySQLDSN == "" {
			return fmt.Errorf("store.mysql_dsn is required for the mysql backend")
		}
	case BackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("store.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("store.backend must be one of memory, mysql, redis (got %q)", c.Store.Backend)
	}
	if c.Fund.VaultAccount == "" {
		return fmt.Errorf("fund.vault_account is required")
	}
	for i, g := range c.Fund.Genesis {
		if g.Address == "" {
			return fmt.Errorf("fund.genesis[%d].address is required", i)
		}
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
