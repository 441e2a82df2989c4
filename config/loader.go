package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// EnvPrefix is prepended to every environment override, e.g. FUND_SERVER_ADDR.
const EnvPrefix = "FUND_"

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
	lookup func(string) (string, bool)
}

// NewLoader creates a new configuration loader reading the process environment
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, lookup: os.LookupEnv}
}

// WithLookup swaps the environment source, used by tests
func (l *Loader) WithLookup(lookup func(string) (string, bool)) *Loader {
	l.lookup = lookup
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Config file (if path is not empty)
// 3. Environment variables (FUND_*)
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config file", slog.String("path", path))
		config = fileConfig
	}

	if err := l.applyEnv(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overrides scalar settings from the environment
func (l *Loader) applyEnv(c *Config) error {
	strs := map[string]*string{
		"SERVER_ADDR":                &c.Server.Addr,
		"SERVER_JWT_SECRET":          &c.Server.JWTSecret,
		"STORE_BACKEND":              &c.Store.Backend,
		"STORE_SNAPSHOT_PATH":        &c.Store.SnapshotPath,
		"STORE_MYSQL_DSN":            &c.Store.MySQLDSN,
		"STORE_REDIS_URL":            &c.Store.RedisURL,
		"STORE_REDIS_PREFIX":         &c.Store.RedisPrefix,
		"EVENTS_REDIS_URL":           &c.Events.RedisURL,
		"EVENTS_REDIS_STREAM":        &c.Events.RedisStream,
		"EVENTS_NATS_URL":            &c.Events.NATSURL,
		"EVENTS_NATS_SUBJECT_PREFIX": &c.Events.NATSSubjectPrefix,
		"FUND_AUTHORITY":             &c.Fund.Authority,
		"FUND_VAULT_ACCOUNT":         &c.Fund.VaultAccount,
		"LOG_LEVEL":                  &c.Log.Level,
		"LOG_FORMAT":                 &c.Log.Format,
	}
	for name, dst := range strs {
		if v, ok := l.lookup(EnvPrefix + name); ok {
			*dst = v
			l.logger.Debug("Config override from env", slog.String("var", EnvPrefix+name))
		}
	}

	if v, ok := l.lookup(EnvPrefix + "SERVER_CORS_ORIGINS"); ok {
		c.Server.CORSOrigins = splitList(v)
	}
	if v, ok := l.lookup(EnvPrefix + "SERVER_SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSERVER_SHUTDOWN_TIMEOUT: %w", EnvPrefix, err)
		}
		c.Server.ShutdownTimeout = d
	}
	return nil
}

// SlogLevel maps the configured level name, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
