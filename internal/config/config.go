package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	jp "github.com/reoring/jsonparser"
)

type Config struct {
	// HTTP server
	Port            string
	ShutdownTimeout time.Duration

	// Reader limits
	MaxDepth      int
	MaxBytes      int64
	DuplicateKeys string // ignore | warn | error

	// Output
	Lang     string // en | ja
	Paths    string // pointer | jsonpath
	LogLevel string
}

func Load() Config {
	cfg := Config{
		Port:            envOr("JSONPARSER_PORT", "8090"),
		ShutdownTimeout: envDuration("JSONPARSER_SHUTDOWN_TIMEOUT", 10*time.Second),

		MaxDepth:      envInt("JSONPARSER_MAX_DEPTH", 64),
		MaxBytes:      envInt64("JSONPARSER_MAX_BYTES", 1048576), // 1MiB
		DuplicateKeys: envOr("JSONPARSER_DUPLICATE_KEYS", "error"),

		Lang:     envOr("JSONPARSER_LANG", "en"),
		Paths:    envOr("JSONPARSER_PATHS", "pointer"),
		LogLevel: envOr("JSONPARSER_LOG_LEVEL", "info"),
	}

	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 64
	}
	if cfg.MaxBytes < 0 {
		cfg.MaxBytes = 1048576
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := severity(c.DuplicateKeys); err != nil {
		return err
	}
	switch c.Paths {
	case "pointer", "jsonpath":
	default:
		return fmt.Errorf("JSONPARSER_PATHS must be pointer or jsonpath, got %q", c.Paths)
	}
	switch c.Lang {
	case "en", "ja":
	default:
		return fmt.Errorf("JSONPARSER_LANG must be en or ja, got %q", c.Lang)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Port == "" {
		return fmt.Errorf("JSONPARSER_PORT is required")
	}
	return nil
}

// ParseOpt converts the reader limits into library options. Call Validate
// first; an unknown duplicate key policy falls back to error.
func (c Config) ParseOpt() jp.ParseOpt {
	sev, err := severity(c.DuplicateKeys)
	if err != nil {
		sev = jp.Error
	}
	return jp.ParseOpt{
		Strictness: jp.Strictness{OnDuplicateKey: sev},
		MaxDepth:   c.MaxDepth,
		MaxBytes:   c.MaxBytes,
	}
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("JSONPARSER_LOG_LEVEL: %w", err)
	}
	return l, nil
}

func severity(s string) (jp.Severity, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return jp.Ignore, nil
	case "warn":
		return jp.Warn, nil
	case "error":
		return jp.Error, nil
	default:
		return 0, fmt.Errorf("JSONPARSER_DUPLICATE_KEYS must be ignore, warn or error, got %q", s)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
