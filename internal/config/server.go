package config

import (
	"os"
	"strconv"
)

// ServerConfig holds settings for the HTTP API, read from the environment.
type ServerConfig struct {
	Addr string

	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64
}

// LoadServer reads the HTTP server settings. A non-empty addr takes
// precedence over IGNOREMERGE_ADDR.
func LoadServer(addr string) ServerConfig {
	cfg := ServerConfig{
		Addr:         addr,
		MaxBodyBytes: envInt64("IGNOREMERGE_MAX_BODY_BYTES", 1<<20), // 1MB
	}
	if cfg.Addr == "" {
		cfg.Addr = envOr("IGNOREMERGE_ADDR", ":8090")
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
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
