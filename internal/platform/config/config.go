package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr     string
	LogLevel string

	// BankDirBackend selects the bank directory implementation:
	// "memory" (default, compiled-in seed) or "postgres".
	BankDirBackend string
	PostgresDSN    string

	Redis RedisConfig
}

// RedisConfig configures the optional read-through directory cache. An empty
// URL disables Redis entirely.
type RedisConfig struct {
	URL          string
	CacheTTL     time.Duration
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean.
func FromEnv() Server {
	return Server{
		Addr:           envOr("FINCODE_ADDR", ":8080"),
		LogLevel:       envOr("FINCODE_LOG_LEVEL", "info"),
		BankDirBackend: envOr("FINCODE_BANKDIR", "memory"),
		PostgresDSN:    os.Getenv("FINCODE_POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("FINCODE_REDIS_URL"),
			CacheTTL:     envDurationOr("FINCODE_REDIS_CACHE_TTL", 15*time.Minute),
			PoolSize:     envIntOr("FINCODE_REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("FINCODE_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("FINCODE_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("FINCODE_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("FINCODE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
