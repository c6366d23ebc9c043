// README: Config loader with env defaults for HTTP, cache, generation, and logging.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		GeminiKey string
	}
	Cache struct {
		Capacity int
	}
	Generation struct {
		Timeout time.Duration
	}
	Log struct {
		Level  string
		Pretty bool
	}
	Limits struct {
		File string
	}
	Environment string
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("VOYAGO_HTTP_ADDR", ":8080")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.Cache.Capacity = envOrDefaultInt("VOYAGO_CACHE_CAPACITY", 100)
	cfg.Generation.Timeout = envOrDefaultDuration("VOYAGO_GEN_TIMEOUT", 60*time.Second)
	cfg.Log.Level = envOrDefault("VOYAGO_LOG_LEVEL", "info")
	cfg.Log.Pretty = envOrDefaultBool("VOYAGO_LOG_PRETTY", false)
	cfg.Limits.File = os.Getenv("VOYAGO_LIMITS_FILE")
	cfg.Environment = envOrDefault("VOYAGO_ENV", "development")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
