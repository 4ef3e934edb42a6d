package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr           string
	DBPath         string
	UploadsDir     string
	TokenSecret    string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
}

func Load() Config {
	addr := envString("INKWELL_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}
	return Config{
		Addr:           addr,
		DBPath:         envString("INKWELL_DB", "data/badger"),
		UploadsDir:     envString("INKWELL_UPLOADS", "uploads"),
		TokenSecret:    envString("INKWELL_TOKEN_SECRET", "dev-token-secret"),
		TokenTTL:       envDuration("INKWELL_TOKEN_TTL", 24*time.Hour),
		RequestTimeout: envDuration("INKWELL_REQUEST_TIMEOUT", 15*time.Second),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
