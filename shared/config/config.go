package config

import (
	"os"
	"strings"
)

const (
	defaultAddr      = ":8080"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultGinMode   = "release"
)

// Config holds the settings read from the environment at startup.
type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string
	GinMode   string
}

// Load reads BLOGDESK_ADDR, BLOGDESK_LOG_LEVEL, BLOGDESK_LOG_FORMAT and GIN_MODE,
// falling back to defaults for anything unset or blank.
func Load() *Config {
	return &Config{
		Addr:      getEnv("BLOGDESK_ADDR", defaultAddr),
		LogLevel:  strings.ToLower(getEnv("BLOGDESK_LOG_LEVEL", defaultLogLevel)),
		LogFormat: strings.ToLower(getEnv("BLOGDESK_LOG_FORMAT", defaultLogFormat)),
		GinMode:   getEnv("GIN_MODE", defaultGinMode),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
