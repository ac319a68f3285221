package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Config
	}{
		{
			name: "defaults",
			expected: Config{
				Addr:      ":8080",
				LogLevel:  "info",
				LogFormat: "console",
				GinMode:   "release",
			},
		},
		{
			name: "env variables",
			env: map[string]string{
				"BLOGDESK_ADDR":       "127.0.0.1:9000",
				"BLOGDESK_LOG_LEVEL":  "DEBUG",
				"BLOGDESK_LOG_FORMAT": "json",
				"GIN_MODE":            "debug",
			},
			expected: Config{
				Addr:      "127.0.0.1:9000",
				LogLevel:  "debug",
				LogFormat: "json",
				GinMode:   "debug",
			},
		},
		{
			name: "blank values fall back",
			env: map[string]string{
				"BLOGDESK_ADDR": "   ",
			},
			expected: Config{
				Addr:      ":8080",
				LogLevel:  "info",
				LogFormat: "console",
				GinMode:   "release",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"BLOGDESK_ADDR", "BLOGDESK_LOG_LEVEL", "BLOGDESK_LOG_FORMAT", "GIN_MODE"} {
				t.Setenv(key, tt.env[key])
			}

			cfg := Load()
			if *cfg != tt.expected {
				t.Errorf("Load() = %+v, want %+v", *cfg, tt.expected)
			}
		})
	}
}
