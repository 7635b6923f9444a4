package cliconfig

import (
	"errors"
	"testing"

	"github.com/bft-labs/rainwater/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %v, want console", cfg.LogFormat)
	}
	if !cfg.Verify {
		t.Error("Verify = false, want true")
	}
	if cfg.Basins {
		t.Error("Basins = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		config        Config
		wantErr       bool
		wantLogLevel  string
		wantLogFormat string
	}{
		{
			name:          "valid config",
			config:        Config{LogLevel: "debug", LogFormat: "json"},
			wantLogLevel:  "debug",
			wantLogFormat: "json",
		},
		{
			name:          "normalizes case and whitespace",
			config:        Config{LogLevel: " WARN ", LogFormat: "Console"},
			wantLogLevel:  "warn",
			wantLogFormat: "console",
		},
		{
			name:    "unknown log level",
			config:  Config{LogLevel: "trace-everything", LogFormat: "console"},
			wantErr: true,
		},
		{
			name:    "empty log level",
			config:  Config{LogFormat: "console"},
			wantErr: true,
		},
		{
			name:    "unknown log format",
			config:  Config{LogLevel: "info", LogFormat: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want %v", err, domain.ErrInvalidConfig)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if cfg.LogLevel != tt.wantLogLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.wantLogLevel)
			}
			if cfg.LogFormat != tt.wantLogFormat {
				t.Errorf("LogFormat = %v, want %v", cfg.LogFormat, tt.wantLogFormat)
			}
		})
	}
}
