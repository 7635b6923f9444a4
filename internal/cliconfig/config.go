package cliconfig

import (
	"fmt"
	"strings"

	"github.com/bft-labs/rainwater/internal/domain"
	"github.com/bft-labs/rainwater/pkg/log"
)

// EnvPrefix is the prefix of every environment variable read by ApplyEnvConfig.
const EnvPrefix = "RAINWATER_"

// Config holds CLI configuration for rainwater.
type Config struct {
	LogLevel  string
	LogFormat string
	Verify    bool
	Basins    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: log.FormatConsole,
		Verify:    true,
	}
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q (want debug, info, warn or error)", domain.ErrInvalidConfig, c.LogLevel)
	}

	switch c.LogFormat {
	case log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want console or json)", domain.ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
