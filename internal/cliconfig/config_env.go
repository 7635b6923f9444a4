package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RAINWATER_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv(EnvPrefix+"LOG_FORMAT"), &cfg.LogFormat)
	s.setBoolFromString("verify", os.Getenv(EnvPrefix+"VERIFY"), &cfg.Verify)
	s.setBoolFromString("basins", os.Getenv(EnvPrefix+"BASINS"), &cfg.Basins)
}
