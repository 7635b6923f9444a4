package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				LogLevel:  "debug",
				LogFormat: "json",
				Verify:    &falseVal,
				Basins:    &trueVal,
			},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: Config{LogLevel: "debug", LogFormat: "json", Verify: false, Basins: true},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				LogLevel: "debug",
				Basins:   &trueVal,
			},
			changed:  map[string]bool{"log-level": true, "basins": true},
			initial:  Config{LogLevel: "error", LogFormat: "console"},
			expected: Config{LogLevel: "error", LogFormat: "console"},
		},
		{
			name:       "empty file keeps defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		`log_level = "warn"`,
		`log_format = "json"`,
		`verify = false`,
		`basins = true`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}
	if fc.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", fc.LogLevel)
	}
	if fc.LogFormat != "json" {
		t.Errorf("LogFormat = %v, want json", fc.LogFormat)
	}
	if fc.Verify == nil || *fc.Verify {
		t.Errorf("Verify = %v, want false", fc.Verify)
	}
	if fc.Basins == nil || !*fc.Basins {
		t.Errorf("Basins = %v, want true", fc.Basins)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig(missing) expected error but got nil")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("log_level = [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig(bad) expected error but got nil")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if FileExists(path) {
		t.Errorf("FileExists(%q) = true before creation", path)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false after creation", path)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".rainwater", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %v, want %v", got, want)
	}
}
