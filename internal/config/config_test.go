package config

import (
	"os"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "fracfocus-mcp" {
		t.Errorf("Expected default server name to be 'fracfocus-mcp', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 50*1024*1024 {
		t.Errorf("Expected default max file size to be 50MB, got %d", cfg.MaxFileSize)
	}

	// The disclosure directory defaults to the current working directory
	currentDir, _ := os.Getwd()
	if cfg.DisclosureDirectory != currentDir {
		t.Errorf("Expected default disclosure directory to be '%s', got '%s'", currentDir, cfg.DisclosureDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "fracfocus-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid default config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "valid explicit config",
			config: &Config{
				DisclosureDirectory: tempDir,
				LogLevel:            "debug",
				MaxFileSize:         1024,
			},
			wantErr: false,
		},
		{
			name: "empty disclosure directory",
			config: &Config{
				DisclosureDirectory: "",
				LogLevel:            "info",
				MaxFileSize:         1024,
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &Config{
				DisclosureDirectory: tempDir,
				LogLevel:            "verbose",
				MaxFileSize:         1024,
			},
			wantErr: true,
		},
		{
			name: "zero max file size",
			config: &Config{
				DisclosureDirectory: tempDir,
				LogLevel:            "info",
				MaxFileSize:         0,
			},
			wantErr: true,
		},
		{
			name: "negative max file size",
			config: &Config{
				DisclosureDirectory: tempDir,
				LogLevel:            "info",
				MaxFileSize:         -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesMissingDirectory(t *testing.T) {
	tempParent, err := os.MkdirTemp("", "fracfocus-config-parent-*")
	if err != nil {
		t.Fatalf("Failed to create temp parent dir: %v", err)
	}
	defer os.RemoveAll(tempParent)

	missingDir := tempParent + string(os.PathSeparator) + "disclosures"

	cfg := &Config{
		DisclosureDirectory: missingDir,
		LogLevel:            "info",
		MaxFileSize:         1024,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() unexpected error = %v", err)
	}

	info, err := os.Stat(missingDir)
	if err != nil {
		t.Fatalf("Expected disclosure directory to be created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", missingDir)
	}
}

func TestConfigValidateLogLevels(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "fracfocus-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	validLevels := []string{"debug", "info", "warn", "error"}
	invalidLevels := []string{"DEBUG", "INFO", "trace", "fatal", ""}

	for _, level := range validLevels {
		t.Run("valid_"+level, func(t *testing.T) {
			cfg := &Config{
				DisclosureDirectory: tempDir,
				LogLevel:            level,
				MaxFileSize:         1024,
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Config.Validate() should accept log level '%s', got error: %v", level, err)
			}
		})
	}

	for _, level := range invalidLevels {
		t.Run("invalid_"+level, func(t *testing.T) {
			cfg := &Config{
				DisclosureDirectory: tempDir,
				LogLevel:            level,
				MaxFileSize:         1024,
			}
			if err := cfg.Validate(); err == nil {
				t.Errorf("Config.Validate() should reject log level '%s'", level)
			}
		})
	}
}

func TestConfigIsDebug(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     bool
	}{
		{name: "debug level", logLevel: "debug", want: true},
		{name: "info level", logLevel: "info", want: false},
		{name: "warn level", logLevel: "warn", want: false},
		{name: "error level", logLevel: "error", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			if got := cfg.IsDebug(); got != tt.want {
				t.Errorf("Config.IsDebug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		DisclosureDirectory: "/home/user/disclosures",
		LogLevel:            "debug",
		MaxFileSize:         1024,
	}

	result := cfg.String()

	expectedSubstrings := []string{
		"DisclosureDirectory: /home/user/disclosures",
		"LogLevel: debug",
		"MaxFileSize: 1024",
	}

	for _, substr := range expectedSubstrings {
		if !strings.Contains(result, substr) {
			t.Errorf("Config.String() result doesn't contain expected substring: %s\nGot: %s", substr, result)
		}
	}
}
