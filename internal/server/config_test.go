package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jvelker/training-roi/pkg/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("Address = %q, expected %q", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Errorf("UploadSizeBytes = %d, expected %d", cfg.UploadSizeBytes(), constants.DefaultMaxUploadSizeBytes)
	}
	if cfg.History.Backend != HistoryBackendMemory {
		t.Errorf("History.Backend = %q, expected memory", cfg.History.Backend)
	}
	if cfg.History.Limit != constants.DefaultHistoryLimit {
		t.Errorf("History.Limit = %d, expected %d", cfg.History.Limit, constants.DefaultHistoryLimit)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig should default for a missing file, got error: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("Address = %q, expected default", cfg.Address)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := `
address: ":9090"
maxUploadSize: 1M
logging:
  level: debug
history:
  backend: redis
  redisAddr: localhost:6379
  limit: 25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Address != ":9090" {
		t.Errorf("Address = %q, expected :9090", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 1024*1024 {
		t.Errorf("UploadSizeBytes = %d, expected 1M", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
	if cfg.History.Backend != HistoryBackendRedis {
		t.Errorf("History.Backend = %q, expected redis", cfg.History.Backend)
	}
	if cfg.History.Limit != 25 {
		t.Errorf("History.Limit = %d, expected 25", cfg.History.Limit)
	}
}

func TestLoadConfigRedisWithoutAddr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "history:\n  backend: redis\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for redis backend without redisAddr")
	}
}

func TestLoadConfigUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "history:\n  backend: cassandra\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for an unsupported backend")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"256", 256, false},
		{"256B", 256, false},
		{"256K", 256 * 1024, false},
		{"10M", 10 * 1024 * 1024, false},
		{"1G", 1024 * 1024 * 1024, false},
		{" 2 MB ", 2 * 1024 * 1024, false},
		{"", constants.DefaultMaxUploadSizeBytes, false},
		{"abc", 0, true},
		{"10T", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSize(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSize(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}
