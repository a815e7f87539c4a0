package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/mortgage-points/pkg/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address %q, got %q", constants.DefaultServerAddress, cfg.Address)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Errorf("expected default upload size %d, got %d", constants.DefaultMaxUploadSizeBytes, cfg.UploadSizeBytes())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address for missing file, got %q", cfg.Address)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := `---
address: ":9090"
maxUploadSize: 1M
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("expected address :9090, got %q", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 1024*1024 {
		t.Errorf("expected upload size 1M, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("expected logging format console, got %q", cfg.Logging.Format)
	}
}

func TestLoadConfigZeroSizeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("maxUploadSize: \"0\"\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Errorf("expected default upload size for zero, got %d", cfg.UploadSizeBytes())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Malformed YAML",
			content: "address: [broken",
		},
		{
			name:    "Unsupported size unit",
			content: "maxUploadSize: 10Q\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "server.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig() expected error but got none")
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int64
		wantError bool
	}{
		{name: "Bare bytes", value: "123", expected: 123},
		{name: "Byte suffix", value: "64B", expected: 64},
		{name: "Kilobytes short", value: "256K", expected: 256 * 1024},
		{name: "Kilobytes long", value: "2KB", expected: 2 * 1024},
		{name: "Megabytes", value: "10M", expected: 10 * 1024 * 1024},
		{name: "Gigabytes", value: "1G", expected: 1024 * 1024 * 1024},
		{name: "Lowercase unit", value: "4m", expected: 4 * 1024 * 1024},
		{name: "Surrounding whitespace", value: " 8K ", expected: 8 * 1024},
		{name: "Empty falls back to default", value: "", expected: constants.DefaultMaxUploadSizeBytes},
		{name: "No digits", value: "abc", wantError: true},
		{name: "Unit only", value: "K", wantError: true},
		{name: "Unsupported unit", value: "10Q", wantError: true},
		{name: "Negative", value: "-5", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := ParseSize(tt.value)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseSize(%q) expected error but got none", tt.value)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseSize(%q) error = %v", tt.value, err)
				return
			}
			if size != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.value, size, tt.expected)
			}
		})
	}
}

func TestSetUploadSizeBytes(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	cfg.SetUploadSizeBytes(2048)
	if cfg.UploadSizeBytes() != 2048 {
		t.Errorf("expected upload size 2048, got %d", cfg.UploadSizeBytes())
	}
	if cfg.MaxUploadSize != "2048" {
		t.Errorf("expected MaxUploadSize string 2048, got %q", cfg.MaxUploadSize)
	}

	cfg.SetUploadSizeBytes(0)
	if cfg.UploadSizeBytes() != 2048 {
		t.Errorf("expected zero override to be ignored, got %d", cfg.UploadSizeBytes())
	}
}
