package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadToolConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := loadToolConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != defaultToolConfig() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadToolConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
version = 2
output = "RAW"
skip_unknown = true
buffer_size = 4096
`)

	cfg, err := loadToolConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Version != 2 {
		t.Fatalf("unexpected version: %d", cfg.Version)
	}
	if cfg.Output != outputRaw {
		t.Fatalf("unexpected output: %q", cfg.Output)
	}
	if !cfg.SkipUnknown {
		t.Fatalf("expected skip_unknown enabled")
	}
	if cfg.BufferSize != 4096 {
		t.Fatalf("unexpected buffer size: %d", cfg.BufferSize)
	}
}

func TestLoadToolConfigBadVersion(t *testing.T) {
	path := writeConfig(t, "version = 300\n")
	if _, err := loadToolConfig(path); err == nil {
		t.Fatalf("expected version range error")
	}
}

func TestLoadToolConfigBadOutput(t *testing.T) {
	path := writeConfig(t, `output = "yaml"`+"\n")
	if _, err := loadToolConfig(path); err == nil {
		t.Fatalf("expected output format error")
	}
}

func TestLoadToolConfigBadBufferSize(t *testing.T) {
	path := writeConfig(t, "buffer_size = -1\n")
	if _, err := loadToolConfig(path); err == nil {
		t.Fatalf("expected buffer size error")
	}
}

func TestLoadToolConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	if _, err := loadToolConfig(path); err == nil {
		t.Fatalf("expected load error")
	}
}
