package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

// Frame output formats for terminal sinks.
const (
	outputHex = "hex"
	outputRaw = "raw"
)

// toolConfig carries the dpctl defaults a config file can override.
type toolConfig struct {
	Version     int
	Output      string
	SkipUnknown bool
	BufferSize  int
}

type fileConfig struct {
	Version     int    `toml:"version"`
	Output      string `toml:"output"`
	SkipUnknown bool   `toml:"skip_unknown"`
	BufferSize  int    `toml:"buffer_size"`
}

func defaultToolConfig() toolConfig {
	return toolConfig{
		Version:    0,
		Output:     outputHex,
		BufferSize: 32 * 1024,
	}
}

func loadToolConfig(path string) (toolConfig, error) {
	cfg := defaultToolConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load dpctl config: %w", err)
	}

	if meta.IsDefined("version") {
		cfg.Version = raw.Version
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("skip_unknown") {
		cfg.SkipUnknown = raw.SkipUnknown
	}
	if meta.IsDefined("buffer_size") {
		cfg.BufferSize = raw.BufferSize
	}

	if err := validateToolConfig(cfg); err != nil {
		return toolConfig{}, err
	}
	return cfg, nil
}

func validateToolConfig(cfg toolConfig) error {
	if cfg.Version < 0 || cfg.Version > math.MaxUint8 {
		return fmt.Errorf("config version %d outside 0..%d", cfg.Version, math.MaxUint8)
	}
	switch cfg.Output {
	case outputHex, outputRaw:
	default:
		return fmt.Errorf("config output %q is not hex or raw", cfg.Output)
	}
	if cfg.BufferSize <= 0 {
		return fmt.Errorf("config buffer_size %d must be positive", cfg.BufferSize)
	}
	return nil
}
