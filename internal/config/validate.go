package config

import (
	"fmt"
	"time"

	"github.com/bernoussama/git-ai/internal/checkpoint"
)

var validLevels = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}
var validFormats = map[string]struct{}{"text": {}, "json": {}}

func Validate(cfg Config) error {
	if cfg.Version != SchemaVersion {
		return fmt.Errorf("CFG_VALIDATE: unsupported schema version %d", cfg.Version)
	}
	if cfg.Tool.Path == "" {
		return fmt.Errorf("CFG_VALIDATE: tool.path is required")
	}
	if _, err := checkpoint.ParseToolVersion(cfg.Tool.MinVersion); err != nil {
		return fmt.Errorf("CFG_VALIDATE: tool.min_version: %w", err)
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"tool.probe_timeout", cfg.Tool.ProbeTimeout},
		{"tool.checkpoint_timeout", cfg.Tool.CheckpointTimeout},
	} {
		d, err := time.ParseDuration(field.value)
		if err != nil {
			return fmt.Errorf("CFG_VALIDATE: %s: %w", field.name, err)
		}
		if d <= 0 {
			return fmt.Errorf("CFG_VALIDATE: %s must be positive", field.name)
		}
	}
	if _, ok := validLevels[cfg.Logging.Level]; !ok {
		return fmt.Errorf("CFG_VALIDATE: unknown logging.level %q", cfg.Logging.Level)
	}
	if _, ok := validFormats[cfg.Logging.Format]; !ok {
		return fmt.Errorf("CFG_VALIDATE: unknown logging.format %q", cfg.Logging.Format)
	}
	if cfg.Attribution.MaxStackFrames < 0 {
		return fmt.Errorf("CFG_VALIDATE: attribution.max_stack_frames must not be negative")
	}
	for i, sig := range cfg.Attribution.Signatures {
		if sig.Name == "" {
			return fmt.Errorf("CFG_VALIDATE: attribution.signatures[%d] missing name", i)
		}
		if len(sig.PackagePrefixes) == 0 && len(sig.TypeNameFragments) == 0 {
			return fmt.Errorf("CFG_VALIDATE: signature %q has no patterns", sig.Name)
		}
	}
	return nil
}

// ProbeTimeoutDuration returns the parsed probe deadline. Call after Validate.
func (t ToolConfig) ProbeTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(t.ProbeTimeout)
	return d
}

// CheckpointTimeoutDuration returns the parsed checkpoint deadline.
func (t ToolConfig) CheckpointTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(t.CheckpointTimeout)
	return d
}
