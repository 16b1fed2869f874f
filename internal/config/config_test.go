package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEnsureWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.toml")
	cfg, err := Ensure(path)
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if cfg.Tool.Path != "git-ai" || cfg.Tool.MinVersion != DefaultMinToolVersion {
		t.Fatalf("unexpected defaults: %+v", cfg.Tool)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file written: %v", err)
	}
	// Second call loads the same document.
	again, err := Ensure(path)
	if err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}
	if !reflect.DeepEqual(again, cfg) {
		t.Fatalf("ensure not idempotent: %+v vs %+v", again, cfg)
	}
}

func TestLoadNormalizesPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.toml")
	doc := "version = 1\n\n[tool]\npath = \"/opt/git-ai/bin/git-ai\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Tool.Path != "/opt/git-ai/bin/git-ai" {
		t.Fatalf("explicit value lost: %+v", cfg.Tool)
	}
	if cfg.Tool.ProbeTimeout != "5s" || cfg.Logging.Level != "info" {
		t.Fatalf("defaults not filled in: %+v", cfg)
	}
	if got := cfg.Tool.ProbeTimeoutDuration(); got != 5*time.Second {
		t.Fatalf("unexpected probe timeout: %v", got)
	}
	if got := cfg.Tool.CheckpointTimeoutDuration(); got != 30*time.Second {
		t.Fatalf("unexpected checkpoint timeout: %v", got)
	}
}

func TestLoadMissingFileReturnsNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestRoundTripWithExtraSignatures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.toml")
	cfg := DefaultConfig()
	cfg.Attribution.Signatures = []SignatureConfig{
		{
			Name:              "Acme Pilot",
			PackagePrefixes:   []string{"com.acme.pilot."},
			TypeNameFragments: []string{"acmepilot"},
		},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Attribution.Signatures) != 1 {
		t.Fatalf("signatures lost: %+v", loaded.Attribution)
	}
	sig := loaded.Attribution.Signatures[0]
	if sig.Name != "Acme Pilot" || sig.PackagePrefixes[0] != "com.acme.pilot." {
		t.Fatalf("unexpected signature: %+v", sig)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		frag   string
	}{
		{name: "bad min version", mutate: func(c *Config) { c.Tool.MinVersion = "1.0" }, frag: "min_version"},
		{name: "bad probe timeout", mutate: func(c *Config) { c.Tool.ProbeTimeout = "soon" }, frag: "probe_timeout"},
		{name: "negative checkpoint timeout", mutate: func(c *Config) { c.Tool.CheckpointTimeout = "-1s" }, frag: "checkpoint_timeout"},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, frag: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, frag: "logging.format"},
		{name: "wrong schema", mutate: func(c *Config) { c.Version = 2 }, frag: "schema"},
		{name: "nameless signature", mutate: func(c *Config) {
			c.Attribution.Signatures = []SignatureConfig{{PackagePrefixes: []string{"x."}}}
		}, frag: "missing name"},
		{name: "patternless signature", mutate: func(c *Config) {
			c.Attribution.Signatures = []SignatureConfig{{Name: "Empty"}}
		}, frag: "no patterns"},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := Validate(cfg)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.frag) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.frag)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := ExpandPath("~/.git-ai/logs")
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if got != filepath.Join(home, ".git-ai", "logs") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if _, err := ExpandPath(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
