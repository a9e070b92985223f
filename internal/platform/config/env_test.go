package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	OutDir string `env:"TEST_OUT_DIR" envDefault:"dist"`
	Limit  int    `env:"TEST_LIMIT" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.OutDir != "dist" || cfg.Limit != 3 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_OUT_DIR", "unprefixed")
	t.Setenv("CHARMAP_TEST_OUT_DIR", "prefixed")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.OutDir != "prefixed" {
		t.Fatalf("expected prefixed value, got %q", cfg.OutDir)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CHARMAP_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
