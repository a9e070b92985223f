package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	OutDir string `env:"CMD_TEST_OUT_DIR" envDefault:"dist"`
	URL    string `env:"CMD_TEST_URL" envDefault:"https://example.test/entities.json"`
}

func TestParseConfigFromArgsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CHARMAP_CMD_TEST_OUT_DIR", "env-dir")
	t.Setenv("CHARMAP_CMD_TEST_URL", "https://env.test/entities.json")

	cfg := testConfig{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	fs.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "output dir")
	fs.StringVar(&cfg.URL, "entities-url", cfg.URL, "entities url")

	if err := ParseArgs(fs, []string{"-out-dir", "flag-dir"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.OutDir != "flag-dir" {
		t.Fatalf("expected flag value for out dir, got %q", cfg.OutDir)
	}
	if cfg.URL != "https://env.test/entities.json" {
		t.Fatalf("expected env url, got %q", cfg.URL)
	}
}

func TestParseConfigFromArgsDefaults(t *testing.T) {
	cfg := testConfig{}
	fs := flag.NewFlagSet("defaults", flag.ContinueOnError)
	fs.StringVar(&cfg.OutDir, "out-dir", "", "output dir")
	if err := ParseConfigFromArgs(&cfg, fs, nil); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.OutDir != "dist" {
		t.Fatalf("expected default out dir, got %q", cfg.OutDir)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestRunWithTelemetryAndOptionsPropagatesError(t *testing.T) {
	t.Setenv("CHARMAP_OTEL_ENDPOINT", "")
	want := errors.New("boom")
	called := false
	err := RunWithTelemetryAndOptions(context.Background(), ServiceGenerator, RunOptions{}, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}

func TestRunWithTelemetryAndOptionsRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetryAndOptions(context.Background(), "", RunOptions{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetryAndOptions(context.Background(), ServiceGenerator, RunOptions{}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}
