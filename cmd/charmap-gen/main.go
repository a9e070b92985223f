// Command charmap-gen generates the merged character, entity and emoji
// dataset (data.json, data.csv and codepoints.json).
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/charmap/internal/platform/cmd"
	"github.com/louisbranch/charmap/internal/platform/config"
	"github.com/louisbranch/charmap/internal/platform/logging"
	"github.com/louisbranch/charmap/internal/sources"
	"github.com/louisbranch/charmap/internal/tools/generator"
)

func main() {
	cfg, err := generator.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, platformcmd.ServiceGenerator)
	deps := generator.Deps{HTTPClient: sources.NewHTTPClient(), Logger: logger}
	options := platformcmd.RunOptions{Logger: logger}

	err = platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceGenerator, options, func(ctx context.Context) error {
		_, err := generator.RunWithDeps(ctx, cfg, deps, os.Stdout)
		return err
	})
	stop()
	config.ExitOnError(err)
}
