// Package generator runs the charmap data pipeline: fetch the named
// character reference map, merge it with the codepoint catalog and the emoji
// dataset, and write the generated artifacts.
package generator

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/louisbranch/charmap/internal/charset"
	"github.com/louisbranch/charmap/internal/charset/lookup"
	"github.com/louisbranch/charmap/internal/export"
	platformcmd "github.com/louisbranch/charmap/internal/platform/cmd"
	"github.com/louisbranch/charmap/internal/platform/otel"
	"github.com/louisbranch/charmap/internal/sources"
	"github.com/louisbranch/charmap/internal/sources/ucd"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Config holds configuration for the generator. Environment variables carry
// the CHARMAP_ prefix; flags override them.
type Config struct {
	EntitiesURL    string `env:"ENTITIES_URL" envDefault:"https://html.spec.whatwg.org/entities.json"`
	CodepointsPath string `env:"CODEPOINTS_PATH" envDefault:"data/codepoints.json"`
	UCDDir         string `env:"UCD_DIR"`
	EmojiPath      string `env:"EMOJI_PATH" envDefault:"data/emojibase/data.json"`
	GroupsPath     string `env:"GROUPS_PATH" envDefault:"data/emojibase/groups.json"`
	EntityTagsPath string `env:"ENTITY_TAGS_PATH"`
	OutDir         string `env:"OUT_DIR" envDefault:"dist"`
	SQLitePath     string `env:"OUT_SQLITE"`
}

// Deps are the collaborators Run needs beyond Config.
type Deps struct {
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Result summarises one generator run.
type Result struct {
	Records    int
	Duplicates []string
}

// ParseConfig loads env defaults and then parses CLI flags into a Config.
// Flags only assign when given, so unset flags leave env values in place.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if fs != nil {
		bindFlags(fs, &cfg)
	}
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	stringFlag(fs, &cfg.EntitiesURL, "entities-url", "named character reference JSON endpoint")
	stringFlag(fs, &cfg.CodepointsPath, "codepoints", "codepoint catalog JSON ({code, name, block} array)")
	stringFlag(fs, &cfg.UCDDir, "ucd-dir", "directory with UnicodeData.txt and Blocks.txt (overrides -codepoints)")
	stringFlag(fs, &cfg.EmojiPath, "emoji", "emoji dataset JSON (emojibase data.json)")
	stringFlag(fs, &cfg.GroupsPath, "groups", "emoji group names JSON (emojibase meta/groups.json)")
	stringFlag(fs, &cfg.EntityTagsPath, "entity-tags", "entity tag table YAML (defaults to the embedded table)")
	stringFlag(fs, &cfg.OutDir, "out-dir", "output directory for generated files")
	stringFlag(fs, &cfg.SQLitePath, "out-sqlite", "optional SQLite database to write records into")
}

func stringFlag(fs *flag.FlagSet, target *string, name, usage string) {
	fs.Func(name, usage, func(value string) error {
		*target = value
		return nil
	})
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.EntitiesURL) == "" {
		return errors.New("entities-url is required")
	}
	if strings.TrimSpace(c.CodepointsPath) == "" && strings.TrimSpace(c.UCDDir) == "" {
		return errors.New("codepoints or ucd-dir is required")
	}
	if strings.TrimSpace(c.EmojiPath) == "" {
		return errors.New("emoji is required")
	}
	if strings.TrimSpace(c.GroupsPath) == "" {
		return errors.New("groups is required")
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return errors.New("out-dir is required")
	}
	return nil
}

// Run executes the generator with default collaborators.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	_, err := RunWithDeps(ctx, cfg, Deps{Logger: zerolog.Nop()}, out)
	return err
}

// RunWithDeps executes the pipeline. Any stage error aborts the run before
// artifacts are written.
func RunWithDeps(ctx context.Context, cfg Config, deps Deps, out io.Writer) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	logger := deps.Logger

	ctx, span := otel.Tracer("charmap/generator").Start(ctx, "generate")
	defer span.End()

	var in inputs
	if err := stage(ctx, logger, "load", func(ctx context.Context) error {
		var err error
		in, err = loadInputs(cfg)
		return err
	}); err != nil {
		return Result{}, failSpan(span, err)
	}

	var raw []charset.RawEntity
	if err := stage(ctx, logger, "fetch", func(ctx context.Context) error {
		body, err := sources.FetchEntities(ctx, deps.HTTPClient, cfg.EntitiesURL)
		if err != nil {
			return err
		}
		raw, err = sources.DecodeEntities(body)
		return err
	}); err != nil {
		return Result{}, failSpan(span, err)
	}

	var records []charset.Record
	if err := stage(ctx, logger, "unify", func(ctx context.Context) error {
		entities := charset.NormalizeEntities(raw, in.tags)
		records = charset.Unify(charset.Sources{
			Codepoints: in.catalog.Entries,
			Emojis:     in.emojis,
			Entities:   entities,
			Groups:     in.groups,
		})
		logger.Debug().Int("entities", len(entities)).Int("records", len(records)).Msg("unified")
		return nil
	}); err != nil {
		return Result{}, failSpan(span, err)
	}

	duplicates := charset.Healthcheck(logger, records)

	if err := stage(ctx, logger, "write", func(ctx context.Context) error {
		return export.WriteArtifacts(ctx, export.Artifacts{
			Dir:        cfg.OutDir,
			Codepoints: in.catalog.Raw,
			Records:    records,
			SQLitePath: strings.TrimSpace(cfg.SQLitePath),
		})
	}); err != nil {
		return Result{}, failSpan(span, err)
	}

	span.SetAttributes(
		attribute.Int("charmap.records", len(records)),
		attribute.Int("charmap.duplicates", len(duplicates)),
	)
	result := Result{Records: len(records), Duplicates: duplicates}
	_, err := fmt.Fprintf(out, "generated %d record(s) into %s (%d duplicate symbol(s))\n", result.Records, cfg.OutDir, len(duplicates))
	return result, err
}

type inputs struct {
	catalog sources.Catalog
	emojis  []charset.EmojiEntry
	groups  charset.GroupNames
	tags    charset.TagTable
}

func loadInputs(cfg Config) (inputs, error) {
	var in inputs
	var err error
	if dir := strings.TrimSpace(cfg.UCDDir); dir != "" {
		var entries []*charset.CodepointEntry
		if entries, err = ucd.LoadDir(dir); err == nil {
			in.catalog, err = sources.CatalogOf(entries)
		}
	} else {
		in.catalog, err = sources.LoadCodepoints(cfg.CodepointsPath)
	}
	if err != nil {
		return inputs{}, fmt.Errorf("load codepoints: %w", err)
	}
	if in.emojis, err = sources.LoadEmojis(cfg.EmojiPath); err != nil {
		return inputs{}, fmt.Errorf("load emojis: %w", err)
	}
	if in.groups, err = sources.LoadGroups(cfg.GroupsPath); err != nil {
		return inputs{}, fmt.Errorf("load groups: %w", err)
	}
	if in.tags, err = lookup.Load(cfg.EntityTagsPath); err != nil {
		return inputs{}, fmt.Errorf("load entity tags: %w", err)
	}
	return in, nil
}

func stage(ctx context.Context, logger zerolog.Logger, name string, fn func(context.Context) error) error {
	ctx, span := otel.Tracer("charmap/generator").Start(ctx, name)
	defer span.End()
	if err := fn(ctx); err != nil {
		return failSpan(span, err)
	}
	logger.Debug().Str("stage", name).Msg("stage complete")
	return nil
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
