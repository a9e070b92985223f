// Package logging configures the zerolog logger shared by commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/charmap/internal/platform/config"
	"github.com/rs/zerolog"
)

// Environment variables read by New.
const (
	EnvLevel   = config.EnvPrefix + "LOG_LEVEL"
	EnvNoColor = config.EnvPrefix + "LOG_NOCOLOR"
	EnvJSON    = config.EnvPrefix + "LOG_JSON"
)

// Settings holds logger options loaded from the environment.
type Settings struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor bool   `env:"LOG_NOCOLOR"`
	JSON    bool   `env:"LOG_JSON"`
}

// New returns a console logger on w tagged with app. Level, color and JSON
// output are taken from the environment; unparseable settings fall back to
// an info-level console logger and are reported through it.
func New(w io.Writer, app string) zerolog.Logger {
	var settings Settings
	envErr := config.ParseEnv(&settings)
	if envErr != nil {
		settings = Settings{Level: "info"}
	}
	logger := NewWithSettings(w, app, settings)
	if envErr != nil {
		logger.Warn().Err(envErr).Msg("invalid logging settings, using defaults")
	}
	return logger
}

// NewWithSettings builds the logger described by settings.
func NewWithSettings(w io.Writer, app string, settings Settings) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, ok := ParseLevel(settings.Level)
	if !ok {
		level = zerolog.InfoLevel
	}

	out := w
	if !settings.JSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    settings.NoColor,
		}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("app", app).Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level. Besides the names
// zerolog knows, "warning" and "off" are accepted.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch name := strings.ToLower(strings.TrimSpace(raw)); name {
	case "":
		return zerolog.InfoLevel, false
	case "warning":
		return zerolog.WarnLevel, true
	case "off":
		return zerolog.Disabled, true
	default:
		level, err := zerolog.ParseLevel(name)
		if err != nil {
			return zerolog.InfoLevel, false
		}
		return level, true
	}
}
