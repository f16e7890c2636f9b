package logging

import (
	"io"
	"strings"
	"time"

	"github.com/bnema/asne/internal/version"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w. The launcher shares the terminal with
// the child, so logging is off unless a level is configured.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok || lvl == zerolog.Disabled {
		return zerolog.Nop()
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "asne").
		Str("version", version.Version).
		Str("session", ulid.Make().String()).
		Logger()
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.Disabled, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.Disabled, false
	}
}
