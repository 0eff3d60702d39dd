// Package logging configures the process-wide slog logger backed by zerolog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const DefaultLogLevel = slog.LevelInfo

// ParseLogLevel converts a level name to a slog.Level. Unknown names yield
// DefaultLogLevel and an error.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch {
	case strings.EqualFold(levelStr, slog.LevelDebug.String()):
		return slog.LevelDebug, nil
	case strings.EqualFold(levelStr, slog.LevelInfo.String()):
		return slog.LevelInfo, nil
	case strings.EqualFold(levelStr, slog.LevelWarn.String()):
		return slog.LevelWarn, nil
	case strings.EqualFold(levelStr, slog.LevelError.String()):
		return slog.LevelError, nil
	}

	return DefaultLogLevel, fmt.Errorf("unknown level string: '%s', defaulting to %s", levelStr, DefaultLogLevel)
}

// New returns a slog logger writing to w through zerolog, as JSON lines when
// json is set and in console format otherwise.
func New(w io.Writer, level slog.Level, json bool) *slog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	//nolint
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var zl zerolog.Logger
	if json {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.StampMicro,
		})
	}
	zl = zl.With().Timestamp().Stack().Logger()

	return slog.New(
		slogzerolog.Option{
			Level:  level,
			Logger: &zl,
		}.NewZerologHandler(),
	)
}

// ConfigureLogger installs New(w, level, json) as the slog default.
func ConfigureLogger(w io.Writer, level slog.Level, json bool) {
	slog.SetDefault(New(w, level, json))
}
