// Package logging builds the slog handler used for diagnostics on stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

type (
	Format string
	Level  string
)

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"

	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// New returns a logger writing to w. verbose forces debug level.
func New(w io.Writer, level, format string, verbose bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	logFmt, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return slog.New(NewHandler(w, lvl, logFmt)), nil
}

// NewHandler picks the handler for logFmt.
func NewHandler(w io.Writer, lvl slog.Level, logFmt Format) slog.Handler {
	switch logFmt {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	default:
		//nolint:gosec // G115: slog levels are small.
		charmLvl := charmlog.Level(int32(lvl))

		logger := charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmLvl,
			Formatter: charmlog.TextFormatter,
			Prefix:    "browserselector",
		})
		logger.SetColorProfile(termenv.ColorProfile())
		return logger
	}
}

// ParseLevel maps a case-insensitive level name to its slog level.
// "warning" is accepted as an alias for warn.
func ParseLevel(level string) (slog.Level, error) {
	switch Level(strings.ToLower(level)) {
	case LevelError:
		return slog.LevelError, nil
	case LevelWarn, "warning":
		return slog.LevelWarn, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelDebug:
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownLogLevel, level)
}

// ParseFormat validates a case-insensitive log format name.
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatJSON, FormatLogfmt, FormatText}, logFmt) {
		return logFmt, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownLogFormat, format)
}
