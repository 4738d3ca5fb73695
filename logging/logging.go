// Package logging installs the process-wide slog logger. Output is colored
// with tint on a terminal and plain otherwise, so container logs stay free of
// escape codes.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// TimeFormat keeps milliseconds, since request durations are logged in ms.
const TimeFormat = "15:04:05.000"

// Setup installs a logger on stderr at the named level (LOG_LEVEL).
func Setup(level string) {
	slog.SetDefault(New(os.Stderr, ParseLevel(level)))
}

// New returns a tint logger writing to w. Source locations are added at
// debug level only.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  TimeFormat,
		AddSource:   level <= slog.LevelDebug,
		NoColor:     !isTerminal(w),
		ReplaceAttr: highlightErrors,
	}))
}

// highlightErrors prints "error" attributes in red.
func highlightErrors(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if _, ok := a.Value.Any().(error); ok {
			return tint.Attr(9, a)
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
