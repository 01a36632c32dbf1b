package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// LevelNone disables logging entirely.
const LevelNone = slog.Level(1 << 10)

// ParseLogLevel maps a LOG_LEVEL value to a slog level. Unknown values fall
// back to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "off":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

// InitLogger returns a logger writing to stderr and installs it as the
// slog default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	l := New(os.Stderr, level, environment)
	slog.SetDefault(l)
	return l
}

// New returns a logger writing to w: JSON in prod, colourised tint output
// otherwise. LevelNone discards everything.
func New(w io.Writer, level slog.Level, environment string) *slog.Logger {
	if level >= LevelNone {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if environment == "prod" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
