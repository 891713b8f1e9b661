// Package observability provides logging initialization.
package observability

import (
	"io"
	"log/slog"
	"os"

	"github.com/rodaine/protoslog"
	"golang.org/x/term"

	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
)

// InitSlog initializes a logger with the given config. When running in a
// terminal, it uses a human-readable text format; otherwise it uses JSON for
// structured logging. The handler is wrapped with protoslog so proto messages
// render as groups with redacted fields masked.
func InitSlog(cfg *larderv1.Config) *slog.Logger {
	return newLogger(cfg, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))
}

func newLogger(cfg *larderv1.Config, out io.Writer, terminal bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: cfg.GetDevMode(),
		Level:     ToLogLevel(cfg.GetLogLevel()),
	}
	var handler slog.Handler
	if terminal {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return slog.New(protoslog.NewHandler(handler))
}

// ToLogLevel maps a configured level onto a [slog.Level]. Unspecified levels
// resolve to info.
func ToLogLevel(lvl larderv1.Config_LogLevel) slog.Level {
	switch lvl {
	case larderv1.Config_DEBUG:
		return slog.LevelDebug
	case larderv1.Config_WARN:
		return slog.LevelWarn
	case larderv1.Config_ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
