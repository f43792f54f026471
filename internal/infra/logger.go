package infra

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggerMu     sync.Mutex
	globalLogger *slog.Logger
)

// SetupLogger initializes the process-wide logger writing the identical
// stream to stdout and to an append-only file. Initialization happens
// exactly once: later calls are no-ops returning the existing logger,
// so nothing can attach duplicate sinks.
func SetupLogger(filePath, level string) *slog.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if globalLogger != nil {
		return globalLogger
	}

	fileSink := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    100, // MB
		MaxBackups: 3,
	}
	globalLogger = NewLogger(io.MultiWriter(os.Stdout, fileSink), level)
	slog.SetDefault(globalLogger)
	return globalLogger
}

// NewLogger builds a logger over an arbitrary sink. Tests inject an
// in-memory writer here instead of going through SetupLogger.
func NewLogger(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.DateTime))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts)).With(slog.String("logger", "bitestnet"))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
