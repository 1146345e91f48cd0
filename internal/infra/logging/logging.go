package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
)

// New builds the process logger and routes client-go (klog) and
// controller-runtime (logr) output through the same handler.
func New(logFormat, logLevel string) *slog.Logger {
	handler := NewHandler(os.Stdout, logFormat, ParseLevel(logLevel))

	logger := slog.New(handler)

	slog.SetDefault(logger)
	klog.SetSlogLogger(logger)
	ctrllog.SetLogger(logr.FromSlogHandler(handler))

	return logger
}

// NewHandler returns a JSON handler unless logFormat is "text".
func NewHandler(w io.Writer, logFormat string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch logFormat {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "json":
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// ParseLevel maps debug, info, warn and error; anything else is info.
func ParseLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
