package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultShutdownTimeout = 5 * time.Second
)

var ErrTerminationFileFound = errors.New("termination file found")

// Notify returns a channel that will receive SIGTERM and SIGINT signals.
// This should be called as the first thing in main() before any other initialization.
func Notify() <-chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	return signals
}

type Handler struct {
	logger          *slog.Logger
	quiter          quiter
	terminationFile string
}

// New creates a new shutdown handler.
func New(logger *slog.Logger, quiter quiter, terminationFile string) *Handler {
	return &Handler{
		logger:          logger,
		quiter:          quiter,
		terminationFile: terminationFile,
	}
}

// HandleSignals listens for SIGTERM and SIGINT signals and cancels the context when received.
func (h *Handler) HandleSignals(ctx context.Context, cancel func()) {
	select {
	case <-ctx.Done():
		h.logger.InfoContext(ctx, "terminating signal handler due to context done")

		return
	case <-h.quiter.Quit():
	}

	h.logger.InfoContext(ctx, "received termination signal, terminating")

	cancel()
}

// CheckTermination refuses startup when the pod is already being terminated.
func (h *Handler) CheckTermination(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("termination context done before startup: %w", ctx.Err())
	default:
	}

	if CheckTerminationFile(ctx, h.logger, h.terminationFile) {
		return fmt.Errorf("check termination: %w: %s", ErrTerminationFileFound, h.terminationFile)
	}

	return nil
}

// CheckTerminationFile checks if the termination file exists
func CheckTerminationFile(ctx context.Context, logger *slog.Logger, terminationFile string) bool {
	if terminationFile == "" {
		return false
	}

	_, err := os.Stat(terminationFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.ErrorContext(ctx, "error checking termination file", "reason", err, "path", terminationFile)
		}

		return false
	}

	logger.InfoContext(ctx, "termination file found", "path", terminationFile)

	return true
}

// GracefulShutdown shuts the components down in reverse order. The deadline of
// originCtx is kept but its cancellation is not; without a deadline a default
// timeout applies.
func GracefulShutdown(
	originCtx context.Context,
	logger *slog.Logger,
	shutdowners []Shutdowner,
) error {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	if deadline, ok := originCtx.Deadline(); ok {
		ctx, cancel = context.WithDeadline(context.WithoutCancel(originCtx), deadline)
	} else {
		ctx, cancel = context.WithTimeout(context.WithoutCancel(originCtx), defaultShutdownTimeout)
	}
	defer cancel()

	var errs error

	// Shutdown components in reverse order to ensure dependencies are met
	for i := len(shutdowners) - 1; i >= 0; i-- {
		start := time.Now()
		shutdowner := shutdowners[i]
		name := shutdowner.Name()

		if err := shutdowner.Shutdown(ctx); err != nil {
			logger.ErrorContext(ctx, "component shutdown failed",
				"component", name,
				"duration", time.Since(start),
				"reason", err,
			)

			errs = errors.Join(errs, fmt.Errorf("shutdown %s: %w", name, err))

			continue
		}

		logger.InfoContext(ctx, "component shutdown completed",
			"component", name,
			"duration", time.Since(start),
		)
	}

	return errs
}
