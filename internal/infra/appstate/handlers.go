package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type healthResponse struct {
	Healthy bool `json:"healthy"`
}

type componentStatus struct {
	Ready               bool      `json:"ready"`
	Healthy             bool      `json:"healthy"`
	LastRun             time.Time `json:"lastRun,omitzero"`
	LastLatency         string    `json:"lastLatency,omitempty"`
	ConsecutiveFailures int       `json:"consecutiveFailures,omitempty"`
	LastError           string    `json:"lastError,omitempty"`
}

type statusResponse struct {
	State      string                     `json:"state"`
	Uptime     string                     `json:"uptime"`
	StartTime  time.Time                  `json:"startTime"`
	ReadyAt    *time.Time                 `json:"readyAt,omitempty"`
	UptimeSec  float64                    `json:"uptimeSeconds"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

// HandleHealth returns an http.HandlerFunc for the /health endpoint.
// The body is {"healthy": bool}; an unhealthy process answers 503.
func HandleHealth(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		healthy := appState.IsHealthy()

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)

		if err := json.NewEncoder(w).Encode(healthResponse{Healthy: healthy}); err != nil {
			logger.ErrorContext(ctx, "failed to encode health response", "reason", err)

			return
		}

		logger.DebugContext(ctx, "health response sent", "healthy", healthy)
	}
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "readiness check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		state := appState.GetState()
		uptime := appState.GetUptime()

		response := statusResponse{
			State:     string(state),
			Uptime:    uptime.String(),
			StartTime: appState.GetStartTime(),
			ReadyAt:   appState.GetReadyAt(),
			UptimeSec: uptime.Seconds(),
		}

		if all := appState.GetAllStats(); len(all) > 0 {
			response.Components = make(map[string]componentStatus, len(all))

			for name, stats := range all {
				component := componentStatus{
					Ready:               stats.IsReady,
					Healthy:             stats.IsHealthy,
					LastRun:             stats.LastRun,
					ConsecutiveFailures: stats.ConsecutiveFailures,
				}

				if !stats.LastRun.IsZero() {
					component.LastLatency = stats.LastLatency.String()
				}

				if stats.LastError != nil {
					component.LastError = stats.LastError.Error()
				}

				response.Components[name] = component
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.ErrorContext(ctx, "failed to encode status response",
				"reason", err,
			)

			return
		}

		logger.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}
