package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/vmkube-controller/internal/infra/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want slog.Level
	}{
		{give: "debug", want: slog.LevelDebug},
		{give: "info", want: slog.LevelInfo},
		{give: "warn", want: slog.LevelWarn},
		{give: "error", want: slog.LevelError},
		{give: "verbose", want: slog.LevelInfo},
		{give: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, logging.ParseLevel(tt.give))
		})
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(logging.NewHandler(&buf, "", slog.LevelInfo))
		logger.Info("reconciled", "kind", "VirtualMachine")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "VirtualMachine", line["kind"])
	})

	t.Run("text filters below level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(logging.NewHandler(&buf, "text", slog.LevelWarn))
		logger.Info("hidden")
		logger.Warn("shown")

		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), "msg=shown")
	})
}
