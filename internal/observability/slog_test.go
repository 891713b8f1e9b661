package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/larder/internal/config"
	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json when not a terminal", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cfg := config.Default()
		cfg.SetSessionKey("super-secret-session-key-0123456789")
		newLogger(cfg, buf, false).Info("hello", "config", cfg)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		group, ok := line["config"].(map[string]any)
		require.True(t, ok, "config should render as a group")
		assert.Equal(t, cfg.GetWebAddress(), group["web_address"])
		assert.NotContains(t, buf.String(), cfg.GetSessionKey())
	})

	t.Run("text on a terminal", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		newLogger(config.Default(), buf, true).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cfg := config.Default()
		cfg.SetLogLevel(larderv1.Config_WARN)
		newLogger(cfg, buf, true).Info("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestToLogLevel(t *testing.T) {
	t.Parallel()

	for lvl, want := range map[larderv1.Config_LogLevel]slog.Level{
		larderv1.Config_DEBUG:                 slog.LevelDebug,
		larderv1.Config_INFO:                  slog.LevelInfo,
		larderv1.Config_WARN:                  slog.LevelWarn,
		larderv1.Config_ERROR:                 slog.LevelError,
		larderv1.Config_LOG_LEVEL_UNSPECIFIED: slog.LevelInfo,
	} {
		assert.Equal(t, want, ToLogLevel(lvl), lvl.String())
	}
}
