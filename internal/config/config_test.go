package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"buf.build/go/protovalidate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"

	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "valid config",
			yaml:    `session_key: "` + testKey + `"`,
			wantErr: "",
		},
		{
			name:    "missing session_key fails validation",
			yaml:    `log_level: DEBUG`,
			wantErr: "config validation failed",
		},
		{
			name:    "short session_key fails validation",
			yaml:    `session_key: "short"`,
			wantErr: "config validation failed",
		},
		{
			name:    "unknown log level fails to unmarshal",
			yaml:    "session_key: \"" + testKey + "\"\nlog_level: LOUD",
			wantErr: "failed to unmarshal config file",
		},
		{
			name:    "negative session_ttl fails validation",
			yaml:    "session_key: \"" + testKey + "\"\nsession_ttl: -1h",
			wantErr: "config validation failed",
		},
		{
			name:    "unknown field fails to unmarshal",
			yaml:    "session_key: \"" + testKey + "\"\nrpc_address: localhost:1",
			wantErr: "failed to unmarshal config file",
		},
		{
			name:    "bad web address fails validation",
			yaml:    "session_key: \"" + testKey + "\"\nweb_address: nope",
			wantErr: "config validation failed",
		},
		{
			name:    "invalid yaml syntax",
			yaml:    `invalid: [yaml: content`,
			wantErr: "failed to unmarshal config file",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestConfig(t, test.yaml)
			cfg, err := load(path, map[string]string{})

			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestLoad_MergesDefaults(t *testing.T) {
	t.Parallel()

	path := writeTestConfig(t, "session_key: \""+testKey+"\"\nsession_ttl: 2h\ndev_mode: true")
	cfg, err := load(path, map[string]string{})
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.GetWebAddress(), cfg.GetWebAddress())
	assert.Equal(t, def.GetDbFilepath(), cfg.GetDbFilepath())
	assert.Equal(t, larderv1.Config_INFO, cfg.GetLogLevel())
	assert.Equal(t, 2*time.Hour, cfg.GetSessionTtl().AsDuration())
	assert.True(t, cfg.GetDevMode())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()

	path := writeTestConfig(t, `session_key: "`+testKey+`"`)
	cfg, err := load(path, map[string]string{
		"LARDER_WEB_ADDRESS":    "127.0.0.1:8080",
		"LARDER_LOG_LEVEL":      "debug",
		"LARDER_SECURE_COOKIES": "true",
		"LARDER_SESSION_TTL":    "45m",
	})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.GetWebAddress())
	assert.Equal(t, larderv1.Config_DEBUG, cfg.GetLogLevel())
	assert.True(t, cfg.GetSecureCookies())
	assert.Equal(t, 45*time.Minute, cfg.GetSessionTtl().AsDuration())
	assert.Equal(t, testKey, cfg.GetSessionKey())
}

func TestLoad_EnvOverrideErrors(t *testing.T) {
	t.Parallel()

	path := writeTestConfig(t, `session_key: "`+testKey+`"`)

	_, err := load(path, map[string]string{"LARDER_LOG_LEVEL": "loud"})
	require.ErrorContains(t, err, "failed to apply environment overrides")

	_, err = load(path, map[string]string{"LARDER_SESSION_KEY": "short"})
	require.ErrorContains(t, err, "config validation failed")
	var valErr *protovalidate.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Violations, 1)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	require.ErrorContains(t, err, "failed to read config file")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, cfg)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "larder.yaml")
	cfg := Default()
	cfg.SetSessionKey(NewSessionKey())
	cfg.SetSessionTtl(durationpb.New(30 * time.Minute))
	require.NoError(t, Write(path, cfg))

	loaded, err := load(path, map[string]string{})
	require.NoError(t, err)
	assert.True(t, proto.Equal(cfg, loaded), "got %v", loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDefault_IsIncomplete(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.ErrorContains(t, Validate(cfg), "config validation failed")
	cfg.SetSessionKey(NewSessionKey())
	require.NoError(t, Validate(cfg))
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}
