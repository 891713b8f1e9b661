package command

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/larder/internal/config"
)

func TestReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{name: "unix newline", input: "hunter2\nrest", want: "hunter2"},
		{name: "windows newline", input: "hunter2\r\n", want: "hunter2"},
		{name: "no trailing newline", input: "hunter2", want: "hunter2"},
		{name: "empty line", input: "\n", want: ""},
		{name: "empty input", input: "", err: io.EOF},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := readLine(strings.NewReader(test.input))
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, string(got))
		})
	}
}

func TestOpenEnv(t *testing.T) {
	t.Parallel()

	t.Run("missing config", func(t *testing.T) {
		t.Parallel()
		_, err := openEnv(t.Context())
		require.Error(t, err)
	})

	t.Run("wires services", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.SetDbFilepath(filepath.Join(t.TempDir(), "db.sqlite"))
		cfg.SetSessionKey(config.NewSessionKey())
		ctx := context.WithValue(t.Context(), configKey{}, cfg)

		rt, err := openEnv(ctx)
		require.NoError(t, err)
		t.Cleanup(func() { assert.NoError(t, rt.Close()) })

		id, err := rt.svc.Accounts.Register(ctx, "Alice Smith", "pw1")
		require.NoError(t, err)
		assert.NotZero(t, id)
		assert.NotNil(t, rt.svc.Recipes)
		assert.NotNil(t, rt.svc.Sessions)
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()
	assert.NotEmpty(t, version())
}
