package uitest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseID(t *testing.T, raw string) uint64 {
	t.Helper()
	id, err := strconv.ParseUint(raw, 10, 64)
	require.NoError(t, err)
	return id
}
