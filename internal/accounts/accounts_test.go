package accounts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/larder/internal/sec"
	"github.com/stolasapp/larder/internal/storage"
	"github.com/stolasapp/larder/internal/storage/storagetest"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	store := storagetest.New(t)
	svc := New(store)

	id, err := svc.Register(t.Context(), "alice", "pw1")
	require.NoError(t, err)
	assert.NotZero(t, id)

	user, err := svc.FindByUsername(t.Context(), "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NotEqual(t, []byte("pw1"), user.PasswordHash)
	require.NoError(t, sec.ComparePassword("pw1", user.PasswordHash))

	t.Run("duplicate leaves original untouched", func(t *testing.T) {
		_, err := svc.Register(t.Context(), "alice", "other")
		require.ErrorIs(t, err, ErrDuplicateUsername)

		users, err := svc.List(t.Context(), "", 100)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		again, err := svc.FindByUsername(t.Context(), "alice")
		require.NoError(t, err)
		assert.Equal(t, user, again)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name, username, password string
			err                      error
		}{
			{"empty name", "", "pw", ErrInvalidUsername},
			{"blank name", " \t ", "pw", ErrInvalidUsername},
			{"long name", strings.Repeat("n", MaxUsernameLen+1), "pw", ErrInvalidUsername},
			{"empty password", "valid_name", "", ErrInvalidPassword},
			{"long password", "valid_name", strings.Repeat("p", sec.MaxPasswordLen+1), ErrInvalidPassword},
		}
		for _, test := range tests {
			_, err := svc.Register(t.Context(), test.username, test.password)
			require.ErrorIs(t, err, test.err, test.name)
		}
		_, err := svc.FindByUsername(t.Context(), "valid_name")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	svc := New(storagetest.New(t))
	id, err := svc.Register(t.Context(), "bob", "pw2")
	require.NoError(t, err)

	user, err := svc.Verify(t.Context(), "bob", "pw2")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "bob", user.Name)

	_, wrongPassword := svc.Verify(t.Context(), "bob", "nope")
	_, unknownUser := svc.Verify(t.Context(), "nobody", "pw2")
	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestRegister_FreeformNames(t *testing.T) {
	t.Parallel()

	svc := New(storagetest.New(t))
	for _, name := range []string{
		"jo",
		"a",
		"jane.doe",
		"Alice Smith",
		"josé",
		strings.Repeat("é", MaxUsernameLen),
	} {
		id, err := svc.Register(t.Context(), name, "pw1")
		require.NoError(t, err, name)

		user, err := svc.Verify(t.Context(), name, "pw1")
		require.NoError(t, err, name)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, name, user.Name)
	}
}

func TestRegister_TrimsName(t *testing.T) {
	t.Parallel()

	svc := New(storagetest.New(t))
	id, err := svc.Register(t.Context(), "  carol  ", "pw1")
	require.NoError(t, err)

	user, err := svc.FindByUsername(t.Context(), "carol")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "carol", user.Name)

	_, err = svc.Register(t.Context(), "carol", "pw2")
	require.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = svc.Verify(t.Context(), " carol", "pw1")
	require.NoError(t, err)
}

func TestFindByUsername(t *testing.T) {
	t.Parallel()

	svc := New(storagetest.New(t))
	_, err := svc.FindByUsername(t.Context(), "ghost")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()

	svc := New(storagetest.New(t))
	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := svc.Register(t.Context(), name, "pw")
		require.NoError(t, err)
	}

	page, err := svc.List(t.Context(), "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "alice", page[0].Name)
	assert.Equal(t, "bob", page[1].Name)

	page, err = svc.List(t.Context(), page[1].Name, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "carol", page[0].Name)
}
