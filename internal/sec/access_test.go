package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	alice := Identity{UserID: 1, Name: "alice"}
	bob := Identity{UserID: 2, Name: "bob"}

	tests := []struct {
		name     string
		id       Identity
		owner    uint64
		decision Decision
		err      error
	}{
		{name: "owner", id: alice, owner: 1, decision: Allowed},
		{name: "other user", id: bob, owner: 1, decision: Denied, err: ErrNotOwner},
		{name: "anonymous", id: Anonymous, owner: 1, decision: Denied, err: ErrUnauthenticated},
		{name: "anonymous never owns the zero owner", id: Anonymous, owner: 0, decision: Denied, err: ErrUnauthenticated},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.decision, Authorize(test.id, test.owner))
			err := CheckOwner(test.id, test.owner)
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Anonymous, GetIdentity(t.Context()))
	assert.False(t, GetIdentity(t.Context()).Authenticated())

	id := Identity{UserID: 42, Name: "carol"}
	ctx := WithIdentity(t.Context(), id)
	assert.Equal(t, id, GetIdentity(ctx))
	assert.True(t, GetIdentity(ctx).Authenticated())
}
