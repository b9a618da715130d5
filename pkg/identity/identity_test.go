package identity_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteshare/pkg/identity"
)

func TestGenerateID(t *testing.T) {
	t.Run("prefixed identifier", func(t *testing.T) {
		id := identity.GenerateID("usr")
		require.True(t, strings.HasPrefix(id, "usr_"))

		_, err := uuid.Parse(strings.TrimPrefix(id, "usr_"))
		assert.NoError(t, err)
	})

	t.Run("empty prefix yields a bare uuid", func(t *testing.T) {
		id := identity.GenerateID("")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("identifiers are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 1000 {
			id := identity.GenerateID("not")
			_, dup := seen[id]
			require.False(t, dup)
			seen[id] = struct{}{}
		}
	})
}

func TestHasPrefix(t *testing.T) {
	id := identity.GenerateID("brd")
	assert.True(t, identity.HasPrefix(id, "brd"))
	assert.False(t, identity.HasPrefix(id, "usr"))
	assert.False(t, identity.HasPrefix("brdsomething", "brd"), "prefix must be separated")
}
