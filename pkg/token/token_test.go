package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintParseRoundTrip(t *testing.T) {
	m := NewManager("secret", 1)
	id := uuid.New()

	signed, err := m.Mint(id, "alice", "moderator", true)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "moderator", claims.Role)
	assert.True(t, claims.IsSuperuser)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", 1).Mint(uuid.New(), "alice", "user", false)
	require.NoError(t, err)

	_, err = NewManager("secret-b", 1).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", 1).Parse("not-a-token")
	assert.Error(t, err)
}
