package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_TokenRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	_, ok := s.Token()
	assert.False(t, ok)

	require.NoError(t, s.SaveToken("tok-abc"))

	token, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-abc", token)
}

func TestStore_TokenSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewStore(dir).SaveToken("tok-xyz"))

	token, ok := NewStore(dir).Token()
	require.True(t, ok)
	assert.Equal(t, "tok-xyz", token)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.SaveToken("tok"))

	require.NoError(t, s.Clear())

	_, ok := s.Token()
	assert.False(t, ok)
}

func TestStore_ClearWithoutTokenIsFine(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.NoError(t, s.Clear())
}

func TestSession_Authenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, (&Session{}).Authenticated())
	assert.True(t, (&Session{Token: "tok"}).Authenticated())
}
