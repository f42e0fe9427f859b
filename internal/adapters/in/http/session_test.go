package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_IssueAndValidate(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Issue()

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, store.IsValid(token))
}

func TestSessionStore_UnknownTokenIsInvalid(t *testing.T) {
	store := NewSessionStore()

	assert.False(t, store.IsValid("deadbeef"))
	assert.False(t, store.IsValid(""))
}

func TestSessionStore_TokensAreUnique(t *testing.T) {
	store := NewSessionStore()

	first, err := store.Issue()
	require.NoError(t, err)
	second, err := store.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSessionStore_ExpiresAfterTTL(t *testing.T) {
	store := NewSessionStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Issue()
	require.NoError(t, err)

	current = current.Add(sessionTTL - time.Second)
	assert.True(t, store.IsValid(token))

	current = current.Add(2 * time.Second)
	assert.False(t, store.IsValid(token))

	// Expired token stays invalid even if the clock moves back.
	current = current.Add(-time.Minute)
	assert.False(t, store.IsValid(token))
}

func TestSessionStore_Revoke(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Issue()
	require.NoError(t, err)

	store.Revoke(token)

	assert.False(t, store.IsValid(token))
	store.Revoke(token) // revoking again is a no-op
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 10.67, round2(32.0/3.0), 1e-9)
	assert.InDelta(t, 0.0, round2(0.0), 1e-9)
	assert.InDelta(t, 2.5, round2(2.5), 1e-9)
	assert.InDelta(t, 3.14, round2(3.14159), 1e-9)
}
