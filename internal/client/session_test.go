package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// No file yet: empty session, no error.
	s, err := LoadSession()
	require.NoError(t, err)
	assert.Empty(t, s.Nickname)

	s.Nickname = "Alice"
	s.ResumeToken = "tok123"
	s.RoomID = "654321"
	require.NoError(t, SaveSession(s))

	loaded, err := LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "Alice", loaded.Nickname)
	assert.Equal(t, "tok123", loaded.ResumeToken)
	assert.Equal(t, "654321", loaded.RoomID)
}

func TestClearSession_KeepsNickname(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveSession(&SavedSession{
		Nickname:    "Bob",
		ResumeToken: "tok",
		RoomID:      "111111",
	}))

	require.NoError(t, ClearSession())

	loaded, err := LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "Bob", loaded.Nickname)
	assert.Empty(t, loaded.ResumeToken)
	assert.Empty(t, loaded.RoomID)
}
