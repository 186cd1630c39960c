package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndResume(t *testing.T) {
	t.Parallel()

	p := NewProvider()

	s1 := p.Issue()
	require.NotEmpty(t, s1.PlayerID)
	require.NotEmpty(t, s1.ResumeToken)

	s2 := p.Issue()
	assert.NotEqual(t, s1.PlayerID, s2.PlayerID)
	assert.NotEqual(t, s1.ResumeToken, s2.ResumeToken)

	resumed := p.Resume(s1.ResumeToken)
	require.NotNil(t, resumed)
	assert.Equal(t, s1.PlayerID, resumed.PlayerID)

	assert.Nil(t, p.Resume("bogus-token"))
}

func TestGet(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	s := p.Issue()

	assert.Same(t, s, p.Get(s.PlayerID))
	assert.Nil(t, p.Get("unknown"))
}

func TestSessionRoomTracking(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	s := p.Issue()

	assert.Empty(t, s.Room())
	s.SetRoom("123456")
	assert.Equal(t, "123456", s.Room())
	s.SetRoom("")
	assert.Empty(t, s.Room())
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	stale := p.Issue()
	fresh := p.Issue()

	stale.mu.Lock()
	stale.LastSeen = time.Now().Add(-48 * time.Hour)
	stale.mu.Unlock()

	p.cleanup()

	assert.Nil(t, p.Get(stale.PlayerID))
	assert.Nil(t, p.Resume(stale.ResumeToken))
	assert.NotNil(t, p.Get(fresh.PlayerID))
}
