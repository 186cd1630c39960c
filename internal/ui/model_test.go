package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgpartygames/odd-one-out/internal/game"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	m := NewModel("ws://localhost:1780/ws")
	m.width = 80
	m.height = 24
	m.client.PlayerID = "p1"
	m.nickname = "Alice"
	return m
}

func testSnapshot(phase string) *protocol.RoomSnapshot {
	return &protocol.RoomSnapshot{
		ID:     "123456",
		HostID: "p1",
		Phase:  phase,
		Theme:  "Objects",
		Turn:   0,
		Round:  1,
		Players: []protocol.PlayerSnapshot{
			{ID: "p1", Name: "Alice", Clues: []string{}},
			{ID: "p2", Name: "Bob", Clues: []string{}},
			{ID: "p3", Name: "Cara", Clues: []string{}},
		},
	}
}

func TestIsHostAndTurn(t *testing.T) {
	m := newTestModel(t)
	m.room = testSnapshot(string(game.PhaseGame))

	assert.True(t, m.isHost())
	assert.True(t, m.isMyTurn())

	m.room.Turn = 1
	assert.False(t, m.isMyTurn())

	m.room.HostID = "p2"
	assert.False(t, m.isHost())
}

func TestVoteCandidates(t *testing.T) {
	m := newTestModel(t)
	m.room = testSnapshot(string(game.PhaseVoting))

	// Everyone but the local player, sentinel last.
	assert.Equal(t, []string{"p2", "p3", game.NoImposterVote}, m.voteCandidates())
}

func TestApplySnapshot_TracksSession(t *testing.T) {
	m := newTestModel(t)

	m.applySnapshot(testSnapshot(string(game.PhaseLobby)))
	assert.Equal(t, ScreenRoom, m.screen)
	assert.Equal(t, "123456", m.saved.RoomID)
}

func TestLobbyView(t *testing.T) {
	m := newTestModel(t)
	m.room = testSnapshot(string(game.PhaseLobby))

	view := m.lobbyView()
	assert.Contains(t, view, "123456")
	assert.Contains(t, view, "Objects")
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "Bob")
	assert.Contains(t, view, "s: start")
}

func TestGameView_ShowsWordOrImposter(t *testing.T) {
	m := newTestModel(t)
	snap := testSnapshot(string(game.PhaseGame))
	snap.Players[0].Word = "Lamp"
	m.room = snap

	view := m.gameView()
	assert.Contains(t, view, "Lamp")
	assert.Contains(t, view, "Your turn")

	snap.Players[0].Word = ""
	snap.Players[0].IsImposter = true
	view = m.gameView()
	assert.Contains(t, view, "imposter")
}

func TestVotingView(t *testing.T) {
	m := newTestModel(t)
	snap := testSnapshot(string(game.PhaseVoting))
	m.room = snap

	view := m.votingView()
	assert.Contains(t, view, "Bob")
	assert.Contains(t, view, "no imposter")
	assert.Contains(t, view, "enter: vote")

	// The menu stays up after voting so the vote can still be changed,
	// with the current pick marked.
	snap.Players[0].HasVoted = true
	snap.Players[0].Vote = "p2"
	view = m.votingView()
	assert.Contains(t, view, "enter: change vote")
	assert.Contains(t, view, "Bob "+checkIcon)
	assert.Contains(t, view, "1/3 voted")
}

func TestResultsView(t *testing.T) {
	m := newTestModel(t)
	snap := testSnapshot(string(game.PhaseResults))
	snap.HasImposter = true
	snap.Players[1].IsImposter = true
	snap.Players[0].Word = "Lamp"
	snap.Players[2].Word = "Lamp"
	snap.Players[0].Vote = "p2"
	snap.Players[1].Vote = "p3"
	snap.Players[2].Vote = "p2"
	m.room = snap

	view := m.resultsView()
	assert.Contains(t, view, "caught")
	assert.Contains(t, view, "Bob")
	assert.Contains(t, view, "Lamp")
	assert.Contains(t, view, "p: play again")
}

func TestRoomFromSnapshot(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(string(game.PhaseResults))
	snap.HasImposter = true
	snap.Players[1].IsImposter = true

	room := roomFromSnapshot(snap)
	require.Len(t, room.Players, 3)
	assert.Equal(t, game.PhaseResults, room.Phase)
	assert.True(t, room.HasImposter)
	assert.Equal(t, "p2", room.Imposter().ID)
}
