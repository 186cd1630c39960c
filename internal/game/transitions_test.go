package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgpartygames/odd-one-out/internal/apperrors"
)

var testWords = []string{"Guitar", "Piano", "Violin"}

// newLobby builds a lobby room with n players p1..pn, hosted by p1.
func newLobby(t *testing.T, n int) *Room {
	t.Helper()
	room, err := NewRoom("p1", "Alice", "Objects", "en")
	require.NoError(t, err)
	for i := 2; i <= n; i++ {
		require.NoError(t, room.Join(fmt.Sprintf("p%d", i), fmt.Sprintf("Player%d", i)))
	}
	return room
}

// startGame forces a deterministic start with an imposter present.
func startGame(t *testing.T, room *Room, withImposter bool) {
	t.Helper()
	prob := 0.0
	if withImposter {
		prob = 1.0
	}
	require.NoError(t, room.Start("p1", StartConfig{
		Words:               testWords,
		ImposterProbability: prob,
		MinPlayers:          3,
	}))
}

func TestNewRoom(t *testing.T) {
	t.Parallel()

	room, err := NewRoom("p1", "  Alice  ", "Movies", "bg")
	require.NoError(t, err)
	assert.Equal(t, "p1", room.HostID)
	assert.Equal(t, PhaseLobby, room.Phase)
	assert.Equal(t, "Movies", room.Theme)
	assert.Equal(t, "bg", room.ThemeLang)
	assert.Equal(t, 1, room.Round)
	require.Len(t, room.Players, 1)
	assert.Equal(t, "Alice", room.Players[0].Name)

	_, err = NewRoom("p1", "   ", "Movies", "en")
	assert.ErrorIs(t, err, apperrors.ErrEmptyName)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 2)

	// Re-entry with the same id does not duplicate the player.
	assert.NoError(t, room.Join("p2", "Player2"))
	assert.Len(t, room.Players, 2)

	// Names must be unique.
	err := room.Join("p3", "Player2")
	assert.ErrorIs(t, err, apperrors.ErrNameTaken)

	err = room.Join("p3", "  ")
	assert.ErrorIs(t, err, apperrors.ErrEmptyName)

	require.NoError(t, room.Join("p3", "Player3"))
	startGame(t, room, true)

	// No new players mid-game, but re-entry still works.
	err = room.Join("p4", "Player4")
	assert.ErrorIs(t, err, apperrors.ErrGameInProgress)
	assert.NoError(t, room.Join("p2", "whatever"))
}

func TestSetTheme(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)

	err := room.SetTheme("p2", "Animals", "en")
	assert.ErrorIs(t, err, apperrors.ErrNotHost)

	require.NoError(t, room.SetTheme("p1", "Animals", "bg"))
	assert.Equal(t, "Animals", room.Theme)
	assert.Equal(t, "bg", room.ThemeLang)

	startGame(t, room, true)
	err = room.SetTheme("p1", "Movies", "en")
	assert.ErrorIs(t, err, apperrors.ErrGameInProgress)
}

func TestStart(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 2)
	err := room.Start("p1", StartConfig{Words: testWords, MinPlayers: 3})
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughPlayers)

	require.NoError(t, room.Join("p3", "Player3"))

	err = room.Start("p2", StartConfig{Words: testWords, MinPlayers: 3})
	assert.ErrorIs(t, err, apperrors.ErrNotHost)

	err = room.Start("p1", StartConfig{Words: nil, MinPlayers: 3})
	assert.ErrorIs(t, err, apperrors.ErrUnknownTheme)

	startGame(t, room, true)
	assert.Equal(t, PhaseGame, room.Phase)
	assert.Equal(t, 0, room.Turn)
	assert.Equal(t, 1, room.Round)
	assert.True(t, room.HasImposter)

	// Exactly one imposter, with no word; everyone else shares one word.
	imposters := 0
	word := ""
	for _, p := range room.Players {
		if p.IsImposter {
			imposters++
			assert.Empty(t, p.Word)
		} else {
			assert.Contains(t, testWords, p.Word)
			if word == "" {
				word = p.Word
			}
			assert.Equal(t, word, p.Word)
		}
		assert.Empty(t, p.Clues)
		assert.Empty(t, p.Vote)
	}
	assert.Equal(t, 1, imposters)

	err = room.Start("p1", StartConfig{Words: testWords, MinPlayers: 3})
	assert.ErrorIs(t, err, apperrors.ErrGameInProgress)
}

func TestStart_NoImposter(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	startGame(t, room, false)

	assert.False(t, room.HasImposter)
	assert.Nil(t, room.Imposter())

	// Everyone gets the same word.
	word := room.Players[0].Word
	require.NotEmpty(t, word)
	for _, p := range room.Players {
		assert.Equal(t, word, p.Word)
		assert.False(t, p.IsImposter)
	}
}

func TestSubmitClue_FullProgression(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	startGame(t, room, true)

	// Three rounds of three clues, in turn order, end in voting.
	for round := 1; round <= MaxRounds; round++ {
		assert.Equal(t, round, room.Round)
		for i, id := range []string{"p1", "p2", "p3"} {
			assert.Equal(t, i, room.Turn)
			require.NoError(t, room.SubmitClue(id, fmt.Sprintf("clue-%d-%d", round, i)))
		}
	}

	assert.Equal(t, PhaseVoting, room.Phase)
	assert.Equal(t, 0, room.Turn)
	for _, p := range room.Players {
		assert.Len(t, p.Clues, MaxRounds)
	}

	err := room.SubmitClue("p1", "late")
	assert.ErrorIs(t, err, apperrors.ErrWrongPhase)
}

func TestSubmitClue_Validation(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)

	err := room.SubmitClue("p1", "early")
	assert.ErrorIs(t, err, apperrors.ErrWrongPhase)

	startGame(t, room, true)

	err = room.SubmitClue("p2", "not my turn")
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)

	err = room.SubmitClue("p1", "   ")
	assert.ErrorIs(t, err, apperrors.ErrEmptyClue)

	require.NoError(t, room.SubmitClue("p1", "  stringed  "))
	assert.Equal(t, []string{"stringed"}, room.Players[0].Clues)
	assert.Equal(t, 1, room.Turn)
}

func toVoting(t *testing.T, room *Room) {
	t.Helper()
	for round := 1; round <= MaxRounds; round++ {
		for i := range room.Players {
			require.NoError(t, room.SubmitClue(room.Players[i].ID, "clue"))
		}
	}
	require.Equal(t, PhaseVoting, room.Phase)
}

func TestCastVote(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	startGame(t, room, true)

	err := room.CastVote("p1", "p2")
	assert.ErrorIs(t, err, apperrors.ErrWrongPhase)

	toVoting(t, room)

	err = room.CastVote("ghost", "p2")
	assert.ErrorIs(t, err, apperrors.ErrNotInRoom)

	err = room.CastVote("p1", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSuspect)

	// Votes can change until the ballot closes.
	require.NoError(t, room.CastVote("p1", "p2"))
	require.NoError(t, room.CastVote("p1", NoImposterVote))
	assert.Equal(t, NoImposterVote, room.Players[0].Vote)

	require.NoError(t, room.CastVote("p2", "p1"))
	assert.False(t, room.AllVoted())
	require.NoError(t, room.CastVote("p3", "p1"))
	assert.True(t, room.AllVoted())

	err = room.CastVote("p1", "p3")
	assert.ErrorIs(t, err, apperrors.ErrVotingClosed)
	assert.Equal(t, NoImposterVote, room.Players[0].Vote)
}

func TestReveal(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	startGame(t, room, true)
	toVoting(t, room)

	err := room.Reveal("p2")
	assert.ErrorIs(t, err, apperrors.ErrNotHost)

	err = room.Reveal("p1")
	assert.ErrorIs(t, err, apperrors.ErrVotesOutstanding)

	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, room.CastVote(id, NoImposterVote))
	}

	require.NoError(t, room.Reveal("p1"))
	assert.Equal(t, PhaseResults, room.Phase)
}

func TestPlayAgain(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	startGame(t, room, true)
	toVoting(t, room)
	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, room.CastVote(id, "p2"))
	}
	require.NoError(t, room.Reveal("p1"))

	err := room.PlayAgain("p2")
	assert.ErrorIs(t, err, apperrors.ErrNotHost)

	require.NoError(t, room.PlayAgain("p1"))
	assert.Equal(t, PhaseLobby, room.Phase)
	assert.Equal(t, 0, room.Turn)
	assert.Equal(t, 1, room.Round)
	assert.False(t, room.HasImposter)

	// Ids and names survive, game state does not.
	require.Len(t, room.Players, 3)
	for _, p := range room.Players {
		assert.NotEmpty(t, p.Name)
		assert.Empty(t, p.Word)
		assert.False(t, p.IsImposter)
		assert.Empty(t, p.Clues)
		assert.Empty(t, p.Vote)
	}
}

func TestPlayAgain_ReseatsHostWithoutNameClash(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	require.NoError(t, room.Join("p4", "Host"))

	// A room document can surface with the host record missing; the reset
	// reseats them under a name nobody else holds.
	room.Players = room.Players[1:]
	require.Nil(t, room.Player("p1"))

	require.NoError(t, room.PlayAgain("p1"))
	host := room.Player("p1")
	require.NotNil(t, host)
	assert.Equal(t, "Host 2", host.Name)

	seen := make(map[string]bool, len(room.Players))
	for _, p := range room.Players {
		assert.False(t, seen[p.Name], "duplicate name %q", p.Name)
		seen[p.Name] = true
	}
}

func TestLeave(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)

	assert.False(t, room.Leave("p2"))
	assert.Len(t, room.Players, 2)

	// Host departure promotes the longest-joined remaining player.
	assert.False(t, room.Leave("p1"))
	assert.Equal(t, "p3", room.HostID)

	assert.True(t, room.Leave("p3"))
	assert.Empty(t, room.Players)
}

func TestLeave_TurnAdjustment(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 4)
	startGame(t, room, false)

	// Advance to p3's turn.
	require.NoError(t, room.SubmitClue("p1", "a"))
	require.NoError(t, room.SubmitClue("p2", "b"))
	require.Equal(t, 2, room.Turn)

	// A player before the active one leaves: the index shifts down so it
	// still points at p3.
	room.Leave("p1")
	assert.Equal(t, 1, room.Turn)
	assert.Equal(t, "p3", room.Players[room.Turn].ID)

	// The last-positioned active player leaving wraps the turn to 0; with
	// everyone else already done, that also closes the round.
	require.NoError(t, room.SubmitClue("p3", "c"))
	require.Equal(t, 2, room.Turn)
	room.Leave("p4")
	assert.Equal(t, 0, room.Turn)
	assert.Equal(t, 2, room.Round)
}

func TestLeave_ClosesOutRound(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	startGame(t, room, false)

	// p3 is the only one left to speak; their departure must hand the
	// round over, not strand the turn on players who already spoke.
	require.NoError(t, room.SubmitClue("p1", "a"))
	require.NoError(t, room.SubmitClue("p2", "b"))
	room.Leave("p3")

	assert.Equal(t, PhaseGame, room.Phase)
	assert.Equal(t, 2, room.Round)
	assert.Equal(t, 0, room.Turn)
	require.NoError(t, room.SubmitClue("p1", "c"))

	// A player who has not spoken yet keeps the round open.
	room2 := newLobby(t, 4)
	startGame(t, room2, false)
	require.NoError(t, room2.SubmitClue("p1", "a"))
	room2.Leave("p2")
	assert.Equal(t, 1, room2.Round)
	assert.Equal(t, "p3", room2.Players[room2.Turn].ID)
}

func TestLeave_LastRoundFlipsToVoting(t *testing.T) {
	t.Parallel()

	room := newLobby(t, 3)
	startGame(t, room, false)
	for round := 1; round < MaxRounds; round++ {
		for _, id := range []string{"p1", "p2", "p3"} {
			require.NoError(t, room.SubmitClue(id, "clue"))
		}
	}
	require.NoError(t, room.SubmitClue("p1", "final"))
	require.NoError(t, room.SubmitClue("p2", "final"))

	room.Leave("p3")
	assert.Equal(t, PhaseVoting, room.Phase)
	assert.Equal(t, 0, room.Turn)

	require.NoError(t, room.CastVote("p1", NoImposterVote))
	require.NoError(t, room.CastVote("p2", NoImposterVote))
	assert.True(t, room.AllVoted())
}
