package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bgpartygames/odd-one-out/internal/apperrors"
)

// StartConfig carries the tunables for starting a game.
type StartConfig struct {
	Words               []string // word bank entry for the room's theme and language
	ImposterProbability float64  // 0 forces no imposter, 1 forces one
	MinPlayers          int      // defaults to 3
}

// NewRoom creates a lobby room with the host as its only player. The
// store assigns the room id on creation.
func NewRoom(hostID, name, theme, lang string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrEmptyName
	}

	return &Room{
		HostID:    hostID,
		Phase:     PhaseLobby,
		Theme:     theme,
		ThemeLang: lang,
		Turn:      0,
		Round:     1,
		Players: []Player{
			{ID: hostID, Name: name, Clues: []string{}},
		},
	}, nil
}

// Join adds a player to a lobby room. Joining a room you are already in
// is idempotent. Names must be unique within the room at join time.
func (r *Room) Join(userID, name string) error {
	if r.Player(userID) != nil {
		return nil // re-entry, no duplicate
	}
	if r.Phase != PhaseLobby {
		return apperrors.ErrGameInProgress
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.ErrEmptyName
	}
	if r.nameTaken(name) {
		return apperrors.ErrNameTaken
	}

	r.Players = append(r.Players, Player{ID: userID, Name: name, Clues: []string{}})
	return nil
}

// SetTheme changes the theme and language. Host only, lobby only.
func (r *Room) SetTheme(callerID, theme, lang string) error {
	if callerID != r.HostID {
		return apperrors.ErrNotHost
	}
	if r.Phase != PhaseLobby {
		return apperrors.ErrGameInProgress
	}

	r.Theme = theme
	r.ThemeLang = lang
	return nil
}

// Start begins the game. Host only, at least MinPlayers players. A
// weighted coin flip decides whether this round has an imposter; if so
// one uniformly random player gets no word, everyone else receives the
// same word drawn uniformly from cfg.Words.
func (r *Room) Start(callerID string, cfg StartConfig) error {
	if callerID != r.HostID {
		return apperrors.ErrNotHost
	}
	if r.Phase != PhaseLobby {
		return apperrors.ErrGameInProgress
	}

	minPlayers := cfg.MinPlayers
	if minPlayers <= 0 {
		minPlayers = 3
	}
	if len(r.Players) < minPlayers {
		return apperrors.ErrNotEnoughPlayers
	}
	if len(cfg.Words) == 0 {
		return apperrors.ErrUnknownTheme
	}

	hasImposter := rand.Float64() < cfg.ImposterProbability
	imposterIdx := -1
	if hasImposter {
		imposterIdx = rand.IntN(len(r.Players))
	}
	word := cfg.Words[rand.IntN(len(cfg.Words))]

	for i := range r.Players {
		p := &r.Players[i]
		p.Clues = []string{}
		p.Vote = ""
		if i == imposterIdx {
			p.Word = ""
			p.IsImposter = true
		} else {
			p.Word = word
			p.IsImposter = false
		}
	}

	r.HasImposter = hasImposter
	r.Phase = PhaseGame
	r.Turn = 0
	r.Round = 1
	return nil
}

// SubmitClue records the active player's clue and advances the turn.
// When the last player of round MaxRounds has spoken, the room moves to
// voting instead of a fourth round.
func (r *Room) SubmitClue(userID, text string) error {
	if r.Phase != PhaseGame {
		return apperrors.ErrWrongPhase
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return apperrors.ErrEmptyClue
	}

	active := &r.Players[r.Turn]
	if active.ID != userID {
		return apperrors.ErrNotYourTurn
	}
	if len(active.Clues) >= r.Round {
		return apperrors.ErrClueLimit
	}

	active.Clues = append(active.Clues, text)

	r.Turn++
	if r.Turn == len(r.Players) {
		r.Turn = 0
		if r.Round == MaxRounds {
			r.Phase = PhaseVoting
		} else {
			r.Round++
		}
	}
	return nil
}

// CastVote records the caller's suspicion. Votes may be changed until
// everyone has voted, which closes the ballot.
func (r *Room) CastVote(userID, suspectID string) error {
	if r.Phase != PhaseVoting {
		return apperrors.ErrWrongPhase
	}

	voter := r.Player(userID)
	if voter == nil {
		return apperrors.ErrNotInRoom
	}
	if r.AllVoted() {
		return apperrors.ErrVotingClosed
	}
	if suspectID != NoImposterVote && r.Player(suspectID) == nil {
		return apperrors.ErrInvalidSuspect
	}

	voter.Vote = suspectID
	return nil
}

// Reveal moves the room from voting to results. Host only, and only
// once every player has a non-empty vote.
func (r *Room) Reveal(callerID string) error {
	if callerID != r.HostID {
		return apperrors.ErrNotHost
	}
	if r.Phase != PhaseVoting {
		return apperrors.ErrWrongPhase
	}
	if !r.AllVoted() {
		return apperrors.ErrVotesOutstanding
	}

	r.Phase = PhaseResults
	return nil
}

// PlayAgain resets the room to a fresh lobby. Host only. Player ids and
// names are preserved; everything game-specific is cleared.
func (r *Room) PlayAgain(callerID string) error {
	if callerID != r.HostID {
		return apperrors.ErrNotHost
	}

	for i := range r.Players {
		p := &r.Players[i]
		p.Word = ""
		p.IsImposter = false
		p.Clues = []string{}
		p.Vote = ""
	}

	// The host should always be present after a reset.
	if r.Player(r.HostID) == nil {
		name := "Host"
		for n := 2; r.nameTaken(name); n++ {
			name = fmt.Sprintf("Host %d", n)
		}
		r.Players = append(r.Players, Player{ID: r.HostID, Name: name, Clues: []string{}})
	}

	r.HasImposter = false
	r.Phase = PhaseLobby
	r.Turn = 0
	r.Round = 1
	return nil
}

// Leave removes a player and reports whether the room is now empty (and
// must be deleted). If the host leaves, the longest-joined remaining
// player becomes host. The turn index is adjusted so it keeps pointing
// at a valid player.
func (r *Room) Leave(userID string) (empty bool) {
	idx := -1
	for i := range r.Players {
		if r.Players[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return len(r.Players) == 0
	}

	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	if len(r.Players) == 0 {
		return true
	}

	if userID == r.HostID {
		r.HostID = r.Players[0].ID
	}

	if idx < r.Turn {
		r.Turn--
	}
	if r.Turn >= len(r.Players) {
		r.Turn = 0
	}

	// The departed player may have been the only one yet to speak, which
	// would leave the round with no valid mover. Close it out the way
	// SubmitClue does on a full lap.
	if r.Phase == PhaseGame && r.allSpoke() {
		r.Turn = 0
		if r.Round == MaxRounds {
			r.Phase = PhaseVoting
		} else {
			r.Round++
		}
	}
	return false
}
