// Package game implements the room phase/turn state machine. All
// transitions are pure document mutations: they validate against the
// current state, either reject with a *apperrors.GameError and leave the
// room untouched, or apply the change in place. Persistence, fanout and
// retry live elsewhere.
package game

import (
	"slices"

	"github.com/bgpartygames/odd-one-out/internal/protocol"
)

// Phase is the room's current stage.
type Phase string

const (
	PhaseLobby   Phase = "lobby"
	PhaseGame    Phase = "game"
	PhaseVoting  Phase = "voting"
	PhaseResults Phase = "results"
)

// NoImposterVote is the sentinel vote meaning "I believe there is no
// imposter".
const NoImposterVote = "NO_IMPOSTER"

// MaxRounds is the number of clue rounds before voting.
const MaxRounds = 3

// Player is one participant, embedded in the room document.
type Player struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Word       string   `json:"word"`       // empty for the imposter
	IsImposter bool     `json:"isImposter"`
	Clues      []string `json:"clues"`
	Vote       string   `json:"vote,omitempty"` // player id or NoImposterVote
}

// Room is one game session's shared document. Player order is turn order.
type Room struct {
	ID          string   `json:"id"`
	HostID      string   `json:"hostId"`
	Phase       Phase    `json:"phase"`
	Theme       string   `json:"theme"`
	ThemeLang   string   `json:"themeLang"`
	HasImposter bool     `json:"hasImposter"`
	Turn        int      `json:"turn"`
	Round       int      `json:"round"`
	Version     int64    `json:"version"` // optimistic concurrency token
	Players     []Player `json:"players"`
}

// Player returns the player with the given id, or nil.
func (r *Room) Player(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// Imposter returns the imposter, or nil if there is none.
func (r *Room) Imposter() *Player {
	for i := range r.Players {
		if r.Players[i].IsImposter {
			return &r.Players[i]
		}
	}
	return nil
}

// AllVoted reports whether every player has cast a vote.
func (r *Room) AllVoted() bool {
	for i := range r.Players {
		if r.Players[i].Vote == "" {
			return false
		}
	}
	return len(r.Players) > 0
}

// allSpoke reports whether every player has given a clue this round.
func (r *Room) allSpoke() bool {
	for i := range r.Players {
		if len(r.Players[i].Clues) < r.Round {
			return false
		}
	}
	return len(r.Players) > 0
}

// nameTaken reports whether a player already uses the given name.
func (r *Room) nameTaken(name string) bool {
	for i := range r.Players {
		if r.Players[i].Name == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the room document.
func (r *Room) Clone() *Room {
	cp := *r
	cp.Players = make([]Player, len(r.Players))
	for i, p := range r.Players {
		p.Clues = slices.Clone(p.Clues)
		cp.Players[i] = p
	}
	return &cp
}

// SnapshotFor builds the personalized view sent to one subscriber.
// Until the results phase, other players' secret fields are blanked and
// only a hasVoted flag is visible; hasImposter itself stays hidden so
// nobody can rule the imposter out early.
func (r *Room) SnapshotFor(viewerID string) *protocol.RoomSnapshot {
	revealed := r.Phase == PhaseResults

	snap := &protocol.RoomSnapshot{
		ID:          r.ID,
		HostID:      r.HostID,
		Phase:       string(r.Phase),
		Theme:       r.Theme,
		ThemeLang:   r.ThemeLang,
		HasImposter: revealed && r.HasImposter,
		Turn:        r.Turn,
		Round:       r.Round,
		Version:     r.Version,
		Players:     make([]protocol.PlayerSnapshot, len(r.Players)),
	}

	for i, p := range r.Players {
		ps := protocol.PlayerSnapshot{
			ID:       p.ID,
			Name:     p.Name,
			Clues:    slices.Clone(p.Clues),
			HasVoted: p.Vote != "",
		}
		if revealed || p.ID == viewerID {
			ps.Word = p.Word
			ps.IsImposter = p.IsImposter
			ps.Vote = p.Vote
		}
		snap.Players[i] = ps
	}
	return snap
}
