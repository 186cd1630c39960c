package ui

import (
	"fmt"
	"strings"

	"github.com/bgpartygames/odd-one-out/internal/game"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
)

// roomFromSnapshot rebuilds a room document from a snapshot. Only valid
// in the results phase, when the server no longer redacts anything.
func roomFromSnapshot(snap *protocol.RoomSnapshot) *game.Room {
	r := &game.Room{
		ID:          snap.ID,
		HostID:      snap.HostID,
		Phase:       game.Phase(snap.Phase),
		Theme:       snap.Theme,
		ThemeLang:   snap.ThemeLang,
		HasImposter: snap.HasImposter,
		Turn:        snap.Turn,
		Round:       snap.Round,
		Version:     snap.Version,
		Players:     make([]game.Player, len(snap.Players)),
	}
	for i, p := range snap.Players {
		r.Players[i] = game.Player{
			ID:         p.ID,
			Name:       p.Name,
			Word:       p.Word,
			IsImposter: p.IsImposter,
			Clues:      p.Clues,
			Vote:       p.Vote,
		}
	}
	return r
}

func (m *Model) resultsView() string {
	var sb strings.Builder
	sb.WriteString(m.centered(titleStyle("🎭 Results")))
	sb.WriteString("\n\n")

	room := roomFromSnapshot(m.room)
	result := game.Tally(room)

	var headline string
	switch result.Outcome {
	case game.OutcomeImposterCaught:
		headline = turnStyle.Render("The imposter was caught! Players win.")
	case game.OutcomeImposterEscaped:
		headline = dangerStyle.Render("The imposter escaped! Imposter wins.")
	case game.OutcomeNobodyRightly:
		headline = turnStyle.Render("Correct, there was no imposter. Players win.")
	case game.OutcomeFalseAccusation:
		headline = dangerStyle.Render("There was no imposter, but someone got blamed anyway.")
	}
	sb.WriteString(m.centered(headline))
	sb.WriteString("\n\n")

	if imposter := room.Imposter(); imposter != nil {
		sb.WriteString(m.centered(fmt.Sprintf("%s %s was the imposter", imposterIcon, imposter.Name)))
	} else {
		sb.WriteString(m.centered("There was no imposter this time."))
	}
	sb.WriteString("\n")
	if word := secretWord(room); word != "" {
		sb.WriteString(m.centered(fmt.Sprintf("The word was: %s", wordStyle.Render(word))))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.centered(m.renderTally(room, result)))
	sb.WriteString("\n\n")

	sb.WriteString(m.centered(m.renderBallot(room)))
	sb.WriteString("\n\n")

	if m.isHost() {
		sb.WriteString(m.centered(dimStyle.Render("p: play again  e: end game  esc: leave")))
	} else {
		sb.WriteString(m.centered(dimStyle.Render("waiting for the host  esc: leave")))
	}
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) renderTally(room *game.Room, result game.TallyResult) string {
	var sb strings.Builder
	sb.WriteString("Votes\n")
	for _, count := range result.Counts {
		label := "no imposter"
		if count.TargetID != game.NoImposterVote {
			if p := room.Player(count.TargetID); p != nil {
				label = p.Name
			}
		}
		marker := "  "
		if count.TargetID == result.TopSuspect {
			marker = checkIcon + " "
		}
		sb.WriteString(fmt.Sprintf("%s%-16s %d\n", marker, label, count.Count))
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderBallot lists who each player accused.
func (m *Model) renderBallot(room *game.Room) string {
	var sb strings.Builder
	for i := range room.Players {
		p := &room.Players[i]
		target := "no imposter"
		if p.Vote != game.NoImposterVote {
			if suspect := room.Player(p.Vote); suspect != nil {
				target = suspect.Name
			}
		}
		name := p.Name
		if p.IsImposter {
			name = name + " " + imposterIcon
		}
		sb.WriteString(fmt.Sprintf("%s voted %s\n", name, target))
	}
	return dimStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// secretWord returns the word the non-imposters shared.
func secretWord(room *game.Room) string {
	for i := range room.Players {
		if !room.Players[i].IsImposter && room.Players[i].Word != "" {
			return room.Players[i].Word
		}
	}
	return ""
}
