package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/bgpartygames/odd-one-out/internal/game"
)

func (m *Model) centered(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func (m *Model) banner(sb *strings.Builder) {
	if m.reconnectMessage != "" {
		sb.WriteString(m.centered(dimStyle.Render(m.reconnectMessage)))
		sb.WriteString("\n")
	}
	if m.notice != "" {
		sb.WriteString(m.centered(dimStyle.Render(m.notice)))
		sb.WriteString("\n")
	}
	if m.err != "" {
		sb.WriteString(m.centered(errorStyle.Render(m.err)))
		sb.WriteString("\n")
	}
}

func (m *Model) connectingView() string {
	var sb strings.Builder
	sb.WriteString(m.centered("🔌 connecting to server..."))
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) profileView() string {
	var sb strings.Builder
	sb.WriteString(m.centered(titleStyle("🕵️ Odd One Out")))
	sb.WriteString("\n\n")
	sb.WriteString(m.centered("Pick a name:"))
	sb.WriteString("\n\n")
	sb.WriteString(m.centered(m.input.View()))
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) menuView() string {
	var sb strings.Builder
	sb.WriteString(m.centered(titleStyle("🕵️ Odd One Out")))
	sb.WriteString("\n\n")

	if m.nickname != "" {
		sb.WriteString(m.centered(fmt.Sprintf("Welcome, %s!", m.nickname)))
		sb.WriteString("\n\n")
	}

	menu := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Choose:",
		"",
		"  1. Create room",
		"  2. Join room",
		"  3. Change name",
	))
	sb.WriteString(m.centered(menu))
	sb.WriteString("\n\n")

	m.input.Placeholder = "Option (1-3) or room code"
	sb.WriteString(m.centered(m.input.View()))
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) joinView() string {
	var sb strings.Builder
	sb.WriteString(m.centered(titleStyle("Join room")))
	sb.WriteString("\n\n")
	sb.WriteString(m.centered("Ask the host for the 6-digit code:"))
	sb.WriteString("\n\n")
	sb.WriteString(m.centered(m.input.View()))
	sb.WriteString("\n")
	sb.WriteString(m.centered(dimStyle.Render("esc: back")))
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) roomView() string {
	if m.room == nil {
		return "Loading..."
	}

	switch m.room.Phase {
	case string(game.PhaseLobby):
		return m.lobbyView()
	case string(game.PhaseGame):
		return m.gameView()
	case string(game.PhaseVoting):
		return m.votingView()
	case string(game.PhaseResults):
		return m.resultsView()
	}
	return "Loading..."
}

func (m *Model) lobbyView() string {
	var sb strings.Builder
	sb.WriteString(m.centered(titleStyle("🕵️ Odd One Out — Lobby")))
	sb.WriteString("\n\n")

	code := fmt.Sprintf("Room code: %s", selectStyle.Render(m.room.ID))
	theme := fmt.Sprintf("Theme: %s (%s)", m.room.Theme, m.room.ThemeLang)
	sb.WriteString(m.centered(code))
	sb.WriteString("\n")
	sb.WriteString(m.centered(theme))
	sb.WriteString("\n\n")

	if qr := renderShareCode(m.room.ID); qr != "" {
		sb.WriteString(m.centered(qr))
		sb.WriteString("\n")
	}

	sb.WriteString(m.centered(m.renderPlayerList()))
	sb.WriteString("\n\n")

	if m.isHost() {
		hint := "s: start  t: theme  l: language  esc: leave"
		if len(m.room.Players) < 3 {
			hint = fmt.Sprintf("waiting for players (%d/3 minimum)  esc: leave", len(m.room.Players))
		}
		sb.WriteString(m.centered(dimStyle.Render(hint)))
	} else {
		sb.WriteString(m.centered(dimStyle.Render("waiting for the host to start  esc: leave")))
	}
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) gameView() string {
	var sb strings.Builder
	sb.WriteString(m.centered(titleStyle(fmt.Sprintf("Round %d of %d", m.room.Round, game.MaxRounds))))
	sb.WriteString("\n\n")

	if me := m.myPlayer(); me != nil {
		if me.IsImposter {
			sb.WriteString(m.centered(dangerStyle.Render("You are the imposter! Blend in.")))
			sb.WriteString("\n")
			sb.WriteString(m.centered(fmt.Sprintf("Theme: %s", m.room.Theme)))
		} else {
			sb.WriteString(m.centered(fmt.Sprintf("Your word: %s", wordStyle.Render(me.Word))))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.centered(m.renderClueBoard()))
	sb.WriteString("\n\n")

	if m.isMyTurn() {
		sb.WriteString(m.centered(turnStyle.Render("Your turn! Give a one-word clue:")))
		sb.WriteString("\n")
		sb.WriteString(m.centered(m.input.View()))
	} else if m.room.Turn >= 0 && m.room.Turn < len(m.room.Players) {
		waiting := fmt.Sprintf("Waiting for %s...", m.room.Players[m.room.Turn].Name)
		sb.WriteString(m.centered(dimStyle.Render(waiting)))
	}
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) votingView() string {
	var sb strings.Builder
	sb.WriteString(m.centered(titleStyle("🗳️ Who is the odd one out?")))
	sb.WriteString("\n\n")

	sb.WriteString(m.centered(m.renderClueBoard()))
	sb.WriteString("\n\n")

	sb.WriteString(m.centered(m.renderVoteMenu()))
	sb.WriteString("\n")

	me := m.myPlayer()
	if me != nil && me.HasVoted {
		voted := 0
		for _, p := range m.room.Players {
			if p.HasVoted {
				voted++
			}
		}
		sb.WriteString(m.centered(dimStyle.Render(fmt.Sprintf("%d/%d voted", voted, len(m.room.Players)))))
		sb.WriteString("\n")
		sb.WriteString(m.centered(dimStyle.Render("↑/↓: select  enter: change vote")))
		if m.isHost() {
			sb.WriteString("\n")
			sb.WriteString(m.centered(dimStyle.Render("r: reveal results once everyone voted")))
		}
	} else {
		sb.WriteString(m.centered(dimStyle.Render("↑/↓: select  enter: vote")))
	}
	sb.WriteString("\n")
	m.banner(&sb)
	return sb.String()
}

func (m *Model) renderVoteMenu() string {
	var sb strings.Builder
	for i, id := range m.voteCandidates() {
		label := "Nobody, there is no imposter"
		if id != game.NoImposterVote {
			for _, p := range m.room.Players {
				if p.ID == id {
					label = p.Name
					break
				}
			}
		}
		cursor := "  "
		if i == m.voteIdx {
			cursor = "> "
			label = selectStyle.Render(label)
		}
		if me := m.myPlayer(); me != nil && me.HasVoted && me.Vote == id {
			label += " " + checkIcon
		}
		sb.WriteString(cursor + label + "\n")
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderPlayerList shows the roster, marking the host and the local
// player.
func (m *Model) renderPlayerList() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Players (%d)\n", len(m.room.Players)))
	for _, p := range m.room.Players {
		line := "  " + p.Name
		if p.ID == m.room.HostID {
			line = "  " + hostIcon + " " + hostStyle.Render(p.Name)
		}
		if p.ID == m.client.PlayerID {
			line += dimStyle.Render(" (you)")
		}
		sb.WriteString(line + "\n")
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderClueBoard shows each player's clues, highlighting whose turn
// it is.
func (m *Model) renderClueBoard() string {
	var sb strings.Builder
	for i, p := range m.room.Players {
		name := p.Name
		if i == m.room.Turn && m.room.Phase == string(game.PhaseGame) {
			name = turnStyle.Render("▶ " + name)
		}
		clues := strings.Join(p.Clues, ", ")
		if clues == "" {
			clues = dimStyle.Render("—")
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", name, clues))
	}
	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// renderShareCode draws a scannable QR of the room code so phone
// players can grab it off the host's screen.
func renderShareCode(roomID string) string {
	qr, err := qrcode.New(roomID, qrcode.Low)
	if err != nil {
		return ""
	}
	return qr.ToSmallString(false)
}
