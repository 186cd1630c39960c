package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bgpartygames/odd-one-out/internal/client"
	"github.com/bgpartygames/odd-one-out/internal/game"
)

// handleKeyPress routes keys by screen. It returns true when the key
// was consumed and must not reach the text input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.client.Close()
		return true, tea.Quit
	}

	switch m.screen {
	case ScreenConnecting:
		if msg.Type == tea.KeyEsc {
			m.client.Close()
			return true, tea.Quit
		}

	case ScreenProfile:
		if msg.Type == tea.KeyEnter {
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.err = "name cannot be empty"
				return true, nil
			}
			m.nickname = name
			m.saved.Nickname = name
			_ = client.SaveSession(m.saved)
			m.screen = ScreenMenu
			m.err = ""
			m.input.Reset()
			return true, nil
		}

	case ScreenMenu:
		return m.handleMenuKey(msg)

	case ScreenJoin:
		switch msg.Type {
		case tea.KeyEsc:
			m.screen = ScreenMenu
			m.err = ""
			m.input.Reset()
			return true, nil
		case tea.KeyEnter:
			code := strings.TrimSpace(m.input.Value())
			if code == "" {
				return true, nil
			}
			m.input.Reset()
			_ = m.client.JoinRoom(code, m.nickname)
			return true, nil
		}

	case ScreenRoom:
		return m.handleRoomKey(msg)
	}

	return false, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.client.Close()
		return true, tea.Quit
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.err = ""

		switch input {
		case "", "1":
			theme, lang := m.selectedTheme()
			_ = m.client.CreateRoom(m.nickname, theme, lang)
		case "2":
			m.screen = ScreenJoin
			m.input.Placeholder = "Room code..."
			m.input.Focus()
		case "3":
			m.screen = ScreenProfile
			m.input.Placeholder = "Your name..."
			m.input.SetValue(m.nickname)
			m.input.Focus()
		default:
			// Anything else is treated as a room code.
			_ = m.client.JoinRoom(input, m.nickname)
		}
		return true, nil
	}
	return false, nil
}

func (m *Model) handleRoomKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.room == nil {
		return false, nil
	}

	switch m.room.Phase {
	case string(game.PhaseLobby):
		return m.handleLobbyKey(msg)
	case string(game.PhaseGame):
		return m.handleGameKey(msg)
	case string(game.PhaseVoting):
		return m.handleVotingKey(msg)
	case string(game.PhaseResults):
		return m.handleResultsKey(msg)
	}
	return false, nil
}

func (m *Model) handleLobbyKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.leaveRoom()
		return true, nil
	}

	key := msg.String()
	switch key {
	case "s", "S":
		if m.isHost() {
			_ = m.client.StartGame()
		}
		return true, nil
	case "t", "T":
		if m.isHost() && len(m.themes) > 0 {
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
			theme, lang := m.selectedTheme()
			_ = m.client.SetTheme(theme, lang)
		}
		return true, nil
	case "l", "L":
		if m.isHost() && len(m.langs) > 0 {
			m.langIdx = (m.langIdx + 1) % len(m.langs)
			theme, lang := m.selectedTheme()
			_ = m.client.SetTheme(theme, lang)
		}
		return true, nil
	}
	return true, nil
}

func (m *Model) handleGameKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveRoom()
		return true, nil
	case tea.KeyEnter:
		if !m.isMyTurn() {
			return true, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return true, nil
		}
		m.input.Reset()
		_ = m.client.SubmitClue(text)
		return true, nil
	}
	// Let typed runes reach the clue input only on the player's turn.
	return !m.isMyTurn(), nil
}

func (m *Model) handleVotingKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	candidates := m.voteCandidates()

	switch msg.Type {
	case tea.KeyEsc:
		m.leaveRoom()
		return true, nil
	case tea.KeyUp:
		if m.voteIdx > 0 {
			m.voteIdx--
		}
		return true, nil
	case tea.KeyDown:
		if m.voteIdx < len(candidates)-1 {
			m.voteIdx++
		}
		return true, nil
	case tea.KeyEnter:
		// Votes stay changeable until the last one closes the ballot.
		if m.voteIdx < len(candidates) {
			_ = m.client.CastVote(candidates[m.voteIdx])
		}
		return true, nil
	}

	if key := msg.String(); key == "r" || key == "R" {
		if m.isHost() {
			_ = m.client.Reveal()
		}
		return true, nil
	}
	return true, nil
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.leaveRoom()
		return true, nil
	}

	key := msg.String()
	switch key {
	case "p", "P":
		if m.isHost() {
			_ = m.client.PlayAgain()
		}
		return true, nil
	case "e", "E":
		if m.isHost() {
			_ = m.client.EndGame()
		}
		return true, nil
	}
	return true, nil
}

// selectedTheme returns the theme and language under the menu cursors,
// with safe defaults before the theme list arrives.
func (m *Model) selectedTheme() (string, string) {
	theme := ""
	lang := "en"
	if len(m.themes) > 0 {
		theme = m.themes[m.themeIdx%len(m.themes)]
	}
	if len(m.langs) > 0 {
		lang = m.langs[m.langIdx%len(m.langs)]
	}
	return theme, lang
}
