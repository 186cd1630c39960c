// Package ui implements the terminal client with Bubble Tea. One model
// drives the whole session; the view switches on the connection state
// and, once in a room, on the room phase reported by the server.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bgpartygames/odd-one-out/internal/client"
	"github.com/bgpartygames/odd-one-out/internal/game"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
	"github.com/bgpartygames/odd-one-out/internal/sound"
)

// Screen is the client-side screen, before and outside a room. Inside
// a room the server's room phase drives the view instead.
type Screen int

const (
	ScreenConnecting Screen = iota
	ScreenProfile
	ScreenMenu
	ScreenJoin
	ScreenRoom
)

// ServerMessage wraps a protocol message as a tea.Msg.
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg signals the initial dial succeeded.
type ConnectedMsg struct{}

// ConnectionErrorMsg signals the dial or the connection failed.
type ConnectionErrorMsg struct {
	Err error
}

// ReconnectingMsg reports reconnect progress.
type ReconnectingMsg struct {
	Attempt  int
	MaxTries int
}

// ResumedMsg signals a successful reconnect and identity resume.
type ResumedMsg struct{}

// ClearErrorMsg clears a transient error banner.
type ClearErrorMsg struct{}

// ClearNoticeMsg clears a transient notice banner.
type ClearNoticeMsg struct{}

// Model is the Bubble Tea model for the whole client.
type Model struct {
	client *client.Client
	screen Screen
	err    string
	notice string

	nickname string

	room     *protocol.RoomSnapshot
	themes   []string
	langs    []string
	themeIdx int
	langIdx  int

	// Cursor over vote candidates during voting.
	voteIdx int

	reconnecting     bool
	reconnectMessage string
	reconnectChan    chan tea.Msg

	saved *client.SavedSession

	soundManager *sound.Manager
	prevTurnMine bool
	prevPhase    string

	input  textinput.Model
	width  int
	height int
}

// NewModel creates the client model for the given server URL.
func NewModel(serverURL string) *Model {
	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 26
	ti.Focus()

	c := client.NewClient(serverURL)
	reconnectChan := make(chan tea.Msg, 10)

	saved, err := client.LoadSession()
	if err != nil {
		saved = &client.SavedSession{}
	}

	m := &Model{
		client:        c,
		screen:        ScreenConnecting,
		input:         ti,
		reconnectChan: reconnectChan,
		saved:         saved,
		nickname:      saved.Nickname,
		soundManager:  sound.NewManager(),
	}

	c.OnReconnecting = func(attempt, max int) {
		select {
		case reconnectChan <- ReconnectingMsg{Attempt: attempt, MaxTries: max}:
		default:
		}
	}
	c.OnResumed = func() {
		select {
		case reconnectChan <- ResumedMsg{}:
		default:
		}
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	go func() {
		_ = m.soundManager.Init()
	}()

	return tea.Batch(
		m.connectToServer(),
		textinput.Blink,
		m.listenForReconnect(),
	)
}

func (m *Model) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *Model) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

func (m *Model) listenForReconnect() tea.Cmd {
	return func() tea.Msg {
		return <-m.reconnectChan
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		handled, returnCmd := m.handleKeyPress(msg)
		if handled {
			return m, returnCmd
		}

	case ConnectedMsg:
		m.client.StartHeartbeat()
		if m.nickname == "" {
			m.screen = ScreenProfile
			m.input.Placeholder = "Your name..."
			m.input.Reset()
			m.input.Focus()
		} else {
			m.screen = ScreenMenu
			m.input.Reset()
		}
		cmds = append(cmds, m.listenForMessages())
		_ = m.client.GetThemes()

		// Try to land back in the room from the previous run.
		if m.saved.ResumeToken != "" {
			m.client.ResumeToken = m.saved.ResumeToken
			_ = m.client.Resume()
		}

	case ConnectionErrorMsg:
		m.err = fmt.Sprintf("cannot reach server: %v (esc to quit)", msg.Err)
		m.screen = ScreenConnecting

	case ReconnectingMsg:
		m.reconnecting = true
		m.reconnectMessage = fmt.Sprintf("reconnecting (%d/%d)...", msg.Attempt, msg.MaxTries)
		cmds = append(cmds, m.listenForReconnect())

	case ResumedMsg:
		m.reconnecting = false
		m.reconnectMessage = ""
		m.notice = "reconnected"
		cmds = append(cmds, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return ClearNoticeMsg{}
		}))
		cmds = append(cmds, m.listenForReconnect())
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}

	case ClearErrorMsg:
		m.err = ""

	case ClearNoticeMsg:
		m.notice = ""

	case ServerMessage:
		cmd = m.handleServerMessage(msg.Msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// isHost reports whether the local player hosts the current room.
func (m *Model) isHost() bool {
	return m.room != nil && m.room.HostID == m.client.PlayerID
}

// myPlayer returns the local player's entry in the snapshot.
func (m *Model) myPlayer() *protocol.PlayerSnapshot {
	if m.room == nil {
		return nil
	}
	for i := range m.room.Players {
		if m.room.Players[i].ID == m.client.PlayerID {
			return &m.room.Players[i]
		}
	}
	return nil
}

// isMyTurn reports whether the local player gives the next clue.
func (m *Model) isMyTurn() bool {
	if m.room == nil || m.room.Phase != string(game.PhaseGame) {
		return false
	}
	if m.room.Turn < 0 || m.room.Turn >= len(m.room.Players) {
		return false
	}
	return m.room.Players[m.room.Turn].ID == m.client.PlayerID
}

// voteCandidates lists the selectable suspects: every other player,
// then the no-imposter option.
func (m *Model) voteCandidates() []string {
	if m.room == nil {
		return nil
	}
	var out []string
	for _, p := range m.room.Players {
		if p.ID != m.client.PlayerID {
			out = append(out, p.ID)
		}
	}
	out = append(out, game.NoImposterVote)
	return out
}

func (m *Model) leaveRoom() {
	_ = m.client.LeaveRoom()
	m.room = nil
	m.screen = ScreenMenu
	m.input.Reset()
	m.saved.RoomID = ""
	_ = client.SaveSession(m.saved)
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.screen {
	case ScreenConnecting:
		content = m.connectingView()
	case ScreenProfile:
		content = m.profileView()
	case ScreenMenu:
		content = m.menuView()
	case ScreenJoin:
		content = m.joinView()
	case ScreenRoom:
		content = m.roomView()
	}

	return docStyle.Render(content)
}
