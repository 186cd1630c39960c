package ui

import (
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bgpartygames/odd-one-out/internal/client"
	"github.com/bgpartygames/odd-one-out/internal/game"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
	"github.com/bgpartygames/odd-one-out/internal/sound"
)

// handleServerMessage dispatches an incoming message by type.
func (m *Model) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	case protocol.MsgConnected:
		return m.handleMsgConnected(msg)
	case protocol.MsgResumed:
		return m.handleMsgResumed(msg)
	case protocol.MsgRoomState:
		return m.handleMsgRoomState(msg)
	case protocol.MsgRoomDeleted:
		return m.handleMsgRoomDeleted(msg)
	case protocol.MsgThemeList:
		return m.handleMsgThemeList(msg)
	case protocol.MsgError:
		return m.handleMsgError(msg)
	}
	return nil
}

func (m *Model) handleMsgConnected(msg *protocol.Message) tea.Cmd {
	var payload protocol.ConnectedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil
	}

	// Only adopt the fresh identity when there is no previous one to
	// resume, otherwise the resume reply is authoritative.
	if m.saved.ResumeToken == "" {
		m.saved.ResumeToken = payload.ResumeToken
		_ = client.SaveSession(m.saved)
	}
	return nil
}

func (m *Model) handleMsgResumed(msg *protocol.Message) tea.Cmd {
	var payload protocol.ResumedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil
	}

	m.saved.ResumeToken = payload.ResumeToken
	_ = client.SaveSession(m.saved)

	if payload.Room != nil {
		m.applySnapshot(payload.Room)
	}
	return nil
}

func (m *Model) handleMsgRoomState(msg *protocol.Message) tea.Cmd {
	var snap protocol.RoomSnapshot
	if err := json.Unmarshal(msg.Payload, &snap); err != nil {
		return nil
	}
	m.applySnapshot(&snap)
	return nil
}

// applySnapshot installs a new room snapshot and reacts to what
// changed: phase flips, turn handoffs, input focus.
func (m *Model) applySnapshot(snap *protocol.RoomSnapshot) {
	m.room = snap
	m.screen = ScreenRoom

	if m.saved.RoomID != snap.ID {
		m.saved.RoomID = snap.ID
		_ = client.SaveSession(m.saved)
	}

	if snap.Phase != m.prevPhase {
		m.voteIdx = 0
		if snap.Phase == string(game.PhaseResults) {
			m.soundManager.Play(sound.SoundReveal)
		}
		m.prevPhase = snap.Phase
		m.prevTurnMine = false
	}

	mine := m.isMyTurn()
	if mine && !m.prevTurnMine {
		m.soundManager.Play(sound.SoundYourTurn)
	}
	m.prevTurnMine = mine

	if mine {
		m.input.Placeholder = "Your clue..."
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) handleMsgRoomDeleted(msg *protocol.Message) tea.Cmd {
	m.room = nil
	m.screen = ScreenMenu
	m.input.Reset()
	m.notice = "the room was closed"
	m.saved.RoomID = ""
	_ = client.SaveSession(m.saved)

	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

func (m *Model) handleMsgThemeList(msg *protocol.Message) tea.Cmd {
	var payload protocol.ThemeListPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil
	}
	m.themes = payload.Themes
	m.langs = payload.Languages
	return nil
}

func (m *Model) handleMsgError(msg *protocol.Message) tea.Cmd {
	var payload protocol.ErrorPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil
	}
	m.err = payload.Message

	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
