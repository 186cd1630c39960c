package client

import (
	"time"

	"github.com/bgpartygames/odd-one-out/internal/protocol"
)

// --- Convenience senders ---

// CreateRoom creates a room with the caller as host.
func (c *Client) CreateRoom(name, theme, lang string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		Name:  name,
		Theme: theme,
		Lang:  lang,
	}))
}

// JoinRoom joins an existing room by its code.
func (c *Client) JoinRoom(roomID, name string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomID: roomID,
		Name:   name,
	}))
}

// LeaveRoom leaves the current room.
func (c *Client) LeaveRoom() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgLeaveRoom, nil))
}

// SetTheme changes the room theme (host only, lobby only).
func (c *Client) SetTheme(theme, lang string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgSetTheme, protocol.SetThemePayload{
		Theme: theme,
		Lang:  lang,
	}))
}

// StartGame starts the round (host only).
func (c *Client) StartGame() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgStartGame, nil))
}

// EndGame deletes the room for everyone (host only).
func (c *Client) EndGame() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgEndGame, nil))
}

// SubmitClue submits the caller's clue for the current turn.
func (c *Client) SubmitClue(text string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgSubmitClue, protocol.SubmitCluePayload{
		Text: text,
	}))
}

// CastVote votes for a suspect, or NO_IMPOSTER.
func (c *Client) CastVote(suspectID string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgCastVote, protocol.CastVotePayload{
		SuspectID: suspectID,
	}))
}

// Reveal closes voting and shows results (host only).
func (c *Client) Reveal() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgReveal, nil))
}

// PlayAgain resets the room back to the lobby (host only).
func (c *Client) PlayAgain() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlayAgain, nil))
}

// GetThemes asks for the available theme list.
func (c *Client) GetThemes() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetThemes, nil))
}

// Ping sends a heartbeat carrying the current timestamp.
func (c *Client) Ping() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}
