package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bgpartygames/odd-one-out/internal/game"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
	"github.com/bgpartygames/odd-one-out/internal/store"
	"github.com/bgpartygames/odd-one-out/internal/wordbank"
)

func (h *Handler) handlePing(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	c.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// handleResume restores a previous identity and, when the player is
// still part of a live room, re-subscribes and replays the snapshot.
func (h *Handler) handleResume(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ResumePayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	session := h.server.identity.Resume(payload.Token)
	if session == nil {
		c.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "unknown resume token"))
		return
	}
	c.SetSession(session)

	resumed := protocol.ResumedPayload{
		PlayerID:    session.PlayerID,
		ResumeToken: session.ResumeToken,
	}

	if roomID := session.Room(); roomID != "" {
		room, err := h.server.roomStore.Get(context.Background(), roomID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			session.SetRoom("")
		case err != nil:
			log.Printf("resume: load room %s: %v", roomID, err)
		case room.Player(session.PlayerID) == nil:
			session.SetRoom("")
		default:
			h.server.subscribeClient(c, roomID)
			c.SetName(room.Player(session.PlayerID).Name)
			resumed.Room = room.SnapshotFor(session.PlayerID)
		}
	}

	c.SendMessage(protocol.MustNewMessage(protocol.MsgResumed, resumed))
}

func (h *Handler) handleCreateRoom(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	theme, lang := payload.Theme, payload.Lang
	if theme == "" {
		theme = wordbank.ThemeNames()[0]
	}
	if lang == "" {
		lang = wordbank.LangEN
	}
	if !wordbank.Has(theme, lang) {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknownTheme))
		return
	}

	// Leaving an old room first mirrors re-creating from a stale tab.
	if c.Room() != "" {
		h.handleLeaveRoom(c)
	}

	room, err := game.NewRoom(c.PlayerID(), payload.Name, theme, lang)
	if err != nil {
		h.sendGameError(c, err)
		return
	}

	if err := h.server.roomStore.Create(context.Background(), room); err != nil {
		c.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
		return
	}

	c.SetName(room.Players[0].Name)
	h.server.subscribeClient(c, room.ID)
	c.SendMessage(protocol.MustNewMessage(protocol.MsgRoomState, room.SnapshotFor(c.PlayerID())))

	log.Printf("room %s created by %s", room.ID, c.Name())
}

func (h *Handler) handleJoinRoom(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if c.Room() != "" && c.Room() != payload.RoomID {
		h.handleLeaveRoom(c)
	}

	ctx := context.Background()
	for range casRetries {
		room, err := h.server.roomStore.Get(ctx, payload.RoomID)
		if errors.Is(err, store.ErrNotFound) {
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeRoomNotFound))
			return
		}
		if err != nil {
			c.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
			return
		}

		alreadyIn := room.Player(c.PlayerID()) != nil
		if err := room.Join(c.PlayerID(), payload.Name); err != nil {
			h.sendGameError(c, err)
			return
		}

		if !alreadyIn {
			err = h.server.roomStore.CompareAndSwap(ctx, room)
			if errors.Is(err, store.ErrConflict) {
				continue
			}
			if err != nil {
				h.sendStoreError(c, err)
				return
			}
		}

		c.SetName(room.Player(c.PlayerID()).Name)
		h.server.subscribeClient(c, room.ID)
		c.SendMessage(protocol.MustNewMessage(protocol.MsgRoomState, room.SnapshotFor(c.PlayerID())))

		log.Printf("player %s joined room %s", c.Name(), room.ID)
		return
	}

	c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeConflict))
}

// handleLeaveRoom removes the player from the room document. A room
// with zero players must not persist, so the last leaver deletes it.
func (h *Handler) handleLeaveRoom(c *Client) {
	roomID := c.Room()
	if roomID == "" {
		return
	}

	ctx := context.Background()
	for range casRetries {
		room, err := h.server.roomStore.Get(ctx, roomID)
		if err != nil {
			break // already gone, nothing to clean up
		}

		if empty := room.Leave(c.PlayerID()); empty {
			// best-effort: the room expires on its own if this fails
			if err := h.server.roomStore.Delete(ctx, roomID); err != nil {
				log.Printf("delete empty room %s: %v", roomID, err)
			}
			break
		}

		autoReveal(room)

		err = h.server.roomStore.CompareAndSwap(ctx, room)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			log.Printf("leave room %s: %v", roomID, err)
		}
		break
	}

	h.server.unsubscribeClient(c)
	c.Session().SetRoom("")
	log.Printf("player %s left room %s", c.PlayerID(), roomID)
}

func (h *Handler) handleSetTheme(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SetThemePayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if !wordbank.Has(payload.Theme, payload.Lang) {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknownTheme))
		return
	}

	h.mutateRoom(c, func(room *game.Room) error {
		return room.SetTheme(c.PlayerID(), payload.Theme, payload.Lang)
	})
}

// handleEndGame deletes the room outright. Host only.
func (h *Handler) handleEndGame(c *Client) {
	roomID := c.Room()
	if roomID == "" {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	ctx := context.Background()
	room, err := h.server.roomStore.Get(ctx, roomID)
	if err != nil {
		h.sendStoreError(c, err)
		return
	}
	if room.HostID != c.PlayerID() {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotHost))
		return
	}

	if err := h.server.roomStore.Delete(ctx, roomID); err != nil {
		c.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
		return
	}
	log.Printf("room %s ended by host %s", roomID, c.PlayerID())
}

func (h *Handler) handleGetThemes(c *Client) {
	c.SendMessage(protocol.MustNewMessage(protocol.MsgThemeList, protocol.ThemeListPayload{
		Themes:    wordbank.ThemeNames(),
		Languages: wordbank.Languages(),
	}))
}
