package server

import (
	"context"
	"errors"
	"log"

	"github.com/bgpartygames/odd-one-out/internal/apperrors"
	"github.com/bgpartygames/odd-one-out/internal/game"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
	"github.com/bgpartygames/odd-one-out/internal/store"
)

// casRetries bounds how often a transition is re-applied after losing a
// compare-and-swap race.
const casRetries = 3

// Handler dispatches client messages to room transitions.
type Handler struct {
	server   *Server
	handlers map[protocol.MessageType]handlerFunc
}

type handlerFunc func(c *Client, msg *protocol.Message)

// NewHandler creates the message handler.
func NewHandler(s *Server) *Handler {
	h := &Handler{server: s}
	h.initHandlers()
	return h
}

func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// Connection
		protocol.MsgResume: h.handleResume,
		protocol.MsgPing:   h.handlePing,

		// Room actions
		protocol.MsgCreateRoom: h.handleCreateRoom,
		protocol.MsgJoinRoom:   h.handleJoinRoom,
		protocol.MsgLeaveRoom:  func(c *Client, _ *protocol.Message) { h.handleLeaveRoom(c) },
		protocol.MsgSetTheme:   h.handleSetTheme,
		protocol.MsgStartGame:  func(c *Client, _ *protocol.Message) { h.handleStartGame(c) },
		protocol.MsgEndGame:    func(c *Client, _ *protocol.Message) { h.handleEndGame(c) },

		// Game actions
		protocol.MsgSubmitClue: h.handleSubmitClue,
		protocol.MsgCastVote:   h.handleCastVote,
		protocol.MsgReveal:     func(c *Client, _ *protocol.Message) { h.handleReveal(c) },
		protocol.MsgPlayAgain:  func(c *Client, _ *protocol.Message) { h.handlePlayAgain(c) },

		// Queries
		protocol.MsgGetThemes: func(c *Client, _ *protocol.Message) { h.handleGetThemes(c) },
	}
}

// Handle routes one message.
func (h *Handler) Handle(c *Client, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(c, msg)
		return
	}

	log.Printf("unknown message type %q from player %s", msg.Type, c.PlayerID())
	c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// mutateRoom applies a transition to the client's current room with
// optimistic concurrency: load, apply, compare-and-swap, and on a lost
// race reload so the transition always sees a consistent prior state.
func (h *Handler) mutateRoom(c *Client, fn func(*game.Room) error) {
	roomID := c.Room()
	if roomID == "" {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	ctx := context.Background()
	for range casRetries {
		room, err := h.server.roomStore.Get(ctx, roomID)
		if err != nil {
			h.sendStoreError(c, err)
			return
		}

		if err := fn(room); err != nil {
			h.sendGameError(c, err)
			return
		}

		err = h.server.roomStore.CompareAndSwap(ctx, room)
		if errors.Is(err, store.ErrConflict) {
			continue
		}
		if err != nil {
			h.sendStoreError(c, err)
		}
		return
	}

	c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeConflict))
}

func (h *Handler) sendGameError(c *Client, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		c.SendMessage(protocol.NewErrorMessage(gameErr.Code))
		return
	}
	c.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

func (h *Handler) sendStoreError(c *Client, err error) {
	if errors.Is(err, store.ErrNotFound) {
		// Room vanished under us; reset the client like a remote delete.
		roomID := c.Room()
		h.server.unsubscribeClient(c)
		c.Session().SetRoom("")
		c.SendMessage(protocol.MustNewMessage(protocol.MsgRoomDeleted, protocol.RoomDeletedPayload{
			RoomID: roomID,
		}))
		return
	}
	c.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

// autoReveal flips voting to results on the host's behalf the moment
// the last vote lands, so no client round-trip can race it.
func autoReveal(room *game.Room) {
	if room.Phase == game.PhaseVoting && room.AllVoted() {
		_ = room.Reveal(room.HostID)
	}
}
