package server

import (
	"github.com/bgpartygames/odd-one-out/internal/game"
	"github.com/bgpartygames/odd-one-out/internal/protocol"
	"github.com/bgpartygames/odd-one-out/internal/wordbank"
)

func (h *Handler) handleStartGame(c *Client) {
	cfg := h.server.config.Game
	h.mutateRoom(c, func(room *game.Room) error {
		return room.Start(c.PlayerID(), game.StartConfig{
			Words:               wordbank.Words(room.Theme, room.ThemeLang),
			ImposterProbability: cfg.ImposterProbability,
			MinPlayers:          cfg.MinPlayers,
		})
	})
}

func (h *Handler) handleSubmitClue(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SubmitCluePayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.mutateRoom(c, func(room *game.Room) error {
		return room.SubmitClue(c.PlayerID(), payload.Text)
	})
}

func (h *Handler) handleCastVote(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CastVotePayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	h.mutateRoom(c, func(room *game.Room) error {
		if err := room.CastVote(c.PlayerID(), payload.SuspectID); err != nil {
			return err
		}
		autoReveal(room)
		return nil
	})
}

func (h *Handler) handleReveal(c *Client) {
	h.mutateRoom(c, func(room *game.Room) error {
		return room.Reveal(c.PlayerID())
	})
}

func (h *Handler) handlePlayAgain(c *Client) {
	h.mutateRoom(c, func(room *game.Room) error {
		return room.PlayAgain(c.PlayerID())
	})
}
