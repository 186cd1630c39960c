package apperrors

import (
	"github.com/bgpartygames/odd-one-out/internal/protocol"
)

// GameError is a rejected room transition. The action caused no state
// change; the caller may correct and re-issue it.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func newError(code int) *GameError {
	return &GameError{Code: code, Message: protocol.ErrorMessages[code]}
}

// Predefined errors.
var (
	ErrRoomNotFound     = newError(protocol.ErrCodeRoomNotFound)
	ErrNameTaken        = newError(protocol.ErrCodeNameTaken)
	ErrNotInRoom        = newError(protocol.ErrCodeNotInRoom)
	ErrGameInProgress   = newError(protocol.ErrCodeGameInProgress)
	ErrEmptyName        = newError(protocol.ErrCodeEmptyName)
	ErrNotHost          = newError(protocol.ErrCodeNotHost)
	ErrNotEnoughPlayers = newError(protocol.ErrCodeNotEnoughPlayers)
	ErrNotYourTurn      = newError(protocol.ErrCodeNotYourTurn)
	ErrEmptyClue        = newError(protocol.ErrCodeEmptyClue)
	ErrClueLimit        = newError(protocol.ErrCodeClueLimit)
	ErrWrongPhase       = newError(protocol.ErrCodeWrongPhase)
	ErrVotingClosed     = newError(protocol.ErrCodeVotingClosed)
	ErrInvalidSuspect   = newError(protocol.ErrCodeInvalidSuspect)
	ErrVotesOutstanding = newError(protocol.ErrCodeVotesOutstanding)
	ErrUnknownTheme     = newError(protocol.ErrCodeUnknownTheme)
)
