package protocol

// Error codes.
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeRoomNotFound   = 2001
	ErrCodeNameTaken      = 2002
	ErrCodeNotInRoom      = 2003
	ErrCodeGameInProgress = 2004
	ErrCodeEmptyName      = 2005
	ErrCodeConflict       = 2006 // concurrent update, retry the action

	ErrCodeNotHost          = 3001
	ErrCodeNotEnoughPlayers = 3002
	ErrCodeNotYourTurn      = 3003
	ErrCodeEmptyClue        = 3004
	ErrCodeClueLimit        = 3005
	ErrCodeWrongPhase       = 3006
	ErrCodeVotingClosed     = 3007
	ErrCodeInvalidSuspect   = 3008
	ErrCodeVotesOutstanding = 3009
	ErrCodeUnknownTheme     = 3010
)

// ErrorMessages maps error codes to user-facing text.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:    "unknown error",
	ErrCodeInvalidMsg: "invalid message format",

	ErrCodeRoomNotFound:   "room not found",
	ErrCodeNameTaken:      "that name is already taken in this room",
	ErrCodeNotInRoom:      "you are not in a room",
	ErrCodeGameInProgress: "the game has already started",
	ErrCodeEmptyName:      "please enter a name",
	ErrCodeConflict:       "someone else acted first, try again",

	ErrCodeNotHost:          "only the host can do that",
	ErrCodeNotEnoughPlayers: "at least 3 players are needed to start",
	ErrCodeNotYourTurn:      "it is not your turn",
	ErrCodeEmptyClue:        "please enter a clue",
	ErrCodeClueLimit:        "you already gave a clue this round",
	ErrCodeWrongPhase:       "that action is not allowed right now",
	ErrCodeVotingClosed:     "voting is already closed",
	ErrCodeInvalidSuspect:   "that player is not in the room",
	ErrCodeVotesOutstanding: "not everyone has voted yet",
	ErrCodeUnknownTheme:     "unknown theme or language",
}
