package protocol

// --- Client request payloads ---

// ResumePayload asks the server to restore a previous identity.
type ResumePayload struct {
	Token string `json:"token"`
}

// PingPayload carries the client timestamp in milliseconds.
type PingPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// CreateRoomPayload creates a room with the caller as host.
type CreateRoomPayload struct {
	Name  string `json:"name"`
	Theme string `json:"theme,omitempty"`
	Lang  string `json:"lang,omitempty"`
}

// JoinRoomPayload joins an existing room.
type JoinRoomPayload struct {
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
}

// SetThemePayload changes the room theme before the game starts.
type SetThemePayload struct {
	Theme string `json:"theme"`
	Lang  string `json:"lang"`
}

// SubmitCluePayload submits the caller's clue for the current turn.
type SubmitCluePayload struct {
	Text string `json:"text"`
}

// CastVotePayload votes for a suspected imposter. SuspectID is a player
// id or the NO_IMPOSTER sentinel.
type CastVotePayload struct {
	SuspectID string `json:"suspect_id"`
}

// --- Server response payloads ---

// ConnectedPayload reports the assigned identity.
type ConnectedPayload struct {
	PlayerID    string `json:"player_id"`
	ResumeToken string `json:"resume_token"`
}

// ResumedPayload reports a restored identity and, if the player was in a
// room, the current snapshot of it.
type ResumedPayload struct {
	PlayerID    string        `json:"player_id"`
	ResumeToken string        `json:"resume_token"`
	Room        *RoomSnapshot `json:"room,omitempty"`
}

// PongPayload echoes the client timestamp for latency measurement.
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// RoomDeletedPayload tells subscribers the room is gone.
type RoomDeletedPayload struct {
	RoomID string `json:"room_id"`
}

// ThemeListPayload lists the available themes and languages.
type ThemeListPayload struct {
	Themes    []string `json:"themes"`
	Languages []string `json:"languages"`
}

// ErrorPayload is sent when an action is rejected.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- Shared data structures ---

// RoomSnapshot is a personalized view of a room document. Secret fields
// of other players are blanked while the game is running.
type RoomSnapshot struct {
	ID          string           `json:"id"`
	HostID      string           `json:"hostId"`
	Phase       string           `json:"phase"`
	Theme       string           `json:"theme"`
	ThemeLang   string           `json:"themeLang"`
	HasImposter bool             `json:"hasImposter"`
	Turn        int              `json:"turn"`
	Round       int              `json:"round"`
	Version     int64            `json:"version"`
	Players     []PlayerSnapshot `json:"players"`
}

// PlayerSnapshot is one player's entry in a RoomSnapshot.
type PlayerSnapshot struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Word       string   `json:"word,omitempty"`
	IsImposter bool     `json:"isImposter,omitempty"`
	Clues      []string `json:"clues"`
	Vote       string   `json:"vote,omitempty"`
	HasVoted   bool     `json:"hasVoted,omitempty"`
}
