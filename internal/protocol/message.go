package protocol

import "encoding/json"

// Message is the envelope for every frame on the wire.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode serializes the message to JSON.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a JSON frame into a Message.
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MessageType identifies the kind of message.
type MessageType string

// Client → server message types.
const (
	// Connection
	MsgResume MessageType = "resume" // resume a previous identity
	MsgPing   MessageType = "ping"

	// Room actions
	MsgCreateRoom MessageType = "create_room"
	MsgJoinRoom   MessageType = "join_room"
	MsgLeaveRoom  MessageType = "leave_room"
	MsgSetTheme   MessageType = "set_theme" // host only, lobby only
	MsgStartGame  MessageType = "start_game"
	MsgEndGame    MessageType = "end_game" // host only, deletes the room

	// Game actions
	MsgSubmitClue MessageType = "submit_clue"
	MsgCastVote   MessageType = "cast_vote"
	MsgReveal     MessageType = "reveal"
	MsgPlayAgain  MessageType = "play_again"

	// Queries
	MsgGetThemes MessageType = "get_themes"
)

// Server → client message types.
const (
	MsgConnected   MessageType = "connected"
	MsgResumed     MessageType = "resumed"
	MsgPong        MessageType = "pong"
	MsgRoomState   MessageType = "room_state"   // full personalized snapshot
	MsgRoomDeleted MessageType = "room_deleted" // room gone, reset to menu
	MsgThemeList   MessageType = "theme_list"
	MsgError       MessageType = "error"
)
