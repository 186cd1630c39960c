package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(MsgJoinRoom, JoinRoomPayload{
		RoomID: "123456",
		Name:   "Alice",
	})

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgJoinRoom, decoded.Type)

	payload, err := ParsePayload[JoinRoomPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "123456", payload.RoomID)
	assert.Equal(t, "Alice", payload.Name)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestNewMessage_NilPayload(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(MsgLeaveRoom, nil)
	assert.Equal(t, MsgLeaveRoom, msg.Type)
	assert.Nil(t, msg.Payload)
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(ErrCodeNotHost)
	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeNotHost, payload.Code)
	assert.Equal(t, ErrorMessages[ErrCodeNotHost], payload.Message)

	// Unknown codes fall back to the generic text.
	msg = NewErrorMessage(9999)
	payload, err = ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrorMessages[ErrCodeUnknown], payload.Message)
}
