package protocol

import (
	"encoding/json"
	"fmt"
)

// NewMessage builds a message with a JSON-encoded payload.
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	if payload == nil {
		return &Message{Type: msgType}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", msgType, err)
	}
	return &Message{Type: msgType, Payload: data}, nil
}

// MustNewMessage is NewMessage for payloads that cannot fail to encode.
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// NewErrorMessage builds an error message from a known code.
func NewErrorMessage(code int) *Message {
	text, ok := ErrorMessages[code]
	if !ok {
		text = ErrorMessages[ErrCodeUnknown]
	}
	return NewErrorMessageWithText(code, text)
}

// NewErrorMessageWithText builds an error message with explicit text.
func NewErrorMessageWithText(code int, text string) *Message {
	return MustNewMessage(MsgError, ErrorPayload{Code: code, Message: text})
}

// ParsePayload decodes a message payload into the given type.
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", msg.Type, err)
	}
	return &payload, nil
}
