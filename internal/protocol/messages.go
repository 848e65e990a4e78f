// Package protocol defines the wire messages spoken by the showdown server
// over both the websocket and HTTP endpoints. Everything is JSON.
package protocol

import (
	"encoding/json"
	"errors"
)

// MessageType identifies the type of a websocket envelope
type MessageType string

const (
	// Client -> Server
	TypeEvaluate MessageType = "evaluate"

	// Server -> Client
	TypeResult MessageType = "result"
	TypeError  MessageType = "error"
)

// ErrUnknownMessageType is returned for envelopes the server cannot route.
var ErrUnknownMessageType = errors.New("unknown message type")

// Message is the websocket envelope. Data carries the type-specific payload.
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewMessage wraps a payload in an envelope of the given type.
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Data: data}, nil
}

// Player is one entrant in an evaluation request. Cards holds exactly five
// tokens in rank-then-suit notation (e.g. "10H", "AS").
type Player struct {
	ID    string   `json:"id"`
	Name  string   `json:"name,omitempty"`
	Cards []string `json:"cards"`
}

// EvaluateRequest asks the server to pick a winner among the given players.
// RequestID is optional; the server assigns one when absent.
type EvaluateRequest struct {
	RequestID string   `json:"request_id,omitempty"`
	Players   []Player `json:"players"`
}

// EvaluateResponse carries the evaluation outcome. WinnerID is null when the
// request held no players; that is the no-winner outcome, not an error.
type EvaluateResponse struct {
	RequestID  string  `json:"request_id"`
	WinnerID   *string `json:"winner_id"`
	WinnerName string  `json:"winner_name,omitempty"`
	Category   string  `json:"category,omitempty"`
	Profile    []int   `json:"profile,omitempty"`
}

// Error reports a rejected request
type Error struct {
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}
