package protocol

import (
	"encoding/json"

	"euchre-game/internal/game"
	"euchre-game/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // e.g. "join_table", "game_action"
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// --- Client -> Server Payload Structs ---

type CreateTablePayload struct {
	Name     string      `json:"name"`
	Position shared.Seat `json:"position,omitempty"` // requested seat, optional
}

type JoinTablePayload struct {
	Name      string      `json:"name"`
	TableCode string      `json:"table_code"`
	Position  shared.Seat `json:"position,omitempty"`
}

type TakeSeatPayload struct {
	Position shared.Seat `json:"position"`
}

type ChatPayload struct {
	Text string `json:"text"`
}

// GameActionPayload carries any of the engine actions. Action is one of
// "deal", "bid", "discard", "play_card" or "new_game".
type GameActionPayload struct {
	Action    string      `json:"action"`
	Bid       bool        `json:"bid,omitempty"`
	Suit      shared.Suit `json:"suit,omitempty"`
	CardIndex int         `json:"cardIndex"`
}

// --- Server -> Client Payload Structs ---

type WelcomePayload struct {
	ClientID string `json:"client_id"`
}

type TableCreatedPayload struct {
	TableCode string `json:"table_code"`
}

type JoinErrorPayload struct {
	Message string `json:"message"`
}

type PlayerInfo struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Position shared.Seat `json:"position,omitempty"` // empty while spectating
}

type PlayerListPayload struct {
	Players []PlayerInfo `json:"players"`
}

// PositionUpdatePayload is the seat-occupancy map: seat -> is a human
// sitting there. AI plays every seat mapped to false.
type PositionUpdatePayload struct {
	Positions map[shared.Seat]bool `json:"positions"`
}

type PlayerJoinPayload struct {
	ClientID string      `json:"client_id"`
	Name     string      `json:"name"`
	Position shared.Seat `json:"position,omitempty"`
}

type PlayerLeavePayload struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
}

type ChatBroadcastPayload struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type GameStatePayload struct {
	State game.Snapshot `json:"state"`
}

type GameEventPayload struct {
	Event game.Event `json:"event"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage builds a JSON-encoded message with the given type and payload.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}
