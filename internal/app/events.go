package app

import "kalitiri/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventRoomUpdate    EventKind = "room_update"
	EventRoundStarted  EventKind = "round_started"
	EventHandDealt     EventKind = "deal_hand"
	EventPowerhouseSet EventKind = "powerhouse_set"
	EventCardPlayed    EventKind = "card_played"
	EventTrickComplete EventKind = "trick_complete"
	EventRoundOver     EventKind = "round_over"
	EventGameState     EventKind = "game_state"
	EventInvalidMove   EventKind = "invalid_move"
	EventInfo          EventKind = "info"
)

// Event is a game event with optional targeted recipients.
// Empty Recipients means broadcast to the whole room.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string
}

type RoomUpdatePayload struct {
	Players []domain.Seat  `json:"players"`
	Scores  map[string]int `json:"scores"`
}

type RoundStartedPayload struct {
	HandsCount map[string]int `json:"hands_count"`
	LeaderID   string         `json:"leader_id"`
}

// HandDealtPayload is always delivered privately to YourID; a hand must
// never be broadcast to other seats.
type HandDealtPayload struct {
	Hand       []domain.Card `json:"hand"`
	YourID     string        `json:"your_id"`
	Powerhouse domain.Suit   `json:"powerhouse"`
}

type PowerhouseSetPayload struct {
	Powerhouse domain.Suit `json:"powerhouse"`
}

type CardPlayedPayload struct {
	PlayerID   string      `json:"player_id"`
	Card       domain.Card `json:"card"`
	TrickCount int         `json:"trick_count"`
}

type TrickCompletePayload struct {
	WinnerID    string         `json:"winner_id"`
	Trick       []domain.Play  `json:"trick"`
	TrickPoints int            `json:"trick_points"`
	Scores      map[string]int `json:"scores"`
}

type RoundOverPayload struct {
	Scores map[string]int `json:"scores"`
}

// InvalidMovePayload is delivered privately to the offending requester.
type InvalidMovePayload struct {
	Reason string `json:"reason"`
}

type InfoPayload struct {
	Message string `json:"message"`
}
