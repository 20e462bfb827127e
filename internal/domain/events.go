package domain

import (
	"fmt"
	"strings"
)

// EventType - внутренний числовой идентификатор события розыгрыша хода.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventPlayerMoved
	EventEnemySpotted
	EventTookDownEnemy
	EventMoveBlocked
	EventRoundResolved
	EventGameOver
)

var eventStringToType = map[string]EventType{
	"PLAYER_MOVED":    EventPlayerMoved,
	"ENEMY_SPOTTED":   EventEnemySpotted,
	"TOOK_DOWN_ENEMY": EventTookDownEnemy,
	"MOVE_BLOCKED":    EventMoveBlocked,
	"ROUND_RESOLVED":  EventRoundResolved,
	"GAME_OVER":       EventGameOver,
}

var eventTypeToString = map[EventType]string{
	EventPlayerMoved:   "PLAYER_MOVED",
	EventEnemySpotted:  "ENEMY_SPOTTED",
	EventTookDownEnemy: "TOOK_DOWN_ENEMY",
	EventMoveBlocked:   "MOVE_BLOCKED",
	EventRoundResolved: "ROUND_RESOLVED",
	EventGameOver:      "GAME_OVER",
}

// ParseEvent converts an event name into an EventType.
func ParseEvent(s string) EventType {
	if val, ok := eventStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// NoPlayer marks an empty player reference (no target, no winner).
const NoPlayer = -1

// Event is one entry of the resolution log. Seq orders events across the whole game.
type Event struct {
	Seq      int       `json:"seq" msgpack:"seq"`
	Round    int       `json:"round" msgpack:"round"`
	Step     int       `json:"step" msgpack:"step"`
	Type     EventType `json:"type" msgpack:"type"`
	Player   int       `json:"player" msgpack:"player"`
	Target   int       `json:"target" msgpack:"target"`
	From     Cell      `json:"from" msgpack:"from"`
	To       Cell      `json:"to" msgpack:"to"`
	Spotted  []int     `json:"spotted,omitempty" msgpack:"spotted,omitempty"`
	Distance float64   `json:"distance,omitempty" msgpack:"distance,omitempty"`
}

// Describe renders the event as a single human-readable log line.
func (e Event) Describe() string {
	switch e.Type {
	case EventPlayerMoved:
		return fmt.Sprintf("player %d moved (%d,%d) -> (%d,%d)", e.Player, e.From.Col, e.From.Row, e.To.Col, e.To.Row)
	case EventMoveBlocked:
		return fmt.Sprintf("player %d could not move to (%d,%d)", e.Player, e.To.Col, e.To.Row)
	case EventEnemySpotted:
		return fmt.Sprintf("player %d spotted %v", e.Player, e.Spotted)
	case EventTookDownEnemy:
		return fmt.Sprintf("player %d took down player %d at %.1f", e.Player, e.Target, e.Distance)
	case EventRoundResolved:
		return fmt.Sprintf("round %d resolved", e.Round)
	case EventGameOver:
		if e.Player == NoPlayer {
			return "game over: nobody survived"
		}
		return fmt.Sprintf("game over: player %d wins", e.Player)
	default:
		return e.Type.String()
	}
}

// MarshalText encodes the event type by name in JSON and YAML output.
func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (e *EventType) UnmarshalText(b []byte) error {
	*e = ParseEvent(string(b))
	return nil
}
