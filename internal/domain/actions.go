package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия в очереди хода.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionPeek
	ActionShoot
	ActionWait
	ActionIdle
)

// Маппинг для конвертации JSON/YAML -> Domain
var actionStringToType = map[string]ActionType{
	"MOVE":  ActionMove,
	"PEEK":  ActionPeek,
	"SHOOT": ActionShoot,
	"WAIT":  ActionWait,
	"IDLE":  ActionIdle,
}

// Маппинг для логов Domain -> String
var actionTypeToString = map[ActionType]string{
	ActionMove:  "MOVE",
	ActionPeek:  "PEEK",
	ActionShoot: "SHOOT",
	ActionWait:  "WAIT",
	ActionIdle:  "IDLE",
}

// ParseAction converts a command name into an ActionType, case-insensitively.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionTypeToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Continues reports whether a trailing action of this type keeps running in
// the padded slots of a turn (a player who ends mid-peek keeps peeking).
func (a ActionType) Continues() bool {
	return a == ActionPeek || a == ActionShoot
}

// Action is one queued turn slot. To and Prev are only meaningful for moves.
// Batch groups the slots queued by a single enqueue call; undo removes a whole batch.
type Action struct {
	Type  ActionType `json:"type" msgpack:"type"`
	To    Cell       `json:"to,omitempty" msgpack:"to,omitempty"`
	Prev  Cell       `json:"prev,omitempty" msgpack:"prev,omitempty"`
	Batch int        `json:"batch,omitempty" msgpack:"batch,omitempty"`
}

// MoveAction builds a one-step move from prev to to.
func MoveAction(prev, to Cell) Action {
	return Action{Type: ActionMove, To: to, Prev: prev}
}

// SimpleAction builds an action that carries no cells.
func SimpleAction(t ActionType) Action {
	return Action{Type: t}
}

// MarshalText encodes the action type by name.
func (a ActionType) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (a *ActionType) UnmarshalText(b []byte) error {
	*a = ParseAction(string(b))
	return nil
}
