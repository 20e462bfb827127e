package api

import (
	"encoding/json"

	"github.com/Namek/battle-tactics/internal/domain"
)

// --- ЯДРО -> РЕНДЕР ---

// FrameView это полный "снимок" партии, который рендерер рисует за один кадр.
// Собирается ядром по запросу, рендерер ничего не вычисляет сам.
type FrameView struct {
	// GameID идентификатор партии (UUID).
	GameID string `json:"gameId" msgpack:"gameId"`

	// Round номер раунда, начиная с 1.
	Round int `json:"round" msgpack:"round"`

	// Phase текущее состояние автомата: AWAITING_ACTIONS, RESOLVING_TURN, ROUND_OUTCOME, GAME_OVER.
	Phase string `json:"phase" msgpack:"phase"`

	// ActivePlayer индекс игрока, от которого сейчас принимается ввод.
	ActivePlayer int `json:"activePlayer" msgpack:"activePlayer"`

	// Winner индекс победителя, -1 пока партия идёт или при ничьей.
	Winner int `json:"winner" msgpack:"winner"`

	// Grid размеры и стены карты.
	Grid GridMeta `json:"grid" msgpack:"grid"`

	Players []PlayerView `json:"players" msgpack:"players"`

	// Reachable клетки, куда активный игрок может дойти на оставшиеся очки.
	Reachable []domain.Cell `json:"reachable,omitempty" msgpack:"reachable,omitempty"`

	// Frustum 360° конус активного игрока из его запланированной клетки.
	Frustum *ConeView `json:"frustum,omitempty" msgpack:"frustum,omitempty"`

	// PeekCones конусы выглядывания из запланированной клетки активного игрока.
	PeekCones []ConeView `json:"peekCones,omitempty" msgpack:"peekCones,omitempty"`

	// Events события последнего розыгрыша.
	Events []domain.Event `json:"events,omitempty" msgpack:"events,omitempty"`
}

// GridMeta содержит размеры карты и матрицу стен (true = стена), построчно.
type GridMeta struct {
	Width    int      `json:"w" msgpack:"w"`
	Height   int      `json:"h" msgpack:"h"`
	TileSize float64  `json:"tileSize" msgpack:"tileSize"`
	Walls    [][]bool `json:"walls" msgpack:"walls"`
}

// PlayerView это DTO для игрока и его очереди действий.
type PlayerView struct {
	Index  int         `json:"index" msgpack:"index"`
	Cell   domain.Cell `json:"cell" msgpack:"cell"`
	Cursor domain.Cell `json:"cursor" msgpack:"cursor"` // клетка после всех запланированных шагов
	Alive  bool        `json:"alive" msgpack:"alive"`

	ActionPoints APView   `json:"ap" msgpack:"ap"`
	Actions      []string `json:"actions" msgpack:"actions"`

	// Ready true, если игрок уже завершил ввод в этом раунде.
	Ready bool `json:"ready" msgpack:"ready"`
}

// APView сводка по очкам действий.
type APView struct {
	Max       int `json:"max" msgpack:"max"`
	Spent     int `json:"spent" msgpack:"spent"`
	Available int `json:"available" msgpack:"available"`
}

// ConeView набор концов лучей, выпущенных из Origin.
type ConeView struct {
	Cell   domain.Cell    `json:"cell" msgpack:"cell"`
	Origin domain.Point   `json:"origin" msgpack:"origin"`
	Points []domain.Point `json:"points" msgpack:"points"`
}

// --- ВВОД -> ЯДРО ---

// Названия команд ввода.
const (
	CmdMove   = "MOVE"
	CmdPeek   = "PEEK"
	CmdShoot  = "SHOOT"
	CmdWait   = "WAIT"
	CmdUndo   = "UNDO"
	CmdFinish = "FINISH"
)

// Command это корневой объект для всех команд слоя ввода.
type Command struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action" msgpack:"action"`

	// Player индекс игрока, от имени которого выполняется действие.
	Player int `json:"player" msgpack:"player"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty" msgpack:"payload,omitempty"`
}

// --- Payloads ---

// CellPayload используется для действий, нацеленных на клетку карты (MOVE).
type CellPayload struct {
	Col int `json:"col" yaml:"col" msgpack:"col"`
	Row int `json:"row" yaml:"row" msgpack:"row"`
}

// Cell converts the payload into a grid cell.
func (p CellPayload) Cell() domain.Cell {
	return domain.Cell{Col: p.Col, Row: p.Row}
}

// NewCommand builds a command, encoding payload as JSON when it is not nil.
func NewCommand(action string, player int, payload any) (Command, error) {
	cmd := Command{Action: action, Player: player}
	if payload == nil {
		return cmd, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Command{}, err
	}
	cmd.Payload = raw
	return cmd, nil
}
