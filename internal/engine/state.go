package engine

import (
	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/google/uuid"
)

// Phase is the simulator's state machine position.
type Phase uint8

const (
	PhaseAwaitingActions Phase = iota
	PhaseResolvingTurn
	PhaseRoundOutcome
	PhaseGameOver
)

var phaseToString = map[Phase]string{
	PhaseAwaitingActions: "AWAITING_ACTIONS",
	PhaseResolvingTurn:   "RESOLVING_TURN",
	PhaseRoundOutcome:    "ROUND_OUTCOME",
	PhaseGameOver:        "GAME_OVER",
}

func (p Phase) String() string {
	if val, ok := phaseToString[p]; ok {
		return val
	}
	return "UNKNOWN"
}

// Turn - очередь действий одного игрока на текущий раунд.
type Turn struct {
	Player  int
	Actions []domain.Action

	// Cursor is where the player stands once every queued move has been applied.
	Cursor domain.Cell

	// Ready is set once the player has finished input for this round.
	Ready bool
}

// Spent sums the AP cost of the queue.
func (t Turn) Spent(r Rules) int {
	spent := 0
	for _, a := range t.Actions {
		spent += r.Cost(a.Type)
	}
	return spent
}

// Available is the AP left for further enqueues.
func (t Turn) Available(r Rules) int {
	return r.MaxActionPoints - t.Spent(r)
}

// nextBatch is the batch id for the next enqueue call.
func (t Turn) nextBatch() int {
	if len(t.Actions) == 0 {
		return 1
	}
	return t.Actions[len(t.Actions)-1].Batch + 1
}

func (t Turn) clone() Turn {
	t.Actions = append([]domain.Action(nil), t.Actions...)
	return t
}

// GameState is the complete value of a match. Copies returned by the simulator
// share nothing with its internal state.
type GameState struct {
	ID      uuid.UUID
	Round   int
	Phase   Phase
	Active  int
	Players []domain.Player
	Turns   []Turn
	Winner  int
	Events  []domain.Event
}

func newGameState(starts []domain.Cell) GameState {
	s := GameState{
		ID:      uuid.New(),
		Round:   1,
		Phase:   PhaseAwaitingActions,
		Winner:  domain.NoPlayer,
		Players: make([]domain.Player, len(starts)),
		Turns:   make([]Turn, len(starts)),
	}
	for i, c := range starts {
		s.Players[i] = domain.Player{Index: i, Cell: c, Alive: true}
		s.Turns[i] = Turn{Player: i, Cursor: c}
	}
	return s
}

// Clone deep-copies the state.
func (s GameState) Clone() GameState {
	out := s
	out.Players = append([]domain.Player(nil), s.Players...)
	out.Turns = make([]Turn, len(s.Turns))
	for i, t := range s.Turns {
		out.Turns[i] = t.clone()
	}
	out.Events = make([]domain.Event, len(s.Events))
	for i, e := range s.Events {
		e.Spotted = append([]int(nil), e.Spotted...)
		out.Events[i] = e
	}
	return out
}

// Alive returns the indices of living players in turn order.
func (s GameState) Alive() []int {
	var alive []int
	for _, p := range s.Players {
		if p.Alive {
			alive = append(alive, p.Index)
		}
	}
	return alive
}

// occupied reports whether a living player other than except stands on c.
func (s GameState) occupied(c domain.Cell, except int) bool {
	for _, p := range s.Players {
		if p.Alive && p.Index != except && p.Cell == c {
			return true
		}
	}
	return false
}

// EventsSince returns the events with Seq >= seq.
func (s GameState) EventsSince(seq int) []domain.Event {
	if seq < 0 {
		seq = 0
	}
	if seq >= len(s.Events) {
		return nil
	}
	return s.Events[seq:]
}
