package engine

import (
	"errors"
	"fmt"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/systems"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNotEnoughPlayers = errors.New("a match needs at least two players")
	ErrBadStart         = errors.New("start cell is a wall or outside the grid")
	ErrSharedStart      = errors.New("two players share a start cell")
)

// Simulator owns one match: the grid, the players' queues and the event log.
// It is not safe for concurrent use.
type Simulator struct {
	cfg   Config
	grid  *domain.Grid
	vis   *systems.Visibility
	cones []*systems.ConeCache
	state GameState
	log   *logrus.Entry
}

// NewSimulator starts a match with one player per start cell; player i starts on starts[i].
func NewSimulator(grid *domain.Grid, starts []domain.Cell, cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(starts) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	seen := make(map[domain.Cell]bool, len(starts))
	for i, c := range starts {
		if grid.IsWall(c) {
			return nil, fmt.Errorf("player %d at %v: %w", i, c, ErrBadStart)
		}
		if seen[c] {
			return nil, fmt.Errorf("player %d at %v: %w", i, c, ErrSharedStart)
		}
		seen[c] = true
	}

	vis := systems.NewVisibility(grid, cfg.Vision)
	s := &Simulator{
		cfg:   cfg,
		grid:  grid,
		vis:   vis,
		cones: make([]*systems.ConeCache, len(starts)),
		state: newGameState(starts),
	}
	for i := range s.cones {
		s.cones[i] = systems.NewConeCache(vis)
	}
	s.log = logger.Log.WithFields(logrus.Fields{
		"component": "simulator",
		"game":      s.state.ID,
	})
	s.log.WithFields(logrus.Fields{
		"players": len(starts),
		"grid_w":  grid.Width,
		"grid_h":  grid.Height,
		"max_ap":  cfg.MaxActionPoints,
	}).Info("Match started.")
	return s, nil
}

// Config returns the effective configuration.
func (s *Simulator) Config() Config { return s.cfg }

// Grid returns the match grid.
func (s *Simulator) Grid() *domain.Grid { return s.grid }

// Visibility returns the line-of-sight engine bound to the grid.
func (s *Simulator) Visibility() *systems.Visibility { return s.vis }

// State returns a deep copy of the match state.
func (s *Simulator) State() GameState { return s.state.Clone() }

func (s *Simulator) Phase() Phase { return s.state.Phase }
func (s *Simulator) Round() int   { return s.state.Round }
func (s *Simulator) Active() int  { return s.state.Active }
func (s *Simulator) Winner() int  { return s.state.Winner }

// Player returns a player by index.
func (s *Simulator) Player(i int) (domain.Player, bool) {
	if i < 0 || i >= len(s.state.Players) {
		return domain.Player{}, false
	}
	return s.state.Players[i], true
}

// Turn returns a copy of a player's current queue.
func (s *Simulator) Turn(i int) (Turn, bool) {
	if i < 0 || i >= len(s.state.Turns) {
		return Turn{}, false
	}
	return s.state.Turns[i].clone(), true
}

// Available is the AP the player can still spend this round.
func (s *Simulator) Available(i int) int {
	if i < 0 || i >= len(s.state.Turns) {
		return 0
	}
	return s.state.Turns[i].Available(s.cfg.Rules)
}

// Events returns the whole event log.
func (s *Simulator) Events() []domain.Event {
	return s.state.Clone().Events
}

// EventsSince returns the events with Seq >= seq.
func (s *Simulator) EventsSince(seq int) []domain.Event {
	return append([]domain.Event(nil), s.state.EventsSince(seq)...)
}

// blockedFor treats every other living player as impassable.
func (s *Simulator) blockedFor(player int) func(domain.Cell) bool {
	return func(c domain.Cell) bool {
		return s.state.occupied(c, player)
	}
}

// Reachable returns the cells the player can still walk to from its planned position.
func (s *Simulator) Reachable(player int) mapset.Set[domain.Cell] {
	t, ok := s.Turn(player)
	if !ok || s.cfg.Costs.Move <= 0 {
		return mapset.New[domain.Cell]()
	}
	budget := t.Available(s.cfg.Rules) / s.cfg.Costs.Move
	return systems.ReachableCells(s.grid, t.Cursor, budget, s.cfg.pathOptions(s.blockedFor(player)))
}

// Frustum returns the player's 360° cone from its planned position.
func (s *Simulator) Frustum(player int) (systems.Cone, bool) {
	t, ok := s.Turn(player)
	if !ok {
		return systems.Cone{}, false
	}
	return s.cones[player].Frustum(t.Cursor), true
}

// PeekCells returns the lean-out cells available from the player's planned position.
func (s *Simulator) PeekCells(player int) []systems.PeekCell {
	t, ok := s.Turn(player)
	if !ok {
		return nil
	}
	return s.vis.PeekCells(t.Cursor)
}

// PeekCones returns the peek cones available from the player's planned position.
func (s *Simulator) PeekCones(player int) []systems.Cone {
	t, ok := s.Turn(player)
	if !ok {
		return nil
	}
	return s.vis.PeekCones(t.Cursor)
}

// resolve runs the step loop and swaps in the resulting state.
func (s *Simulator) resolve() []domain.Event {
	next, events := ResolveRound(s.state, s.vis, s.cfg.Rules)
	s.state = next
	for _, c := range s.cones {
		c.Invalidate()
	}
	s.log.WithFields(logrus.Fields{
		"round":  next.Round,
		"phase":  next.Phase,
		"events": len(events),
		"winner": next.Winner,
	}).Info("Round resolved.")
	return events
}
