package engine

import (
	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/systems"
	"github.com/sirupsen/logrus"
)

// canAct: ввод принимается только от активного живого игрока в фазе сбора действий.
func (s *Simulator) canAct(player int) bool {
	if s.state.Phase != PhaseAwaitingActions {
		return false
	}
	if player != s.state.Active || player < 0 || player >= len(s.state.Players) {
		return false
	}
	return s.state.Players[player].Alive
}

func (s *Simulator) affordable(player int, t domain.ActionType) bool {
	return s.state.Turns[player].Available(s.cfg.Rules) >= s.cfg.Cost(t)
}

// planMove prices a walk from the player's cursor to to. Other living players
// are impassable; the path must fit in the remaining AP.
func (s *Simulator) planMove(player int, to domain.Cell) ([]domain.Cell, bool) {
	if !s.canAct(player) {
		return nil, false
	}
	if s.grid.IsWall(to) || s.state.occupied(to, player) {
		return nil, false
	}
	turn := s.state.Turns[player]
	path := systems.FindPath(s.grid, turn.Cursor, to, s.cfg.pathOptions(s.blockedFor(player)))
	if len(path) == 0 {
		return nil, false
	}
	if len(path)*s.cfg.Costs.Move > turn.Available(s.cfg.Rules) {
		return nil, false
	}
	return path, true
}

// CanEnqueueMove reports whether EnqueueMove would accept the destination.
func (s *Simulator) CanEnqueueMove(player int, to domain.Cell) bool {
	_, ok := s.planMove(player, to)
	return ok
}

// CanEnqueuePeek requires Peek AP and at least one peek cell at the cursor.
func (s *Simulator) CanEnqueuePeek(player int) bool {
	if !s.canAct(player) || !s.affordable(player, domain.ActionPeek) {
		return false
	}
	return len(s.vis.PeekCells(s.state.Turns[player].Cursor)) > 0
}

func (s *Simulator) CanEnqueueShoot(player int) bool {
	return s.canAct(player) && s.affordable(player, domain.ActionShoot)
}

func (s *Simulator) CanEnqueueWait(player int) bool {
	return s.canAct(player) && s.affordable(player, domain.ActionWait)
}

func (s *Simulator) CanUndo(player int) bool {
	return s.canAct(player) && len(s.state.Turns[player].Actions) > 0
}

// EnqueueMove queues one Move per path step towards to. Illegal requests are ignored.
func (s *Simulator) EnqueueMove(player int, to domain.Cell) bool {
	path, ok := s.planMove(player, to)
	if !ok {
		s.reject(player, domain.ActionMove, logrus.Fields{"to": to})
		return false
	}
	turn := &s.state.Turns[player]
	batch := turn.nextBatch()
	for _, c := range path {
		a := domain.MoveAction(turn.Cursor, c)
		a.Batch = batch
		turn.Actions = append(turn.Actions, a)
		turn.Cursor = c
	}
	s.accept(player, domain.ActionMove, logrus.Fields{"to": to, "steps": len(path)})
	return true
}

func (s *Simulator) EnqueuePeek(player int) bool {
	return s.enqueueSimple(player, domain.ActionPeek, s.CanEnqueuePeek(player))
}

func (s *Simulator) EnqueueShoot(player int) bool {
	return s.enqueueSimple(player, domain.ActionShoot, s.CanEnqueueShoot(player))
}

func (s *Simulator) EnqueueWait(player int) bool {
	return s.enqueueSimple(player, domain.ActionWait, s.CanEnqueueWait(player))
}

func (s *Simulator) enqueueSimple(player int, t domain.ActionType, legal bool) bool {
	if !legal {
		s.reject(player, t, nil)
		return false
	}
	turn := &s.state.Turns[player]
	a := domain.SimpleAction(t)
	a.Batch = turn.nextBatch()
	turn.Actions = append(turn.Actions, a)
	s.accept(player, t, nil)
	return true
}

// UndoLastAction removes everything the last enqueue call queued. Undoing a
// walk puts the cursor back on the cell the walk started from.
func (s *Simulator) UndoLastAction(player int) bool {
	if !s.CanUndo(player) {
		s.reject(player, domain.ActionUnknown, logrus.Fields{"undo": true})
		return false
	}
	turn := &s.state.Turns[player]
	last := turn.Actions[len(turn.Actions)-1]
	start := len(turn.Actions) - 1
	for start > 0 && turn.Actions[start-1].Batch == last.Batch {
		start--
	}
	// Шаги пути идут подряд: Prev первого шага - клетка до начала пути
	if first := turn.Actions[start]; first.Type == domain.ActionMove {
		turn.Cursor = first.Prev
	}
	removed := len(turn.Actions) - start
	turn.Actions = turn.Actions[:start]
	s.log.WithFields(logrus.Fields{
		"player":    player,
		"undone":    last.Type,
		"slots":     removed,
		"available": turn.Available(s.cfg.Rules),
	}).Debug("Action undone.")
	return true
}

func (s *Simulator) accept(player int, t domain.ActionType, extra logrus.Fields) {
	s.log.WithFields(logrus.Fields{
		"player":    player,
		"action":    t,
		"available": s.state.Turns[player].Available(s.cfg.Rules),
	}).WithFields(extra).Debug("Action queued.")
}

func (s *Simulator) reject(player int, t domain.ActionType, extra logrus.Fields) {
	s.log.WithFields(logrus.Fields{
		"player": player,
		"action": t,
		"phase":  s.state.Phase,
		"active": s.state.Active,
	}).WithFields(extra).Debug("Action rejected.")
}
