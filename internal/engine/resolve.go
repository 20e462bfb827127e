package engine

import (
	"slices"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/systems"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// ResolveRound replays every player's queue slot by slot and returns the
// state after the round together with the events it produced. The input
// state is not modified.
//
// Per step: line-of-sight snapshot, peeks, first shoot pass, moves, second
// shoot pass. A shooter fires at most once per step.
func ResolveRound(state GameState, vis *systems.Visibility, rules Rules) (GameState, []domain.Event) {
	next := state.Clone()
	next.Phase = PhaseResolvingTurn
	first := len(next.Events)

	r := &resolver{state: &next, vis: vis, rules: rules}
	queues := make([][]domain.Action, len(next.Turns))
	for i, t := range next.Turns {
		queues[i] = padQueue(t.Actions, rules.MaxActionPoints)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "resolver",
		"game":      next.ID,
		"round":     next.Round,
	}).Info("Resolving round.")

	for step := 0; step < rules.MaxActionPoints; step++ {
		r.runStep(step, queues)
	}

	next.Phase = PhaseRoundOutcome
	r.emit(domain.Event{Type: domain.EventRoundResolved, Step: rules.MaxActionPoints, Player: domain.NoPlayer, Target: domain.NoPlayer})
	r.outcome()

	return next, slices.Clone(next.Events[first:])
}

// padQueue stretches a queue to exactly slots entries. A trailing Peek or
// Shoot keeps running, anything else is followed by Idle.
func padQueue(actions []domain.Action, slots int) []domain.Action {
	out := make([]domain.Action, slots)
	n := copy(out, actions)
	fill := domain.SimpleAction(domain.ActionIdle)
	if n > 0 && out[n-1].Type.Continues() {
		fill = domain.SimpleAction(out[n-1].Type)
	}
	for i := n; i < slots; i++ {
		out[i] = fill
	}
	return out
}

type resolver struct {
	state *GameState
	vis   *systems.Visibility
	rules Rules
}

func (r *resolver) emit(e domain.Event) {
	r.state.addEvent(e)
}

func (r *resolver) runStep(step int, queues [][]domain.Action) {
	players := r.state.Players
	snap := r.snapshot()

	// 1. Выглядывание: доклад о видимых врагах по снимку до движения
	for i := range players {
		if !players[i].Alive || queues[i][step].Type != domain.ActionPeek {
			continue
		}
		if spotted := snap.spotted(i, players); len(spotted) > 0 {
			r.emit(domain.Event{
				Type:    domain.EventEnemySpotted,
				Step:    step,
				Player:  i,
				Target:  domain.NoPlayer,
				From:    players[i].Cell,
				Spotted: spotted,
			})
		}
	}

	// 2. Первый проход стрельбы
	fired := make([]bool, len(players))
	r.shootPass(step, queues, snap, fired)

	// 3. Движение
	for i := range players {
		if !players[i].Alive || queues[i][step].Type != domain.ActionMove {
			continue
		}
		r.move(step, i, queues[i][step])
	}

	// 4. Второй проход для тех, кто ещё не стрелял
	if r.rules.PostMoveSnapshot {
		snap = r.snapshot()
	}
	r.shootPass(step, queues, snap, fired)
}

func (r *resolver) shootPass(step int, queues [][]domain.Action, snap snapshot, fired []bool) {
	players := r.state.Players
	for i := range players {
		if fired[i] || !players[i].Alive || queues[i][step].Type != domain.ActionShoot {
			continue
		}
		target, dist, ok := snap.nearest(i, players)
		if !ok {
			continue
		}
		players[target].Alive = false
		fired[i] = true
		r.emit(domain.Event{
			Type:     domain.EventTookDownEnemy,
			Step:     step,
			Player:   i,
			Target:   target,
			From:     players[i].Cell,
			To:       players[target].Cell,
			Distance: dist,
		})
	}
}

func (r *resolver) move(step, mover int, a domain.Action) {
	players := r.state.Players
	res := systems.CalculateMove(players, mover, a, r.vis.Grid())
	from := players[mover].Cell
	if !res.HasMoved {
		r.emit(domain.Event{
			Type:   domain.EventMoveBlocked,
			Step:   step,
			Player: mover,
			Target: res.BlockedBy,
			From:   from,
			To:     a.To,
		})
		return
	}
	players[mover].Cell = res.To
	r.emit(domain.Event{
		Type:   domain.EventPlayerMoved,
		Step:   step,
		Player: mover,
		Target: domain.NoPlayer,
		From:   from,
		To:     res.To,
	})
}

// outcome refunds the survivors or ends the game.
func (r *resolver) outcome() {
	s := r.state
	alive := s.Alive()

	if len(alive) >= 2 {
		for i := range s.Turns {
			s.Turns[i].Actions = nil
			s.Turns[i].Cursor = s.Players[i].Cell
			s.Turns[i].Ready = false
		}
		s.Round++
		s.Phase = PhaseAwaitingActions
		s.Active = alive[0]
		return
	}

	s.Winner = domain.NoPlayer
	if len(alive) == 1 {
		s.Winner = alive[0]
	}
	s.Phase = PhaseGameOver
	r.emit(domain.Event{
		Type:   domain.EventGameOver,
		Step:   r.rules.MaxActionPoints,
		Player: s.Winner,
		Target: domain.NoPlayer,
	})
}

// snapshot - кто кого видит в данный момент. Только живые наблюдатели и цели.
type snapshot struct {
	visible  []mapset.Set[int]
	distance [][]float64
}

func (r *resolver) snapshot() snapshot {
	players := r.state.Players
	grid := r.vis.Grid()
	snap := snapshot{
		visible:  make([]mapset.Set[int], len(players)),
		distance: make([][]float64, len(players)),
	}
	for i, viewer := range players {
		snap.visible[i] = mapset.New[int]()
		snap.distance[i] = make([]float64, len(players))
		if !viewer.Alive {
			continue
		}
		for j, target := range players {
			if j == i || !target.Alive {
				continue
			}
			if sight := r.vis.CanSee(viewer.Cell, grid.Center(target.Cell)); sight.Seen {
				snap.visible[i].Put(j)
				snap.distance[i][j] = sight.Distance
			}
		}
	}
	return snap
}

// spotted lists the still-living enemies viewer saw, in player order.
func (s snapshot) spotted(viewer int, players []domain.Player) []int {
	var out []int
	for j := range players {
		if players[j].Alive && s.visible[viewer].Has(j) {
			out = append(out, j)
		}
	}
	return out
}

// nearest picks the closest still-living visible enemy; ties go to the lower index.
func (s snapshot) nearest(viewer int, players []domain.Player) (int, float64, bool) {
	best, bestDist := domain.NoPlayer, 0.0
	for _, j := range s.spotted(viewer, players) {
		if d := s.distance[viewer][j]; best == domain.NoPlayer || d < bestDist {
			best, bestDist = j, d
		}
	}
	return best, bestDist, best != domain.NoPlayer
}
