package engine

import (
	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/sirupsen/logrus"
)

// FinishTurn closes the active player's input phase. Input passes to the next
// living player that has not finished yet; when nobody is left the round is
// resolved. It is ignored outside the input phase.
func (s *Simulator) FinishTurn() bool {
	if s.state.Phase != PhaseAwaitingActions {
		s.log.WithField("phase", s.state.Phase).Debug("Finish turn ignored.")
		return false
	}

	done := s.state.Active
	s.state.Turns[done].Ready = true

	if next, ok := s.nextActive(done); ok {
		s.state.Active = next
		s.log.WithFields(logrus.Fields{"finished": done, "active": next}).Debug("Turn passed.")
		return true
	}

	s.resolve()
	return true
}

// FinishTurnEvents is FinishTurn returning the events of the round it resolved, if any.
func (s *Simulator) FinishTurnEvents() ([]domain.Event, bool) {
	seq := len(s.state.Events)
	if !s.FinishTurn() {
		return nil, false
	}
	return s.EventsSince(seq), true
}

// nextActive ищет следующего живого игрока без завершённого ввода, по кругу после from.
func (s *Simulator) nextActive(from int) (int, bool) {
	n := len(s.state.Players)
	for k := 1; k <= n; k++ {
		i := (from + k) % n
		if s.state.Players[i].Alive && !s.state.Turns[i].Ready {
			return i, true
		}
	}
	return domain.NoPlayer, false
}
