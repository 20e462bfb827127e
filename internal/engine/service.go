package engine

import (
	"fmt"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/engine/handlers"
	"github.com/Namek/battle-tactics/internal/engine/handlers/actions"
	"github.com/Namek/battle-tactics/pkg/api"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/Namek/battle-tactics/pkg/maps"
	"github.com/sirupsen/logrus"
)

// GameService связывает карту, симулятор и маршрутизацию команд ввода.
// Хосты (CLI, viewer) работают только через него.
type GameService struct {
	Map maps.Map
	Sim *Simulator

	dispatcher *handlers.Dispatcher
}

// NewDispatcher wires every input command to the simulator.
func NewDispatcher(sim *Simulator) *handlers.Dispatcher {
	d := handlers.NewDispatcher(sim)
	actions.Register(d)
	return d
}

func NewService(m maps.Map, cfg Config) (*GameService, error) {
	sim, err := NewSimulator(m.Grid, m.Starts, cfg)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.Name, err)
	}
	return &GameService{
		Map:        m,
		Sim:        sim,
		dispatcher: NewDispatcher(sim),
	}, nil
}

// ProcessCommand routes one input command. The returned events are those of
// a round the command resolved, if any.
func (s *GameService) ProcessCommand(cmd api.Command) (handlers.Result, []domain.Event, error) {
	seq := len(s.Sim.state.Events)
	res, err := s.dispatcher.Dispatch(cmd)
	if err != nil {
		return res, nil, err
	}
	events := s.Sim.EventsSince(seq)
	if len(events) > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"map":       s.Map.Name,
			"events":    len(events),
			"phase":     s.Sim.Phase(),
		}).Debug("Command resolved a round.")
	}
	return res, events, nil
}

// View returns the current frame.
func (s *GameService) View() api.FrameView {
	return s.Sim.View()
}

// IsOver reports whether the match has ended.
func (s *GameService) IsOver() bool {
	return s.Sim.Phase() == PhaseGameOver
}
