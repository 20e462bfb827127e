// Package controls turns viewer input into simulator commands. It holds no
// ebiten state so the bindings can be tested headless.
package controls

import (
	"fmt"
	"strings"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/engine"
	"github.com/Namek/battle-tactics/pkg/api"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/Namek/battle-tactics/pkg/maps"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Session is one match driven from the viewer. Every command is sent on
// behalf of the currently active player.
type Session struct {
	m      maps.Map
	cfg    engine.Config
	svc    *engine.GameService
	status string
	record engine.Script
	log    *logrus.Entry
}

// NewSession starts a match on m.
func NewSession(m maps.Map, cfg engine.Config) (*Session, error) {
	s := &Session{
		m:   m,
		cfg: cfg,
		log: logger.Log.WithFields(logrus.Fields{"component": "viewer", "map": m.Name}),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart throws the current match away and starts a new one on the same map.
func (s *Session) Restart() error {
	svc, err := engine.NewService(s.m, s.cfg)
	if err != nil {
		return err
	}
	s.svc = svc
	s.record = engine.Script{Map: s.m.Name}
	s.status = fmt.Sprintf("round 1, player %d to act", svc.Sim.Active())
	s.log.Info("Match (re)started.")
	return nil
}

// Service exposes the underlying game service.
func (s *Session) Service() *engine.GameService { return s.svc }

// View returns the frame to draw.
func (s *Session) View() api.FrameView { return s.svc.View() }

// Status is the one-line outcome of the last command.
func (s *Session) Status() string { return s.status }

// Send dispatches an action for the active player. The returned flag tells
// whether the simulator took it.
func (s *Session) Send(action string, payload any) bool {
	cmd, err := api.NewCommand(action, s.svc.Sim.Active(), payload)
	if err != nil {
		s.status = err.Error()
		return false
	}
	res, events, err := s.svc.ProcessCommand(cmd)
	if err != nil {
		s.status = err.Error()
		s.log.WithError(err).Warn("Command failed.")
		return false
	}
	s.status = res.Msg
	if res.Accepted {
		s.remember(cmd.Player, action, payload)
	}
	if len(events) > 0 {
		s.status = summarize(events, s.svc)
	}
	return res.Accepted
}

// ClickCell queues a walk of the active player to c.
func (s *Session) ClickCell(c domain.Cell) bool {
	if !s.svc.Sim.Grid().InBounds(c) {
		return false
	}
	return s.Send(api.CmdMove, api.CellPayload{Col: c.Col, Row: c.Row})
}

// ClickPoint is ClickCell for a position in world units.
func (s *Session) ClickPoint(x, y float64) bool {
	return s.ClickCell(s.svc.Sim.Grid().CellAt(domain.Point{X: x, Y: y}))
}

func (s *Session) remember(player int, action string, payload any) {
	step := engine.ScriptStep{Player: player, Action: strings.ToLower(action)}
	if p, ok := payload.(api.CellPayload); ok {
		step.To = &p
	}
	s.record.Steps = append(s.record.Steps, step)
}

// Script returns the accepted commands of the current match, replayable by the battle CLI.
func (s *Session) Script() engine.Script {
	out := s.record
	out.Steps = append([]engine.ScriptStep(nil), s.record.Steps...)
	return out
}

// ScriptYAML is Script encoded as a YAML script file.
func (s *Session) ScriptYAML() (string, error) {
	b, err := yaml.Marshal(s.Script())
	if err != nil {
		return "", fmt.Errorf("encode script: %w", err)
	}
	return string(b), nil
}

// EventLog renders the whole match log, one event per line.
func (s *Session) EventLog() string {
	var b strings.Builder
	for _, e := range s.svc.Sim.Events() {
		fmt.Fprintf(&b, "#%d r%d s%d %s\n", e.Seq, e.Round, e.Step, e.Describe())
	}
	return b.String()
}

// HUD returns the text lines shown next to the map.
func (s *Session) HUD() []string {
	v := s.svc.View()
	lines := []string{
		fmt.Sprintf("%s  round %d  %s", s.m.Name, v.Round, v.Phase),
	}
	for _, p := range v.Players {
		marker := " "
		if p.Index == v.ActivePlayer && v.Phase == "AWAITING_ACTIONS" {
			marker = ">"
		}
		state := "alive"
		if !p.Alive {
			state = "down"
		} else if p.Ready {
			state = "ready"
		}
		lines = append(lines, fmt.Sprintf("%s P%d %-5s AP %d/%d  %s",
			marker, p.Index, state, p.ActionPoints.Available, p.ActionPoints.Max, strings.Join(p.Actions, " ")))
	}
	for _, e := range v.Events {
		lines = append(lines, "  "+e.Describe())
	}
	lines = append(lines, s.status)
	return lines
}

func summarize(events []domain.Event, svc *engine.GameService) string {
	last := events[len(events)-1]
	if last.Type == domain.EventGameOver {
		return last.Describe()
	}
	return fmt.Sprintf("round %d resolved with %d events, player %d to act", last.Round, len(events), svc.Sim.Active())
}
