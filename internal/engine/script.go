package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/pkg/api"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no steps")

// ScriptStep is one input command of a recorded match.
type ScriptStep struct {
	Player int              `yaml:"player"`
	Action string           `yaml:"action"`
	To     *api.CellPayload `yaml:"to,omitempty"`
}

// Script - заранее записанная последовательность команд для безголового прогона партии.
type Script struct {
	Map   string       `yaml:"map"`
	Steps []ScriptStep `yaml:"steps"`
}

// LoadScript reads a YAML match script.
func LoadScript(path string) (Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(b)
	if err != nil {
		return Script{}, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes YAML script bytes.
func ParseScript(b []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, ErrEmptyScript
	}
	return s, nil
}

// Command converts the step into an input-layer command.
func (st ScriptStep) Command() (api.Command, error) {
	if st.To == nil {
		return api.NewCommand(st.Action, st.Player, nil)
	}
	return api.NewCommand(st.Action, st.Player, *st.To)
}

// StepResult is the outcome of one script step.
type StepResult struct {
	Step     int            `json:"step" msgpack:"step"`
	Command  api.Command    `json:"command" msgpack:"command"`
	Accepted bool           `json:"accepted" msgpack:"accepted"`
	Msg      string         `json:"msg" msgpack:"msg"`
	Events   []domain.Event `json:"events,omitempty" msgpack:"events,omitempty"`
}

// RunScript feeds every step through the service and stops early once the match is over.
// A malformed step aborts the run; a rejected one is reported and skipped.
func (s *GameService) RunScript(script Script) ([]StepResult, error) {
	results := make([]StepResult, 0, len(script.Steps))
	for i, st := range script.Steps {
		if s.IsOver() {
			break
		}
		cmd, err := st.Command()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i, err)
		}
		res, events, err := s.ProcessCommand(cmd)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i, err)
		}
		results = append(results, StepResult{
			Step:     i,
			Command:  cmd,
			Accepted: res.Accepted,
			Msg:      res.Msg,
			Events:   events,
		})
	}
	return results, nil
}
