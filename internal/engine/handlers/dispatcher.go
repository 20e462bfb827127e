package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Namek/battle-tactics/pkg/api"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrUnknownCommand = errors.New("no handler for command")

// Dispatcher routes api.Command values to registered handlers.
type Dispatcher struct {
	sim      Simulator
	handlers map[string]HandlerFunc
}

func NewDispatcher(sim Simulator) *Dispatcher {
	return &Dispatcher{sim: sim, handlers: make(map[string]HandlerFunc)}
}

// Register binds an action name to a handler, replacing any previous one.
func (d *Dispatcher) Register(action string, h HandlerFunc) {
	d.handlers[strings.ToUpper(action)] = h
}

// Dispatch validates the command and runs its handler.
func (d *Dispatcher) Dispatch(cmd api.Command) (Result, error) {
	cmd.Action = strings.ToUpper(cmd.Action)
	if err := cmd.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid command: %w", err)
	}
	h, ok := d.handlers[cmd.Action]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Action)
	}

	res, err := h(Context{Sim: d.sim, Player: cmd.Player}, cmd.Payload)
	entry := logger.Log.WithFields(logrus.Fields{
		"component": "dispatcher",
		"action":    cmd.Action,
		"player":    cmd.Player,
		"accepted":  res.Accepted,
	})
	if err != nil {
		entry.WithError(err).Warn("Command failed.")
		return res, err
	}
	entry.Debug(res.Msg)
	return res, nil
}
