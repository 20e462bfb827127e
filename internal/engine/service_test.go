package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/engine/handlers"
	"github.com/Namek/battle-tactics/pkg/api"
	"github.com/Namek/battle-tactics/pkg/maps"
)

func newTestService(t *testing.T, rows ...string) *GameService {
	t.Helper()
	cfg := testConfig()
	m, err := maps.ParseASCII(t.Name(), rows, cfg.TileSize)
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	svc, err := NewService(m, cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func mustCommand(t *testing.T, action string, player int, payload any) api.Command {
	t.Helper()
	cmd, err := api.NewCommand(action, player, payload)
	if err != nil {
		t.Fatalf("new command: %v", err)
	}
	return cmd
}

func TestService_ProcessCommand(t *testing.T) {
	svc := newTestService(t, "A.#.B", ".....")

	tests := []struct {
		name     string
		cmd      api.Command
		accepted bool
	}{
		{"move", mustCommand(t, api.CmdMove, 0, api.CellPayload{Col: 1, Row: 0}), true},
		{"lowercase wait", mustCommand(t, "wait", 0, nil), true},
		{"undo", mustCommand(t, api.CmdUndo, 0, nil), true},
		{"shoot", mustCommand(t, api.CmdShoot, 0, nil), true},
		{"not enough AP", mustCommand(t, api.CmdShoot, 0, nil), false},
		{"wrong player", mustCommand(t, api.CmdWait, 1, nil), false},
		{"peek without AP", mustCommand(t, api.CmdPeek, 0, nil), false},
		{"move into wall", mustCommand(t, api.CmdMove, 0, api.CellPayload{Col: 2, Row: 0}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, events, err := svc.ProcessCommand(tt.cmd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Accepted != tt.accepted {
				t.Errorf("Accepted = %v, want %v (%s)", res.Accepted, tt.accepted, res.Msg)
			}
			if len(events) != 0 {
				t.Errorf("No round should resolve yet, got %+v", events)
			}
		})
	}

	if turn, _ := svc.Sim.Turn(0); len(turn.Actions) != 2 {
		t.Errorf("Expected MOVE, SHOOT queued, got %+v", turn.Actions)
	}
}

func TestService_FinishResolvesRound(t *testing.T) {
	svc := newTestService(t, "A...B")

	res, _, err := svc.ProcessCommand(mustCommand(t, api.CmdFinish, 1, nil))
	if err != nil || res.Accepted {
		t.Fatalf("FINISH by the waiting player must be rejected, got %+v %v", res, err)
	}

	for _, cmd := range []api.Command{
		mustCommand(t, api.CmdShoot, 0, nil),
		mustCommand(t, api.CmdFinish, 0, nil),
		mustCommand(t, api.CmdWait, 1, nil),
	} {
		if res, _, err := svc.ProcessCommand(cmd); err != nil || !res.Accepted {
			t.Fatalf("%s rejected: %+v %v", cmd.Action, res, err)
		}
	}

	res, events, err := svc.ProcessCommand(mustCommand(t, api.CmdFinish, 1, nil))
	if err != nil || !res.Accepted {
		t.Fatalf("FINISH rejected: %+v %v", res, err)
	}
	if len(eventsOfType(events, domain.EventTookDownEnemy)) != 1 {
		t.Errorf("Expected the round's kill in the returned events, got %+v", events)
	}
	if !svc.IsOver() {
		t.Error("Expected the match to be over")
	}
}

func TestService_InvalidCommands(t *testing.T) {
	svc := newTestService(t, "A...B")

	tests := []struct {
		name string
		cmd  api.Command
	}{
		{"unknown action", api.Command{Action: "JUMP"}},
		{"empty action", api.Command{}},
		{"negative player", api.Command{Action: api.CmdWait, Player: -1}},
		{"move without payload", api.Command{Action: api.CmdMove}},
		{"broken payload", api.Command{Action: api.CmdMove, Payload: json.RawMessage(`{"col":`)}},
		{"negative cell", mustCommand(t, api.CmdMove, 0, api.CellPayload{Col: -1, Row: 0})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.ProcessCommand(tt.cmd); err == nil {
				t.Error("Expected an error")
			}
		})
	}
	if turn, _ := svc.Sim.Turn(0); len(turn.Actions) != 0 {
		t.Errorf("Invalid commands must not queue anything, got %+v", turn.Actions)
	}
}

func TestDispatcher_UnregisteredAction(t *testing.T) {
	sim := newTestSim(t, testConfig(), "A...B")
	d := handlers.NewDispatcher(sim)

	_, err := d.Dispatch(api.Command{Action: api.CmdWait})
	if !errors.Is(err, handlers.ErrUnknownCommand) {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}

	d.Register("wait", handlers.WithEmptyPayload(func(ctx handlers.Context) (handlers.Result, error) {
		return handlers.FromBool(ctx.Sim.EnqueueWait(ctx.Player), "ok", "no"), nil
	}))
	res, err := d.Dispatch(api.Command{Action: "Wait"})
	if err != nil || !res.Accepted {
		t.Errorf("Registered handler should run, got %+v %v", res, err)
	}
}

