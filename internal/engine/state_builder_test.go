package engine

import (
	"testing"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/pkg/api"
)

func TestView_AwaitingActions(t *testing.T) {
	sim := newTestSim(t, testConfig(),
		".......",
		".......",
		".....B.",
		"..A#...",
		"...#...",
	)
	sim.EnqueueWait(0)

	v := sim.View()
	if v.Round != 1 || v.Phase != "AWAITING_ACTIONS" || v.ActivePlayer != 0 || v.Winner != domain.NoPlayer {
		t.Errorf("Unexpected header %+v", v)
	}
	if v.Grid.Width != 7 || v.Grid.Height != 5 || !v.Grid.Walls[3][3] || v.Grid.Walls[0][0] {
		t.Errorf("Unexpected grid %+v", v.Grid)
	}
	if len(v.Players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(v.Players))
	}
	a := v.Players[0]
	want := api.APView{Max: 5, Spent: 1, Available: 4}
	if a.ActionPoints != want || len(a.Actions) != 1 || a.Actions[0] != "WAIT" {
		t.Errorf("Unexpected player view %+v", a)
	}

	// Reachable is row-major, excludes the cursor and every other player.
	reach := sim.Reachable(0)
	if len(v.Reachable) != reach.Size() {
		t.Fatalf("Reachable: %d cells, set has %d", len(v.Reachable), reach.Size())
	}
	for i, c := range v.Reachable {
		if c == a.Cursor || c == v.Players[1].Cell {
			t.Errorf("Reachable must not contain %v", c)
		}
		if i > 0 {
			p := v.Reachable[i-1]
			if p.Row > c.Row || (p.Row == c.Row && p.Col >= c.Col) {
				t.Errorf("Reachable not sorted at %d: %v then %v", i, p, c)
			}
		}
	}

	if v.Frustum == nil || v.Frustum.Cell != cell(2, 3) || len(v.Frustum.Points) != 72 {
		t.Errorf("Unexpected frustum %+v", v.Frustum)
	}
	if len(v.PeekCones) != 1 || v.PeekCones[0].Cell != cell(2, 2) {
		t.Errorf("Expected one peek cone from (2,2), got %+v", v.PeekCones)
	}
	if len(v.Events) != 0 {
		t.Errorf("No events before the first resolution, got %+v", v.Events)
	}
}

func TestView_AfterResolution(t *testing.T) {
	sim := newTestSim(t, testConfig(), "A.#.B", ".....")
	for round := 0; round < 2; round++ {
		sim.EnqueueWait(0)
		sim.FinishTurn()
		sim.EnqueueWait(1)
		sim.FinishTurn()
	}

	v := sim.View()
	if v.Round != 3 {
		t.Errorf("Expected round 3, got %d", v.Round)
	}
	if len(v.Events) != 1 || v.Events[0].Round != 2 {
		t.Errorf("Expected only the last round's events, got %+v", v.Events)
	}
	for _, p := range v.Players {
		if p.ActionPoints.Available != 5 || len(p.Actions) != 0 || p.Ready {
			t.Errorf("Expected a fresh queue, got %+v", p)
		}
	}
}

func TestView_GameOverHasNoHints(t *testing.T) {
	sim := newTestSim(t, testConfig(), "A...B")
	sim.EnqueueShoot(0)
	finishBoth(t, sim)

	v := sim.View()
	if v.Phase != "GAME_OVER" || v.Winner != 0 {
		t.Errorf("Expected GAME_OVER won by 0, got %s %d", v.Phase, v.Winner)
	}
	if v.Reachable != nil || v.Frustum != nil || v.PeekCones != nil {
		t.Error("No planning hints once the game is over")
	}
	if v.Players[1].Alive {
		t.Error("Player 1 should be shown dead")
	}
}
