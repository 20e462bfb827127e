package systems

import (
	"testing"

	"github.com/Namek/battle-tactics/internal/domain"
)

var mazeRows = []string{
	"..........",
	".####.###.",
	".#......#.",
	".#.####.#.",
	"...#..#...",
	"##.#.##.##",
	"...#......",
}

// bfsDistances is the brute-force reference for 4-directional shortest paths.
func bfsDistances(g *domain.Grid, from domain.Cell) map[domain.Cell]int {
	dist := map[domain.Cell]int{from: 0}
	queue := []domain.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range orthogonalSteps {
			n := c.Shift(d.Col, d.Row)
			if g.IsWall(n) {
				continue
			}
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

func assertContiguous(t *testing.T, g *domain.Grid, start domain.Cell, path []domain.Cell) {
	t.Helper()
	prev := start
	for i, c := range path {
		if g.IsWall(c) {
			t.Fatalf("step %d: %v is a wall", i, c)
		}
		if !prev.IsAdjacent(c) {
			t.Fatalf("step %d: %v is not adjacent to %v", i, c, prev)
		}
		prev = c
	}
}

func TestFindPath_Straight(t *testing.T) {
	g := mustGrid(t, ".....", ".....")
	path := FindPath(g, cell(0, 0), cell(4, 0), PathOptions{})
	if len(path) != 4 {
		t.Fatalf("Expected 4 steps, got %d (%v)", len(path), path)
	}
	if path[len(path)-1] != cell(4, 0) {
		t.Errorf("Path must end on the goal, got %v", path)
	}
	for _, c := range path {
		if c == cell(0, 0) {
			t.Error("Path must not include the start")
		}
	}
	assertContiguous(t, g, cell(0, 0), path)
}

func TestFindPath_EmptyResults(t *testing.T) {
	g := mustGrid(t,
		"..#..",
		"..#..",
		"..#..",
	)
	tests := []struct {
		name        string
		start, goal domain.Cell
	}{
		{"same cell", cell(0, 0), cell(0, 0)},
		{"goal is wall", cell(0, 0), cell(2, 1)},
		{"goal outside grid", cell(0, 0), cell(9, 9)},
		{"walled off", cell(0, 0), cell(4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if path := FindPath(g, tt.start, tt.goal, PathOptions{}); len(path) != 0 {
				t.Errorf("Expected no path, got %v", path)
			}
		})
	}
}

func TestFindPath_MatchesBFS(t *testing.T) {
	g := mustGrid(t, mazeRows...)
	for i := 0; i < g.Size(); i++ {
		start := g.CellAtIndex(i)
		if g.IsWall(start) {
			continue
		}
		dist := bfsDistances(g, start)
		for j := 0; j < g.Size(); j++ {
			goal := g.CellAtIndex(j)
			if g.IsWall(goal) || goal == start {
				continue
			}
			path := FindPath(g, start, goal, PathOptions{})
			want, reachable := dist[goal]
			if !reachable {
				if len(path) != 0 {
					t.Fatalf("%v->%v: expected no path, got %v", start, goal, path)
				}
				continue
			}
			if len(path) != want {
				t.Fatalf("%v->%v: expected length %d, got %d", start, goal, want, len(path))
			}
			assertContiguous(t, g, start, path)
		}
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	g := mustGrid(t, mazeRows...)
	first := FindPath(g, cell(0, 0), cell(9, 6), PathOptions{})
	for i := 0; i < 5; i++ {
		again := FindPath(g, cell(0, 0), cell(9, 6), PathOptions{})
		if len(again) != len(first) {
			t.Fatalf("Run %d: length %d, expected %d", i, len(again), len(first))
		}
		for k := range first {
			if first[k] != again[k] {
				t.Fatalf("Run %d: step %d differs: %v vs %v", i, k, again[k], first[k])
			}
		}
	}
}

func TestFindPath_Blocked(t *testing.T) {
	g := mustGrid(t,
		"...",
		"#.#",
		"...",
	)
	blocker := cell(1, 1)
	opts := PathOptions{Blocked: func(c domain.Cell) bool { return c == blocker }}

	if path := FindPath(g, cell(0, 0), cell(0, 2), opts); len(path) != 0 {
		t.Errorf("Expected the blocked corridor to cut the map, got %v", path)
	}
	if path := FindPath(g, cell(0, 0), blocker, opts); len(path) != 0 {
		t.Errorf("Blocked goal must be unreachable, got %v", path)
	}
	if path := FindPath(g, cell(0, 0), cell(0, 2), PathOptions{}); len(path) != 4 {
		t.Errorf("Expected 4 steps without the blocker, got %v", path)
	}
}

func TestFindPath_Diagonal(t *testing.T) {
	g := mustGrid(t, ".....", ".....", ".....", ".....", ".....")
	path := FindPath(g, cell(0, 0), cell(4, 4), PathOptions{AllowDiagonal: true})
	if len(path) == 0 || path[len(path)-1] != cell(4, 4) {
		t.Fatalf("Expected a path to (4,4), got %v", path)
	}
	if len(path) > 8 {
		t.Errorf("Diagonal path must not be longer than the orthogonal one, got %d", len(path))
	}
	prev := cell(0, 0)
	for _, c := range path {
		dc, dr := c.Col-prev.Col, c.Row-prev.Row
		if dc < -1 || dc > 1 || dr < -1 || dr > 1 || (dc == 0 && dr == 0) {
			t.Fatalf("Step %v -> %v is not a king move", prev, c)
		}
		prev = c
	}
}

func TestFindPath_CustomHeuristic(t *testing.T) {
	g := mustGrid(t, mazeRows...)
	calls := 0
	zero := func(a, b domain.Cell) int {
		calls++
		return 0
	}
	path := FindPath(g, cell(0, 0), cell(9, 6), PathOptions{Heuristic: zero})
	want := bfsDistances(g, cell(0, 0))[cell(9, 6)]
	if len(path) != want {
		t.Errorf("Zero heuristic degrades to Dijkstra and must stay optimal: got %d, want %d", len(path), want)
	}
	if calls == 0 {
		t.Error("Custom heuristic was never consulted")
	}
}

func TestReachableCells(t *testing.T) {
	g := mustGrid(t, mazeRows...)
	from := cell(0, 4)
	dist := bfsDistances(g, from)

	for _, budget := range []int{0, 1, 3, 6} {
		reach := ReachableCells(g, from, budget, PathOptions{})
		want := 0
		for c, d := range dist {
			inReach := reach.Has(c)
			if c == from {
				if inReach {
					t.Errorf("budget %d: origin must be excluded", budget)
				}
				continue
			}
			if d <= budget {
				want++
				if !inReach {
					t.Errorf("budget %d: %v at distance %d missing", budget, c, d)
				}
			} else if inReach {
				t.Errorf("budget %d: %v at distance %d must be out of reach", budget, c, d)
			}
		}
		if reach.Size() != want {
			t.Errorf("budget %d: expected %d cells, got %d", budget, want, reach.Size())
		}
	}
}
