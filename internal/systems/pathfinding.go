package systems

import (
	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// StepCost is the price of one path step, diagonal steps included.
const StepCost = 1

// Heuristic estimates the remaining step count between two cells.
type Heuristic func(a, b domain.Cell) int

// Manhattan is the default A* heuristic.
func Manhattan(a, b domain.Cell) int {
	return a.ManhattanTo(b)
}

// PathOptions tunes a single search.
type PathOptions struct {
	AllowDiagonal bool
	Heuristic     Heuristic              // nil means Manhattan
	Blocked       func(domain.Cell) bool // extra impassable cells on top of walls, e.g. other players
}

// Порядок соседей фиксирован: от него зависит выбор среди равных по длине путей.
var (
	orthogonalSteps = []domain.Cell{{Col: -1, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: -1}, {Col: 0, Row: 1}}
	diagonalSteps   = []domain.Cell{{Col: -1, Row: -1}, {Col: 1, Row: -1}, {Col: -1, Row: 1}, {Col: 1, Row: 1}}
)

func (o PathOptions) heuristic() Heuristic {
	if o.Heuristic != nil {
		return o.Heuristic
	}
	return Manhattan
}

func (o PathOptions) passable(g *domain.Grid, c domain.Cell) bool {
	if g.IsWall(c) {
		return false
	}
	return o.Blocked == nil || !o.Blocked(c)
}

func (o PathOptions) steps() []domain.Cell {
	if !o.AllowDiagonal {
		return orthogonalSteps
	}
	steps := make([]domain.Cell, 0, len(orthogonalSteps)+len(diagonalSteps))
	steps = append(steps, orthogonalSteps...)
	return append(steps, diagonalSteps...)
}

// FindPath returns the cells from start to goal, start excluded and goal included.
// The result is empty when goal is unreachable, is a wall, or equals start.
func FindPath(g *domain.Grid, start, goal domain.Cell, opts PathOptions) []domain.Cell {
	pathLogger := logger.Log.WithFields(logrus.Fields{
		"component": "pathfinder",
		"start":     start,
		"goal":      goal,
	})

	if start == goal || !g.InBounds(start) || !opts.passable(g, goal) {
		return nil
	}

	h := opts.heuristic()
	steps := opts.steps()

	// Арена на один поиск: узел на каждую клетку, выбрасывается после возврата.
	nodes := make([]pathNode, g.Size())
	for i := range nodes {
		nodes[i].parent = -1
		nodes[i].heapIndex = -1
	}
	open := newOpenSet(nodes)

	startID, goalID := g.Index(start), g.Index(goal)
	nodes[startID].visited = true
	nodes[startID].h = h(start, goal)
	nodes[startID].f = nodes[startID].h
	open.push(startID)

	expanded := 0
	for open.Len() > 0 {
		cur := open.popMin()
		if cur == goalID {
			path := reconstructPath(g, nodes, goalID)
			pathLogger.WithFields(logrus.Fields{"length": len(path), "expanded": expanded}).Debug("Path found.")
			return path
		}
		nodes[cur].closed = true
		expanded++

		curCell := g.CellAtIndex(cur)
		for _, d := range steps {
			next := curCell.Shift(d.Col, d.Row)
			if !opts.passable(g, next) {
				continue
			}
			id := g.Index(next)
			n := &nodes[id]
			if n.closed {
				continue
			}

			score := nodes[cur].g + StepCost
			if n.visited && score >= n.g {
				continue
			}
			if !n.visited {
				n.visited = true
				n.h = h(next, goal)
			}
			n.parent = cur
			n.g = score
			n.f = n.g + n.h
			if open.contains(id) {
				open.rescore(id)
			} else {
				open.push(id)
			}
		}
	}

	pathLogger.WithField("expanded", expanded).Debug("Goal unreachable.")
	return nil
}

func reconstructPath(g *domain.Grid, nodes []pathNode, goalID int) []domain.Cell {
	var path []domain.Cell
	for id := goalID; nodes[id].parent != -1; id = nodes[id].parent {
		path = append(path, g.CellAtIndex(id))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ReachableCells returns every cell within budget steps of from, from itself excluded.
// Distances are breadth-first over the same neighbourhood FindPath uses.
func ReachableCells(g *domain.Grid, from domain.Cell, budget int, opts PathOptions) mapset.Set[domain.Cell] {
	reach := mapset.New[domain.Cell]()
	if budget <= 0 || g.IsWall(from) {
		return reach
	}

	steps := opts.steps()
	seen := mapset.New[domain.Cell]()
	seen.Put(from)
	frontier := []domain.Cell{from}
	for depth := 1; depth <= budget && len(frontier) > 0; depth++ {
		var next []domain.Cell
		for _, c := range frontier {
			for _, d := range steps {
				n := c.Shift(d.Col, d.Row)
				if seen.Has(n) || !opts.passable(g, n) {
					continue
				}
				seen.Put(n)
				reach.Put(n)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return reach
}
