package systems

import (
	"math"

	"github.com/Namek/battle-tactics/internal/domain"
)

// CornerTurn is the rotation sense from the corner heading d towards -s,
// the side the wall's shadow lies on. Screen y grows downward, so a visual
// counter-clockwise turn has a negative cross product.
type CornerTurn uint8

const (
	CornerTurnNone CornerTurn = iota
	CornerTurnCCW
	CornerTurnCW
)

func (c CornerTurn) String() string {
	switch c {
	case CornerTurnCCW:
		return "CCW"
	case CornerTurnCW:
		return "CW"
	default:
		return "NONE"
	}
}

// fanStart names the heading a peek fan's counter-clockwise sweep starts from.
type fanStart uint8

const (
	startAtCorner   fanStart = iota // d
	startAtBisector                 // d - s
)

// Обход веера всегда против часовой стрелки; таблица выбирает начальный луч.
var fanStartByTurn = map[CornerTurn]fanStart{
	CornerTurnCCW: startAtCorner,
	CornerTurnCW:  startAtBisector,
}

// Четыре направления к соседним стенам, против часовой стрелки от +x.
var wallDirs = [4]domain.Cell{{Col: 1, Row: 0}, {Col: 0, Row: -1}, {Col: -1, Row: 0}, {Col: 0, Row: 1}}

// PeekCell is a cell the viewer can lean into to look past a wall corner.
type PeekCell struct {
	Cell   domain.Cell `json:"cell" msgpack:"cell"`     // lean-out cell, Viewer + Offset
	Wall   domain.Cell `json:"wall" msgpack:"wall"`     // peekable wall, Viewer + Dir
	Dir    domain.Cell `json:"dir" msgpack:"dir"`       // viewer -> wall
	Offset domain.Cell `json:"offset" msgpack:"offset"` // viewer -> lean-out cell, perpendicular to Dir
	Turn   CornerTurn  `json:"turn" msgpack:"turn"`
}

// perpendiculars returns both unit offsets orthogonal to d.
func perpendiculars(d domain.Cell) [2]domain.Cell {
	return [2]domain.Cell{{Col: -d.Row, Row: d.Col}, {Col: d.Row, Row: -d.Col}}
}

func vec(c domain.Cell) domain.Vector {
	return domain.Vector{X: float64(c.Col), Y: float64(c.Row)}
}

func cornerTurn(d, s domain.Cell) CornerTurn {
	if vec(d).Cross(vec(s).Scale(-1)) < 0 {
		return CornerTurnCCW
	}
	return CornerTurnCW
}

// IsPeekable reports whether the orthogonal neighbour wall of viewer has at
// least one open cell flanking it along its face.
func (v *Visibility) IsPeekable(viewer, wall domain.Cell) bool {
	if !v.grid.IsWall(wall) || !viewer.IsAdjacent(wall) {
		return false
	}
	d := domain.Cell{Col: wall.Col - viewer.Col, Row: wall.Row - viewer.Row}
	for _, s := range perpendiculars(d) {
		if !v.grid.IsWall(wall.Shift(s.Col, s.Row)) {
			return true
		}
	}
	return false
}

// PeekableWalls lists the viewer's peekable neighbour walls.
func (v *Visibility) PeekableWalls(viewer domain.Cell) []domain.Cell {
	var walls []domain.Cell
	for _, d := range wallDirs {
		w := viewer.Shift(d.Col, d.Row)
		if v.IsPeekable(viewer, w) {
			walls = append(walls, w)
		}
	}
	return walls
}

// PeekCells derives up to two lean-out cells per peekable wall: for every open
// flank W+s the viewer leans to V+s, provided that cell is floor.
func (v *Visibility) PeekCells(viewer domain.Cell) []PeekCell {
	if v.grid.IsWall(viewer) {
		return nil
	}
	var cells []PeekCell
	for _, d := range wallDirs {
		wall := viewer.Shift(d.Col, d.Row)
		if !v.grid.IsWall(wall) {
			continue
		}
		for _, s := range perpendiculars(d) {
			if v.grid.IsWall(wall.Shift(s.Col, s.Row)) {
				continue
			}
			lean := viewer.Shift(s.Col, s.Row)
			if v.grid.IsWall(lean) {
				continue
			}
			cells = append(cells, PeekCell{
				Cell:   lean,
				Wall:   wall,
				Dir:    d,
				Offset: s,
				Turn:   cornerTurn(d, s),
			})
		}
	}
	return cells
}

// PeekCone casts the fan of a peek cell. The fan spans the corner heading d
// and the lean bisector d-s, swept counter-clockwise from the heading the
// corner table selects.
func (v *Visibility) PeekCone(pc PeekCell) Cone {
	origin := v.grid.Center(pc.Cell)
	corner := domain.DegreesOf(vec(pc.Dir))
	bisector := domain.DegreesOf(vec(pc.Dir).Sub(vec(pc.Offset)))

	start := corner
	if fanStartByTurn[pc.Turn] == startAtBisector {
		start = bisector
	}

	n := int(math.Round(v.cfg.PeekFanDeg * v.cfg.PeekSamplesPerDeg))
	if n < 1 {
		n = 1
	}
	cone := Cone{Viewer: pc.Cell, Origin: origin, Points: make([]domain.Point, 0, n+1)}
	for i := 0; i <= n; i++ {
		hit, err := v.tracer.CastAngle(origin, start+v.cfg.PeekFanDeg*float64(i)/float64(n))
		if err != nil {
			continue
		}
		cone.Points = append(cone.Points, hit.Point)
	}
	return cone
}

// PeekCones returns the cone of every peek cell of viewer.
func (v *Visibility) PeekCones(viewer domain.Cell) []Cone {
	cells := v.PeekCells(viewer)
	cones := make([]Cone, 0, len(cells))
	for _, pc := range cells {
		cones = append(cones, v.PeekCone(pc))
	}
	return cones
}
