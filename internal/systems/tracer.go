package systems

import (
	"errors"
	"math"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ErrInvalidDirection is returned by Cast for a zero direction vector.
var ErrInvalidDirection = errors.New("ray direction must be non-zero")

// WallSide tells which family of grid lines a ray crossed when it stopped.
type WallSide uint8

const (
	SideNone       WallSide = iota
	SideVertical            // constant-x line, the ray moved to another column
	SideHorizontal          // constant-y line, the ray moved to another row
)

// Hit is where a ray stopped. HitWall is false when the ray left the map
// without striking an interior wall.
type Hit struct {
	Point    domain.Point
	HitWall  bool
	Cell     domain.Cell // the cell the ray tried to enter
	Side     WallSide
	Distance float64 // from the ray origin to Point
}

// Tracer walks rays across the tile grid cell by cell.
// origin and dir are scratch reused between casts; Cast itself is pure in its inputs.
type Tracer struct {
	grid   *domain.Grid
	origin domain.Point
	dir    domain.Vector
}

// NewTracer binds a tracer to a grid.
func NewTracer(g *domain.Grid) *Tracer {
	return &Tracer{grid: g}
}

// Cast returns the first wall or boundary crossing of the ray origin+t*dir, t ≥ 0.
func (t *Tracer) Cast(origin domain.Point, dir domain.Vector) (Hit, error) {
	if dir.IsZero() {
		return Hit{}, ErrInvalidDirection
	}
	t.origin = origin
	t.dir = dir

	hit := t.trace()
	if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "tracer",
			"origin":    origin,
			"dir":       dir,
			"hit":       hit.Point,
			"hit_wall":  hit.HitWall,
		}).Trace("Ray cast.")
	}
	return hit, nil
}

// CastAngle casts a ray at deg degrees, counter-clockwise from +x on screen.
func (t *Tracer) CastAngle(origin domain.Point, deg float64) (Hit, error) {
	return t.Cast(origin, domain.DirectionFromDegrees(deg))
}

func (t *Tracer) trace() Hit {
	tile := t.grid.TileSize
	horzDir := sign(t.dir.X)
	vertDir := sign(t.dir.Y)

	cell := t.grid.CellAt(t.origin)
	if !t.grid.InBounds(cell) {
		return Hit{Point: t.origin, Cell: cell}
	}

	for {
		// Ближайшие линии сетки по ходу луча.
		edgeX := float64(cell.Col) * tile
		if horzDir > 0 {
			edgeX += tile
		}
		edgeY := float64(cell.Row) * tile
		if vertDir > 0 {
			edgeY += tile
		}
		corner := domain.Point{X: edgeX, Y: edgeY}

		tVert := t.lineParam(corner, domain.Vector{X: 0, Y: tile})
		tHorz := t.lineParam(corner, domain.Vector{X: tile, Y: 0})

		// The vertical line wins ties, so a ray through a grid corner always
		// changes column first.
		crossVertical := tVert <= tHorz
		if crossVertical {
			cell.Col += horzDir
		} else {
			cell.Row += vertDir
		}

		outside := !t.grid.InBounds(cell)
		if !outside && !t.grid.IsWall(cell) {
			continue
		}

		hit := Hit{HitWall: !outside, Cell: cell}
		if crossVertical {
			hit.Side = SideVertical
			hit.Point = domain.Point{X: edgeX, Y: t.origin.Y + t.dir.Y*tVert}
		} else {
			hit.Side = SideHorizontal
			hit.Point = domain.Point{X: t.origin.X + t.dir.X*tHorz, Y: edgeY}
		}
		hit.Distance = t.origin.DistanceTo(hit.Point)
		return hit
	}
}

// lineParam returns the ray parameter where the ray meets the infinite line
// through p with displacement d, or +Inf when they are parallel.
//
//	origin + t*dir = p + s*d  =>  t = (origin - p) × d / (d × dir)
func (t *Tracer) lineParam(p domain.Point, d domain.Vector) float64 {
	denom := d.Cross(t.dir)
	if denom == 0 {
		return math.Inf(1)
	}
	return t.origin.Sub(p).Cross(d) / denom
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
