package domain

import (
	"errors"
	"fmt"
)

// DefaultTileSize is the prototype's cell size in world units.
const DefaultTileSize = 30

var (
	ErrEmptyGrid     = errors.New("grid has no cells")
	ErrRaggedGrid    = errors.New("grid rows have different lengths")
	ErrBadTileSize   = errors.New("tile size must be positive")
	ErrCellOutOfGrid = errors.New("cell is outside the grid")
)

// Grid is the wall map shared read-only by every system.
// Walls are stored row-major; index = row*Width + col.
type Grid struct {
	Width    int
	Height   int
	TileSize float64
	walls    []bool
}

// NewGrid creates an open grid with no interior walls.
func NewGrid(width, height int, tileSize float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if tileSize <= 0 {
		return nil, ErrBadTileSize
	}
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		walls:    make([]bool, width*height),
	}, nil
}

// NewGridFromRows builds a grid from a row-major matrix where true marks a wall.
func NewGridFromRows(rows [][]bool, tileSize float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := NewGrid(len(rows[0]), len(rows), tileSize)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("row %d: %w", r, ErrRaggedGrid)
		}
		for c, wall := range row {
			g.walls[g.Index(Cell{Col: c, Row: r})] = wall
		}
	}
	return g, nil
}

// Index maps an in-bounds cell to its slot in row-major storage.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.Width + c.Col
}

// CellAtIndex is the inverse of Index.
func (g *Grid) CellAtIndex(i int) Cell {
	return Cell{Col: i % g.Width, Row: i / g.Width}
}

// Size is the number of cells.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// InBounds reports whether c lies inside [0,Width)×[0,Height).
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// IsWall reports whether c blocks rays and movement.
// Клетки за границей карты всегда считаются стеной.
func (g *Grid) IsWall(c Cell) bool {
	return !g.InBounds(c) || g.walls[g.Index(c)]
}

// SetWall toggles a wall. It is meant for map construction; the grid must not
// change while a round is being resolved.
func (g *Grid) SetWall(c Cell, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("set wall at %v: %w", c, ErrCellOutOfGrid)
	}
	g.walls[g.Index(c)] = wall
	return nil
}

// Rows exports the wall matrix, row-major.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.Height)
	for r := range rows {
		rows[r] = make([]bool, g.Width)
		copy(rows[r], g.walls[r*g.Width:(r+1)*g.Width])
	}
	return rows
}

// Center returns the world position of the middle of a cell.
func (g *Grid) Center(c Cell) Point {
	return Point{
		X: (float64(c.Col) + 0.5) * g.TileSize,
		Y: (float64(c.Row) + 0.5) * g.TileSize,
	}
}

// CellAt returns the cell containing a world point.
func (g *Grid) CellAt(p Point) Cell {
	return Cell{Col: floorDiv(p.X, g.TileSize), Row: floorDiv(p.Y, g.TileSize)}
}

// PixelSize is the grid extent in world units.
func (g *Grid) PixelSize() (float64, float64) {
	return float64(g.Width) * g.TileSize, float64(g.Height) * g.TileSize
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
