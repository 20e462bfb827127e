package domain

import "math"

// Cell is a discrete grid coordinate.
type Cell struct {
	Col int `json:"col" yaml:"col" msgpack:"col"`
	Row int `json:"row" yaml:"row" msgpack:"row"`
}

// Shift возвращает новую клетку со смещением, не меняя текущую.
func (c Cell) Shift(dCol, dRow int) Cell {
	return Cell{Col: c.Col + dCol, Row: c.Row + dRow}
}

// ManhattanTo is the 4-directional step distance between two cells.
func (c Cell) ManhattanTo(other Cell) int {
	return abs(c.Col-other.Col) + abs(c.Row-other.Row)
}

// IsAdjacent reports whether other is one of the four orthogonal neighbours.
func (c Cell) IsAdjacent(other Cell) bool {
	return c.ManhattanTo(other) == 1
}

// Point is a continuous position in world units.
type Point struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add moves p along v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Vector is a direction or displacement in world units.
type Vector struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Scale multiplies both components by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Len is the Euclidean length of v.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether v has no direction at all.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Cross is the z component of the 2D cross product v × w.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// DirectionFromDegrees rotates the unit vector (1,0) by deg counter-clockwise.
// World Y grows downward, so a positive angle points up the screen.
func DirectionFromDegrees(deg float64) Vector {
	rad := deg * math.Pi / 180
	return Vector{X: math.Cos(rad), Y: -math.Sin(rad)}
}

// DegreesOf is the inverse of DirectionFromDegrees, in [0, 360).
func DegreesOf(v Vector) float64 {
	deg := math.Atan2(-v.Y, v.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
