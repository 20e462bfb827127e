package maps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Namek/battle-tactics/internal/domain"
)

var (
	ErrUnknownGlyph = errors.New("unknown map glyph")
	ErrMissingStart = errors.New("player start missing")
	ErrTooFewStarts = errors.New("map needs at least two player starts")
)

// Символы ASCII-карты. Старты игроков обозначаются буквами A, B, C... по порядку.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

// Map is a playable battlefield: the wall grid plus one start cell per player.
type Map struct {
	Name   string
	Grid   *domain.Grid
	Starts []domain.Cell
}

// ParseASCII builds a map from text rows. '#' is a wall, '.' is floor and an
// upper-case letter marks the start of player letter-'A' on a floor cell.
func ParseASCII(name string, rows []string, tileSize float64) (Map, error) {
	walls := make([][]bool, 0, len(rows))
	starts := map[int]domain.Cell{}
	maxPlayer := -1

	for r, line := range rows {
		line = strings.TrimRight(line, "\r")
		row := make([]bool, 0, len(line))
		for c, ch := range []byte(line) {
			switch {
			case ch == GlyphWall:
				row = append(row, true)
			case ch == GlyphFloor:
				row = append(row, false)
			case ch >= 'A' && ch <= 'Z':
				p := int(ch - 'A')
				if prev, dup := starts[p]; dup {
					return Map{}, fmt.Errorf("%s: player %c at (%d,%d) and %v", name, ch, c, r, prev)
				}
				starts[p] = domain.Cell{Col: c, Row: r}
				maxPlayer = max(maxPlayer, p)
				row = append(row, false)
			default:
				return Map{}, fmt.Errorf("%s: %q at (%d,%d): %w", name, ch, c, r, ErrUnknownGlyph)
			}
		}
		walls = append(walls, row)
	}

	grid, err := domain.NewGridFromRows(walls, tileSize)
	if err != nil {
		return Map{}, fmt.Errorf("%s: %w", name, err)
	}

	m := Map{Name: name, Grid: grid, Starts: make([]domain.Cell, maxPlayer+1)}
	for p := range m.Starts {
		c, ok := starts[p]
		if !ok {
			return Map{}, fmt.Errorf("%s: player %c: %w", name, 'A'+rune(p), ErrMissingStart)
		}
		m.Starts[p] = c
	}
	if len(m.Starts) < 2 {
		return Map{}, fmt.Errorf("%s: %w", name, ErrTooFewStarts)
	}
	return m, nil
}

// ASCII renders the map back into the text form ParseASCII reads.
func (m Map) ASCII() []string {
	rows := m.Grid.Rows()
	out := make([]string, len(rows))
	for r, row := range rows {
		b := make([]byte, len(row))
		for c, wall := range row {
			b[c] = GlyphFloor
			if wall {
				b[c] = GlyphWall
			}
		}
		for p, s := range m.Starts {
			if s.Row == r {
				b[s.Col] = byte('A' + p)
			}
		}
		out[r] = string(b)
	}
	return out
}
