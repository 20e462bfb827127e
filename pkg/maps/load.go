package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Namek/battle-tactics/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a map file.
//
//	name: corridor
//	tile_size: 30
//	rows:
//	  - "#####"
//	  - "#A.B#"
//
// Starts, when present, override the letters in Rows.
type File struct {
	Name     string        `yaml:"name"`
	TileSize float64       `yaml:"tile_size"`
	Rows     []string      `yaml:"rows"`
	Starts   []domain.Cell `yaml:"starts"`
}

// Load reads a YAML map file. A zero tile_size falls back to defaultTile.
func Load(path string, defaultTile float64) (Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("read map: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Map{}, fmt.Errorf("parse map %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if f.TileSize == 0 {
		f.TileSize = defaultTile
	}
	return f.Build()
}

// Build turns a decoded file into a Map.
func (f File) Build() (Map, error) {
	if len(f.Starts) == 0 {
		return ParseASCII(f.Name, f.Rows, f.TileSize)
	}

	// Явные старты: буквы в строках не нужны, но и не мешают.
	rows := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		rows[i] = strings.Map(func(ch rune) rune {
			if ch >= 'A' && ch <= 'Z' {
				return GlyphFloor
			}
			return ch
		}, r)
	}
	m, err := parseWalls(f.Name, rows, f.TileSize)
	if err != nil {
		return Map{}, err
	}
	for i, c := range f.Starts {
		if m.Grid.IsWall(c) {
			return Map{}, fmt.Errorf("%s: start %d at %v is a wall", f.Name, i, c)
		}
	}
	if len(f.Starts) < 2 {
		return Map{}, fmt.Errorf("%s: %w", f.Name, ErrTooFewStarts)
	}
	m.Starts = append([]domain.Cell(nil), f.Starts...)
	return m, nil
}

// parseWalls parses rows that carry no start letters.
func parseWalls(name string, rows []string, tileSize float64) (Map, error) {
	walls := make([][]bool, len(rows))
	for r, line := range rows {
		walls[r] = make([]bool, len(line))
		for c, ch := range []byte(line) {
			switch ch {
			case GlyphWall:
				walls[r][c] = true
			case GlyphFloor:
			default:
				return Map{}, fmt.Errorf("%s: %q at (%d,%d): %w", name, ch, c, r, ErrUnknownGlyph)
			}
		}
	}
	grid, err := domain.NewGridFromRows(walls, tileSize)
	if err != nil {
		return Map{}, fmt.Errorf("%s: %w", name, err)
	}
	return Map{Name: name, Grid: grid}, nil
}

// Open returns the built-in map called ref, or loads ref as a YAML file.
func Open(ref string, tileSize float64) (Map, error) {
	if m, ok := Builtin(ref, tileSize); ok {
		return m, nil
	}
	return Load(ref, tileSize)
}
