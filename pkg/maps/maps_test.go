package maps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Namek/battle-tactics/internal/domain"
)

func TestMap1(t *testing.T) {
	m := Map1(domain.DefaultTileSize)

	// 1. Проверка размеров
	if m.Grid.Width != 30 || m.Grid.Height != 10 {
		t.Errorf("Expected map size 30x10, got %dx%d", m.Grid.Width, m.Grid.Height)
	}

	// 2. Проверка стартов
	want := []domain.Cell{{Col: 1, Row: 1}, {Col: 28, Row: 8}}
	if len(m.Starts) != 2 || m.Starts[0] != want[0] || m.Starts[1] != want[1] {
		t.Errorf("Expected starts %v, got %v", want, m.Starts)
	}
	for _, s := range m.Starts {
		if m.Grid.IsWall(s) {
			t.Errorf("Start position %v is inside a wall!", s)
		}
	}

	// 3. Количество стен
	walls := 0
	for _, row := range m.Grid.Rows() {
		for _, w := range row {
			if w {
				walls++
			}
		}
	}
	if walls != 55 {
		t.Errorf("Expected 55 walls, got %d", walls)
	}

	// 4. Несколько известных стен
	for _, c := range []domain.Cell{{Col: 6, Row: 2}, {Col: 19, Row: 9}, {Col: 24, Row: 8}, {Col: 13, Row: 6}} {
		if !m.Grid.IsWall(c) {
			t.Errorf("Expected wall at %v", c)
		}
	}
}

func TestParseASCII(t *testing.T) {
	m, err := ParseASCII("small", []string{
		"#####",
		"#B.A#",
		"#####",
	}, 10)
	if err != nil {
		t.Fatalf("ParseASCII: %v", err)
	}
	if m.Starts[0] != (domain.Cell{Col: 3, Row: 1}) || m.Starts[1] != (domain.Cell{Col: 1, Row: 1}) {
		t.Errorf("Starts are indexed by letter, got %v", m.Starts)
	}
	if m.Grid.TileSize != 10 {
		t.Errorf("Expected tile size 10, got %v", m.Grid.TileSize)
	}
	if got := m.ASCII(); got[1] != "#B.A#" {
		t.Errorf("ASCII round trip: got %q", got[1])
	}
}

func TestParseASCII_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"bad glyph", []string{"A.?B"}, ErrUnknownGlyph},
		{"gap in letters", []string{"A..C"}, ErrMissingStart},
		{"single player", []string{"A..."}, ErrTooFewStarts},
		{"ragged", []string{"A..", "B."}, domain.ErrRaggedGrid},
		{"empty", nil, domain.ErrEmptyGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseASCII(tt.name, tt.rows, domain.DefaultTileSize)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	letters := filepath.Join(dir, "corridor.yaml")
	if err := os.WriteFile(letters, []byte("rows:\n  - \"#####\"\n  - \"#A.B#\"\n  - \"#####\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(letters, 25)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "corridor" || m.Grid.TileSize != 25 || len(m.Starts) != 2 {
		t.Errorf("Unexpected map %+v", m)
	}

	explicit := filepath.Join(dir, "explicit.yaml")
	body := "name: open\ntile_size: 40\nrows:\n  - \"A...\"\n  - \"....\"\nstarts:\n  - {col: 0, row: 1}\n  - {col: 3, row: 0}\n"
	if err := os.WriteFile(explicit, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err = Load(explicit, 25)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "open" || m.Grid.TileSize != 40 {
		t.Errorf("Expected name and tile size from file, got %q %v", m.Name, m.Grid.TileSize)
	}
	if m.Starts[0] != (domain.Cell{Col: 0, Row: 1}) || m.Starts[1] != (domain.Cell{Col: 3, Row: 0}) {
		t.Errorf("Explicit starts must win over letters, got %v", m.Starts)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml"), 25); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestOpen(t *testing.T) {
	m, err := Open("map1", 30)
	if err != nil || m.Name != "map1" {
		t.Fatalf("Open(map1) = %+v, %v", m.Name, err)
	}

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := os.WriteFile(path, []byte("rows: [\"A.B\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err = Open(path, 30)
	if err != nil || m.Name != "tiny" || m.Grid.Width != 3 {
		t.Errorf("Open(file) = %+v, %v", m, err)
	}

	if _, err := Open("no-such-map", 30); err == nil {
		t.Error("Expected an error for an unknown map")
	}
}
