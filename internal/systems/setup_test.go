package systems

import (
	"os"
	"testing"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// mustGrid builds a grid from ASCII rows: '#' is a wall, anything else is floor.
func mustGrid(t *testing.T, rows ...string) *domain.Grid {
	t.Helper()
	m := make([][]bool, len(rows))
	for r, line := range rows {
		m[r] = make([]bool, len(line))
		for c, ch := range line {
			m[r][c] = ch == '#'
		}
	}
	g, err := domain.NewGridFromRows(m, domain.DefaultTileSize)
	if err != nil {
		t.Fatalf("build grid: %v", err)
	}
	return g
}

func cell(col, row int) domain.Cell {
	return domain.Cell{Col: col, Row: row}
}
