package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Namek/battle-tactics/internal/domain"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	if cfg.MaxActionPoints != 5 {
		t.Errorf("Expected 5 AP, got %d", cfg.MaxActionPoints)
	}
	costs := map[domain.ActionType]int{
		domain.ActionMove:  1,
		domain.ActionWait:  1,
		domain.ActionPeek:  2,
		domain.ActionShoot: 3,
		domain.ActionIdle:  0,
	}
	for a, want := range costs {
		if got := cfg.Cost(a); got != want {
			t.Errorf("Cost(%v) = %d, want %d", a, got, want)
		}
	}
	if cfg.PostMoveSnapshot {
		t.Error("Second shoot pass must default to the pre-move snapshot")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config must be valid: %v", err)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
max_action_points: 7
costs:
  shoot: 4
vision:
  frustum_step_deg: 0.5
post_move_snapshot: true
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.MaxActionPoints != 7 || cfg.Costs.Shoot != 4 {
		t.Errorf("Overrides not applied: %+v", cfg.Rules)
	}
	if cfg.Costs.Peek != 2 || cfg.Costs.Move != 1 {
		t.Errorf("Missing costs must keep defaults: %+v", cfg.Costs)
	}
	if cfg.Vision.FrustumStepDeg != 0.5 || cfg.Vision.PeekFanDeg != 45 {
		t.Errorf("Vision back-fill failed: %+v", cfg.Vision)
	}
	if !cfg.PostMoveSnapshot {
		t.Error("post_move_snapshot not applied")
	}
	if cfg.TileSize != domain.DefaultTileSize {
		t.Errorf("Expected default tile size, got %v", cfg.TileSize)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"negative cost", "costs:\n  move: -1\n", ErrBadRules},
		{"negative ap", "max_action_points: -3\n", ErrBadRules},
		{"negative tile", "tile_size: -2\n", domain.ErrBadTileSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.yaml)); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
	if _, err := ParseConfig([]byte("max_action_points: [")); err == nil {
		t.Error("Expected a YAML syntax error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("allow_diagonal: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.AllowDiagonal || cfg.MaxActionPoints != 5 {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
