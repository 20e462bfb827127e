package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/systems"
	"gopkg.in/yaml.v3"
)

var ErrBadRules = errors.New("invalid game rules")

// Costs - стоимость действий в очках действия.
type Costs struct {
	Move  int `yaml:"move"`
	Wait  int `yaml:"wait"`
	Peek  int `yaml:"peek"`
	Shoot int `yaml:"shoot"`
}

// Rules are the parameters of turn resolution.
type Rules struct {
	MaxActionPoints int   `yaml:"max_action_points"`
	Costs           Costs `yaml:"costs"`
	AllowDiagonal   bool  `yaml:"allow_diagonal"`

	// PostMoveSnapshot makes the second shoot pass of a step use line of sight
	// taken after movement instead of the pre-move snapshot.
	PostMoveSnapshot bool `yaml:"post_move_snapshot"`
}

// Cost returns the AP price of an action type. Idle is free.
func (r Rules) Cost(t domain.ActionType) int {
	switch t {
	case domain.ActionMove:
		return r.Costs.Move
	case domain.ActionWait:
		return r.Costs.Wait
	case domain.ActionPeek:
		return r.Costs.Peek
	case domain.ActionShoot:
		return r.Costs.Shoot
	default:
		return 0
	}
}

func (r Rules) pathOptions(blocked func(domain.Cell) bool) systems.PathOptions {
	return systems.PathOptions{AllowDiagonal: r.AllowDiagonal, Blocked: blocked}
}

// Config хранит параметры запуска движка
type Config struct {
	Rules    `yaml:",inline"`
	Vision   systems.VisionConfig `yaml:"vision"`
	TileSize float64              `yaml:"tile_size"`
}

// NewConfig создает конфиг по умолчанию (правила прототипа)
func NewConfig() Config {
	return Config{
		Rules: Rules{
			MaxActionPoints: domain.DefaultMaxActionPoints,
			Costs: Costs{
				Move:  domain.CostMove,
				Wait:  domain.CostWait,
				Peek:  domain.CostPeek,
				Shoot: domain.CostShoot,
			},
		},
		Vision:   systems.DefaultVisionConfig(),
		TileSize: domain.DefaultTileSize,
	}
}

// LoadConfig reads a YAML config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config bytes and fills zero fields with defaults.
func ParseConfig(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := NewConfig()
	if c.MaxActionPoints == 0 {
		c.MaxActionPoints = def.MaxActionPoints
	}
	if c.Costs.Move == 0 {
		c.Costs.Move = def.Costs.Move
	}
	if c.Costs.Wait == 0 {
		c.Costs.Wait = def.Costs.Wait
	}
	if c.Costs.Peek == 0 {
		c.Costs.Peek = def.Costs.Peek
	}
	if c.Costs.Shoot == 0 {
		c.Costs.Shoot = def.Costs.Shoot
	}
	if c.Vision.FrustumStepDeg == 0 {
		c.Vision.FrustumStepDeg = def.Vision.FrustumStepDeg
	}
	if c.Vision.PeekFanDeg == 0 {
		c.Vision.PeekFanDeg = def.Vision.PeekFanDeg
	}
	if c.Vision.PeekSamplesPerDeg == 0 {
		c.Vision.PeekSamplesPerDeg = def.Vision.PeekSamplesPerDeg
	}
	if c.TileSize == 0 {
		c.TileSize = def.TileSize
	}
}

// Validate rejects configs resolution cannot work with.
func (c Config) Validate() error {
	if c.MaxActionPoints < 1 {
		return fmt.Errorf("max_action_points %d: %w", c.MaxActionPoints, ErrBadRules)
	}
	for name, v := range map[string]int{"move": c.Costs.Move, "wait": c.Costs.Wait, "peek": c.Costs.Peek, "shoot": c.Costs.Shoot} {
		if v < 1 {
			return fmt.Errorf("cost %s %d: %w", name, v, ErrBadRules)
		}
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile_size %v: %w", c.TileSize, domain.ErrBadTileSize)
	}
	if c.Vision.FrustumStepDeg < 0 || c.Vision.PeekFanDeg < 0 || c.Vision.PeekSamplesPerDeg < 0 {
		return fmt.Errorf("vision resolution must be positive: %w", ErrBadRules)
	}
	return nil
}
