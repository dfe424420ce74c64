package config

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when a level file fails validation
var ErrInvalidLevel = errors.New("invalid level")

// LevelConfig is the root config for levels/<id>.yaml
type LevelConfig struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Instruction string           `yaml:"instruction"`
	Bounds      RectConfig       `yaml:"bounds"`
	PlayerSpawn PositionConfig   `yaml:"playerSpawn"`
	KeyArea     *RectConfig      `yaml:"keyArea"` // inclusive range for the random key position
	Doors       []PositionConfig `yaml:"doors"`
	Enemies     []EnemySpawn     `yaml:"enemies"`
	EnemyBounce bool             `yaml:"enemyBounce"` // enemies collide with each other
	Ground      GroundConfig     `yaml:"ground"`
	Background  string           `yaml:"background"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// EnemySpawn places one enemy. With Random set, velocity components are
// drawn from [Random.Min, Random.Max] instead of VX/VY.
type EnemySpawn struct {
	X      int            `yaml:"x"`
	Y      int            `yaml:"y"`
	VX     int            `yaml:"vx"`
	VY     int            `yaml:"vy"`
	Random *VelocityRange `yaml:"random"`
}

type VelocityRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// GroundConfig is the decorative tile layer
type GroundConfig struct {
	TileSize int                    `yaml:"tileSize"`
	Rows     []string               `yaml:"rows"`
	Tiles    map[string]TileMapping `yaml:"tiles"`
}

type TileMapping struct {
	Type string `yaml:"type"`
}

// Validate checks the invariants the scenes rely on
func (c *LevelConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if c.Bounds.W <= 0 || c.Bounds.H <= 0 {
		return fmt.Errorf("%w: %s: bounds must have a positive size", ErrInvalidLevel, c.ID)
	}
	if c.KeyArea != nil && (c.KeyArea.W < 0 || c.KeyArea.H < 0) {
		return fmt.Errorf("%w: %s: negative key area", ErrInvalidLevel, c.ID)
	}
	for i, e := range c.Enemies {
		if e.Random != nil && e.Random.Min > e.Random.Max {
			return fmt.Errorf("%w: %s: enemy %d velocity range is empty", ErrInvalidLevel, c.ID, i)
		}
	}
	if len(c.Ground.Rows) > 0 && c.Ground.TileSize <= 0 {
		return fmt.Errorf("%w: %s: ground rows need a tile size", ErrInvalidLevel, c.ID)
	}
	return nil
}
