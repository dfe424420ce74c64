package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	Level1ID = "level1"
	Level2ID = "level2"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Level1   *LevelConfig
	Level2   *LevelConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads game.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads and validates a level YAML file
func (l *Loader) LoadLevel(id string) (*LevelConfig, error) {
	path := "levels/" + id + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", id, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", id, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadAll loads the settings and both levels
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	level1, err := l.LoadLevel(Level1ID)
	if err != nil {
		return nil, err
	}
	if len(level1.Doors) != 1 {
		return nil, fmt.Errorf("%w: %s needs exactly one door, got %d", ErrInvalidLevel, level1.ID, len(level1.Doors))
	}
	if level1.KeyArea == nil {
		return nil, fmt.Errorf("%w: %s needs a key area", ErrInvalidLevel, level1.ID)
	}

	level2, err := l.LoadLevel(Level2ID)
	if err != nil {
		return nil, err
	}
	if len(level2.Doors) != settings.Rules.DoorCount {
		return nil, fmt.Errorf("%w: %s has %d doors, rules want %d",
			ErrInvalidLevel, level2.ID, len(level2.Doors), settings.Rules.DoorCount)
	}

	return &GameConfig{
		Settings: settings,
		Level1:   level1,
		Level2:   level2,
	}, nil
}
