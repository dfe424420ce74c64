// Package storage persists player statistics between sessions.
package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	statsObject   = "stats"
	statsProperty = "record"
)

// Stats is the persisted play record
type Stats struct {
	Plays     int `yaml:"plays"`
	Wins      int `yaml:"wins"`
	Losses    int `yaml:"losses"`
	BestScore int `yaml:"bestScore"`
}

// StatsStore keeps Stats in memory and mirrors them to gdata.
// With a nil manager the store works in memory only.
type StatsStore struct {
	manager *gdata.Manager
	stats   Stats
	log     zerolog.Logger
}

// Open opens the gdata storage for appName. When the platform storage is
// unavailable it returns a memory-only store together with the error.
func Open(appName string, logger zerolog.Logger) (*StatsStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		s, _ := NewStatsStore(nil, logger)
		return s, fmt.Errorf("failed to open save storage: %w", err)
	}
	return NewStatsStore(manager, logger)
}

// NewStatsStore creates a store backed by manager and loads saved stats.
// A load failure is logged and leaves zeroed stats.
func NewStatsStore(manager *gdata.Manager, logger zerolog.Logger) (*StatsStore, error) {
	s := &StatsStore{
		manager: manager,
		log:     logger.With().Str("component", "stats").Logger(),
	}
	if err := s.Load(); err != nil {
		s.log.Warn().Err(err).Msg("failed to load stats, starting fresh")
	}
	return s, nil
}

// Persistent reports whether stats survive a restart
func (s *StatsStore) Persistent() bool {
	return s.manager != nil
}

// Load reads the saved stats, if any
func (s *StatsStore) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var loaded Stats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	s.stats = loaded
	return nil
}

// Save writes the stats. Memory-only stores return nil.
func (s *StatsStore) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := s.manager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Stats returns a copy of the current record
func (s *StatsStore) Stats() Stats {
	return s.stats
}

// RecordPlay counts a started run
func (s *StatsStore) RecordPlay() {
	s.stats.Plays++
	s.persist()
}

// RecordWin counts a won run
func (s *StatsStore) RecordWin(score int) {
	s.stats.Wins++
	s.bumpBest(score)
	s.persist()
}

// RecordLoss counts a lost run
func (s *StatsStore) RecordLoss(score int) {
	s.stats.Losses++
	s.bumpBest(score)
	s.persist()
}

func (s *StatsStore) bumpBest(score int) {
	if score > s.stats.BestScore {
		s.stats.BestScore = score
	}
}

// persist saves and only logs failures; play goes on without storage
func (s *StatsStore) persist() {
	if err := s.Save(); err != nil {
		s.log.Warn().Err(err).Msg("failed to save stats")
	}
}
