package save

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	statsObject   = "stats"
	statsProperty = "totals"
)

// Stats are play totals kept across sessions.
type Stats struct {
	Runs          int `yaml:"runs"`
	Wins          int `yaml:"wins"`
	GameOvers     int `yaml:"game_overs"`
	Deaths        int `yaml:"deaths"`
	BestLivesLeft int `yaml:"best_lives_left"`
}

// Store records Stats through gdata. A nil manager keeps them in memory
// only.
type Store struct {
	manager *gdata.Manager
	stats   Stats
	logger  *zap.Logger
}

// Open opens the gdata storage for appName and loads saved totals. Any
// storage failure is logged and the store degrades to memory.
func Open(appName string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("save storage unavailable, stats kept in memory", zap.Error(err))
		manager = nil
	}
	return NewStore(manager, logger)
}

func NewStore(manager *gdata.Manager, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{manager: manager, logger: logger}
	if err := s.Load(); err != nil {
		logger.Warn("load stats failed, starting from zero", zap.Error(err))
	}
	return s
}

func (s *Store) Load() error {
	s.stats = Stats{}
	if s.manager == nil || !s.manager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("save: load stats: %w", err)
	}
	var loaded Stats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("save: unmarshal stats: %w", err)
	}
	s.stats = loaded
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.stats)
	if err != nil {
		return fmt.Errorf("save: marshal stats: %w", err)
	}
	if err := s.manager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("save: write stats: %w", err)
	}
	return nil
}

func (s *Store) Stats() Stats {
	return s.stats
}

// Persistent reports whether totals reach disk.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

func (s *Store) RecordRun() {
	s.stats.Runs++
	s.persist()
}

func (s *Store) RecordDeath() {
	s.stats.Deaths++
	s.persist()
}

func (s *Store) RecordWin(livesLeft int) {
	s.stats.Wins++
	if livesLeft > s.stats.BestLivesLeft {
		s.stats.BestLivesLeft = livesLeft
	}
	s.persist()
}

func (s *Store) RecordGameOver() {
	s.stats.GameOvers++
	s.persist()
}

func (s *Store) persist() {
	if err := s.Save(); err != nil {
		s.logger.Warn("persist stats failed", zap.Error(err))
	}
}
