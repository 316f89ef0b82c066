package scene

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"go.uber.org/zap"
)

var ErrNoFactory = errors.New("no factory registered for scene")

// Scene is one screen of the game. Update returning ebiten.Termination ends
// the process.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Close() error
}

// Transitioner is implemented by scenes that ask for another scene. The
// manager switches after the scene's Update returns.
type Transitioner interface {
	NextScene() (common.SceneName, bool)
}

type Factory func() (Scene, error)

type Manager struct {
	factories map[common.SceneName]Factory
	current   Scene
	name      common.SceneName
	logger    *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		factories: make(map[common.SceneName]Factory),
		logger:    logger,
	}
}

func (m *Manager) Register(name common.SceneName, f Factory) {
	m.factories[name] = f
}

// Load closes the current scene and builds a fresh one. On failure the
// current scene stays active.
func (m *Manager) Load(name common.SceneName) error {
	if !name.Valid() {
		return fmt.Errorf("scene: load %s: %w", name, common.ErrUnknownScene)
	}
	f, ok := m.factories[name]
	if !ok {
		return fmt.Errorf("scene: load %s: %w", name, ErrNoFactory)
	}
	next, err := f()
	if err != nil {
		return fmt.Errorf("scene: load %s: %w", name, err)
	}

	if m.current != nil {
		if err := m.current.Close(); err != nil {
			m.logger.Warn("close scene failed", zap.Stringer("scene", m.name), zap.Error(err))
		}
	}
	m.logger.Info("scene loaded", zap.Stringer("from", m.name), zap.Stringer("to", name))
	m.current = next
	m.name = name
	return nil
}

func (m *Manager) Current() Scene {
	return m.current
}

func (m *Manager) Name() common.SceneName {
	return m.name
}

func (m *Manager) Update() error {
	if m.current == nil {
		return nil
	}
	if err := m.current.Update(); err != nil {
		return err
	}
	t, ok := m.current.(Transitioner)
	if !ok {
		return nil
	}
	if next, ok := t.NextScene(); ok {
		return m.Load(next)
	}
	return nil
}

func (m *Manager) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}

// Close closes the active scene.
func (m *Manager) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Close()
	m.current = nil
	m.name = common.SceneNone
	return err
}
