package ecs

import "github.com/hajimehoshi/ebiten/v2"

type System interface {
	Update(w *World)
}

// RenderSystem draws world state. Render systems run from Draw, never from
// the fixed tick.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Phase orders systems within a tick.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseMovement
	PhasePhysics
	PhaseCollision
	PhaseRules
	PhasePresentation
	phaseCount
)

var phaseNames = [...]string{"input", "movement", "physics", "collision", "rules", "presentation"}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

type Scheduler struct {
	phases  [phaseCount][]System
	renders []RenderSystem
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers system in phase. Systems in the same phase run in the order
// they were added. A system that also implements RenderSystem is drawn too.
func (s *Scheduler) Add(phase Phase, system System) {
	if system == nil || phase < 0 || phase >= phaseCount {
		return
	}
	s.phases[phase] = append(s.phases[phase], system)
	if rs, ok := system.(RenderSystem); ok {
		s.renders = append(s.renders, rs)
	}
}

// AddRender registers a draw-only system.
func (s *Scheduler) AddRender(system RenderSystem) {
	if system == nil {
		return
	}
	s.renders = append(s.renders, system)
}

// Update runs one tick: every phase in order.
func (s *Scheduler) Update(w *World) {
	for _, systems := range s.phases {
		for _, system := range systems {
			system.Update(w)
		}
	}
}

// Draw calls all render systems in registration order.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, rs := range s.renders {
		rs.Draw(w, screen)
	}
}

func (s *Scheduler) Systems() []System {
	var systems []System
	for _, phase := range s.phases {
		systems = append(systems, phase...)
	}
	return systems
}
