package system

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// newBody returns a fixed-rotation body registered in its own space.
func newBody(vx, vy float64) *cp.Body {
	space := cp.NewSpace()
	body := cp.NewBody(1, math.Inf(1))
	space.AddBody(body)
	body.SetVelocity(vx, vy)
	return body
}

func newAudio() *component.Audio {
	return &component.Audio{
		Names:   []string{component.SoundJump, component.SoundDeath},
		Players: make([]*audio.Player, 2),
		Volume:  []float64{1, 1},
		Play:    make([]bool, 2),
		Stop:    make([]bool, 2),
	}
}

type testPlayer struct {
	e     ecs.Entity
	input *component.Input
	body  *component.PhysicsBody
	probe *component.GroundProbe
	anim  *component.Animator
}

// spawnPlayer creates a controllable player with a detached body.
func spawnPlayer(t *testing.T, w *ecs.World, vx, vy float64) testPlayer {
	t.Helper()
	e := ecs.CreateEntity(w)
	p := testPlayer{
		e:     e,
		input: &component.Input{},
		body:  &component.PhysicsBody{Body: newBody(vx, vy), Width: 32, Height: 48, Mass: 1},
		probe: &component.GroundProbe{Radius: 4},
		anim:  component.NewAnimator(2),
	}
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 200, JumpImpulse: 600})
	mustAdd(t, w, e, component.InputComponent.Kind(), p.input)
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), p.body)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.GroundProbeComponent.Kind(), p.probe)
	mustAdd(t, w, e, component.AnimatorComponent.Kind(), p.anim)
	mustAdd(t, w, e, component.FacingComponent.Kind(), &component.Facing{Right: true})
	return p
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
