package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const groundTop = 200.0

// probeWorld builds a ground slab whose top edge is at groundTop and a
// player whose centre sits at playerY, then registers both with physics.
func probeWorld(t *testing.T, playerY float64, withGround bool) (*ecs.World, *PhysicsSystem, *component.GroundProbe, *component.PhysicsBody, *component.Animator) {
	t.Helper()
	w := ecs.NewWorld()
	ps := NewPhysicsSystem()

	if withGround {
		ground := ecs.CreateEntity(w)
		mustAdd(t, w, ground, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: groundTop})
		mustAdd(t, w, ground, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 400, Height: 32, Static: true, AlignTopLeft: true})
		mustAdd(t, w, ground, component.GroundTagComponent.Kind(), &component.GroundTag{})
	}

	player := ecs.CreateEntity(w)
	probe := &component.GroundProbe{
		Points: []component.ProbePoint{{X: -10, Y: 24}, {X: 0, Y: 24}, {X: 10, Y: 24}},
		Radius: 4,
		Mask:   component.LayerGround,
	}
	body := &component.PhysicsBody{Width: 32, Height: 48, Mass: 1, FixedRotation: true}
	anim := component.NewAnimator(2)
	anim.SetTrigger(component.AnimParamJump)
	anim.SetBool(component.AnimParamLand, true)
	mustAdd(t, w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, player, component.TransformComponent.Kind(), &component.Transform{X: 100, Y: playerY, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, player, component.PhysicsBodyComponent.Kind(), body)
	mustAdd(t, w, player, component.GroundProbeComponent.Kind(), probe)
	mustAdd(t, w, player, component.AnimatorComponent.Kind(), anim)

	ps.ensureHandlers()
	ps.syncEntities(w)
	if body.Body == nil {
		t.Fatal("physics did not create a body")
	}
	return w, ps, probe, body, anim
}

func TestGroundProbeSystem(t *testing.T) {
	tests := []struct {
		name         string
		playerY      float64
		vy           float64
		withGround   bool
		wantGrounded bool
	}{
		{name: "standing on ground", playerY: groundTop - 24, withGround: true, wantGrounded: true},
		{name: "slowly falling onto ground", playerY: groundTop - 26, vy: 40, withGround: true, wantGrounded: true},
		{name: "rising through ground", playerY: groundTop - 24, vy: -300, withGround: true, wantGrounded: false},
		{name: "high above ground", playerY: groundTop - 200, withGround: true, wantGrounded: false},
		{name: "own collider is ignored", playerY: groundTop - 24, withGround: false, wantGrounded: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, ps, probe, body, anim := probeWorld(t, tc.playerY, tc.withGround)
			body.Body.SetVelocity(0, tc.vy)

			NewGroundProbeSystem(ps).Update(w)

			if probe.Grounded != tc.wantGrounded {
				t.Fatalf("grounded = %v, want %v", probe.Grounded, tc.wantGrounded)
			}
			if tc.wantGrounded {
				if anim.Triggers[component.AnimParamJump] {
					t.Fatal("jump trigger should be reset on ground")
				}
				if anim.Bools[component.AnimParamLand] {
					t.Fatal("land should be cleared on ground")
				}
			}
		})
	}
}

func TestGroundProbeIgnoresTriggers(t *testing.T) {
	w, ps, probe, _, _ := probeWorld(t, 0, false)

	zone := ecs.CreateEntity(w)
	mustAdd(t, w, zone, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0})
	mustAdd(t, w, zone, component.TriggerComponent.Kind(), &component.Trigger{Kind: component.TriggerCheckpoint, Width: 400, Height: 400})
	ps.syncEntities(w)

	NewGroundProbeSystem(ps).Update(w)

	if probe.Grounded {
		t.Fatal("trigger volume counted as ground")
	}
}
