package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// GroundProbeSystem refreshes GroundProbe.Grounded before movement runs.
type GroundProbeSystem struct {
	physics *PhysicsSystem
}

func NewGroundProbeSystem(physics *PhysicsSystem) *GroundProbeSystem {
	return &GroundProbeSystem{physics: physics}
}

const restingSpeed = 0.5

func (g *GroundProbeSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.GroundProbeComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, probe *component.GroundProbe, transform *component.Transform, body *component.PhysicsBody) {
		probe.Grounded = false
		if body.Body == nil {
			return
		}
		// A rising body is never grounded. Resting contacts leave float noise
		// in vy, so only a real upward speed counts as rising.
		if body.Body.Velocity().Y < -restingSpeed {
			return
		}
		for _, p := range probe.Points {
			if !g.physics.GroundAt(e, transform.X+p.X, transform.Y+p.Y, probe.Radius, probe.Mask) {
				continue
			}
			probe.Grounded = true
			if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
				anim.ResetTrigger(component.AnimParamJump)
				anim.SetBool(component.AnimParamLand, false)
			}
			return
		}
	})
}
