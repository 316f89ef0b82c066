package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update drives every player body from its input. Horizontal velocity is set
// outright; vertical velocity is left to gravity and jump impulses.
func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, bodyComp *component.PhysicsBody) {
		defer func() { input.Jump = false }()
		if bodyComp.Body == nil {
			return
		}

		anim, hasAnim := ecs.Get(w, e, component.AnimatorComponent.Kind())

		vel := bodyComp.Body.Velocity()
		if vel.Y > 0 && hasAnim {
			anim.SetBool(component.AnimParamLand, true)
		}

		bodyComp.Body.SetVelocity(input.MoveX*player.MoveSpeed, vel.Y)
		if hasAnim {
			anim.SetFloat(component.AnimParamSpeed, math.Abs(input.MoveX))
		}

		probe, ok := ecs.Get(w, e, component.GroundProbeComponent.Kind())
		if !ok || !probe.Grounded || !input.Jump {
			return
		}
		probe.Grounded = false
		bodyComp.Body.ApplyImpulseAtLocalPoint(cp.Vector{X: 0, Y: -player.JumpImpulse}, cp.Vector{})
		if hasAnim {
			anim.SetTrigger(component.AnimParamJump)
		}
	})
}
