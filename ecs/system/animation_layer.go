package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationLayerSystem switches the air layer fully on while airborne.
type AnimationLayerSystem struct{}

func NewAnimationLayerSystem() *AnimationLayerSystem {
	return &AnimationLayerSystem{}
}

func (a *AnimationLayerSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.GroundProbeComponent.Kind(), component.AnimatorComponent.Kind(), func(_ ecs.Entity, probe *component.GroundProbe, anim *component.Animator) {
		if probe.Grounded {
			anim.SetLayerWeight(component.AnimLayerAir, 0)
		} else {
			anim.SetLayerWeight(component.AnimLayerAir, 1)
		}
	})
}
