package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

// Update mirrors an entity when its input points away from where it faces.
// Zero input keeps the current facing.
func (f *FacingSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.InputComponent.Kind(), component.FacingComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, input *component.Input, facing *component.Facing, transform *component.Transform) {
		if (input.MoveX > 0 && !facing.Right) || (input.MoveX < 0 && facing.Right) {
			facing.Right = !facing.Right
			if transform.ScaleX == 0 {
				transform.ScaleX = 1
			}
			transform.ScaleX = -transform.ScaleX
		}
	})
}
