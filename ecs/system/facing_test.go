package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestFacingSystem(t *testing.T) {
	tests := []struct {
		name       string
		axis       float64
		right      bool
		wantRight  bool
		wantScaleX float64
	}{
		{name: "right while facing right", axis: 1, right: true, wantRight: true, wantScaleX: 1},
		{name: "left while facing right", axis: -1, right: true, wantRight: false, wantScaleX: -1},
		{name: "right while facing left", axis: 0.3, right: false, wantRight: true, wantScaleX: -1},
		{name: "left while facing left", axis: -1, right: false, wantRight: false, wantScaleX: 1},
		{name: "zero keeps right", axis: 0, right: true, wantRight: true, wantScaleX: 1},
		{name: "zero keeps left", axis: 0, right: false, wantRight: false, wantScaleX: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			facing := &component.Facing{Right: tc.right}
			transform := &component.Transform{ScaleX: 1, ScaleY: 1}
			mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{MoveX: tc.axis})
			mustAdd(t, w, e, component.FacingComponent.Kind(), facing)
			mustAdd(t, w, e, component.TransformComponent.Kind(), transform)

			NewFacingSystem().Update(w)

			if facing.Right != tc.wantRight {
				t.Fatalf("right = %v, want %v", facing.Right, tc.wantRight)
			}
			if transform.ScaleX != tc.wantScaleX {
				t.Fatalf("scaleX = %v, want %v", transform.ScaleX, tc.wantScaleX)
			}
		})
	}
}
