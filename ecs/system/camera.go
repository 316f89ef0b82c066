package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type CameraSystem struct {
	viewW float64
	viewH float64
}

func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = common.BaseWidth, common.BaseHeight
	}
	return &CameraSystem{viewW: viewW, viewH: viewH}
}

// Update eases each camera toward its target's centre and keeps the view
// inside the level bounds.
func (cs *CameraSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, camTransform *component.Transform) {
		target, ok := findEntityByNameOrTag(w, cam.TargetName)
		if !ok {
			return
		}
		targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}

		zoom := cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		viewW := cs.viewW / zoom
		viewH := cs.viewH / zoom

		goalX := targetTransform.X - viewW/2
		goalY := targetTransform.Y - viewH/2

		t := 1.0
		if cam.Smoothness > 0 && cam.Smoothness < 1 {
			t = 1 - cam.Smoothness
		}
		x := common.Lerp(camTransform.X, goalX, t)
		y := common.Lerp(camTransform.Y, goalY, t)

		if be, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
			if bounds, ok := ecs.Get(w, be, component.LevelBoundsComponent.Kind()); ok {
				x = clampView(x, viewW, bounds.Width)
				y = clampView(y, viewH, bounds.Height)
			}
		}

		camTransform.X = x
		camTransform.Y = y
	})
}

func clampView(pos, view, extent float64) float64 {
	if extent <= view {
		return (extent - view) / 2
	}
	return common.Clamp(pos, 0, extent-view)
}

func findEntityByNameOrTag(w *ecs.World, name string) (ecs.Entity, bool) {
	switch name {
	case "", "player":
		return ecs.First(w, component.PlayerTagComponent.Kind())
	}
	return 0, false
}

// cameraView returns the active camera offset and zoom.
func cameraView(w *ecs.World) (float64, float64, float64) {
	camX, camY := 0.0, 0.0
	zoom := 1.0
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return camX, camY, zoom
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}
	return camX, camY, zoom
}
