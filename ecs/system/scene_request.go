package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RequestScene queues a scene switch for the scene manager.
func RequestScene(w *ecs.World, target common.SceneName) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SceneChangeRequestComponent.Kind(), &component.SceneChangeRequest{Target: target}); err != nil {
		panic("scene request: add request: " + err.Error())
	}
}

// PendingScene returns the first queued scene switch, if any.
func PendingScene(w *ecs.World) (common.SceneName, bool) {
	e, ok := ecs.First(w, component.SceneChangeRequestComponent.Kind())
	if !ok {
		return common.SceneNone, false
	}
	req, ok := ecs.Get(w, e, component.SceneChangeRequestComponent.Kind())
	if !ok {
		return common.SceneNone, false
	}
	return req.Target, true
}
