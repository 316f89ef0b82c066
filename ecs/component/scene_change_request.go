package component

import "github.com/milk9111/platformer/common"

// SceneChangeRequest is a one-shot request emitted by gameplay systems to ask
// the scene manager to load a different scene after the current tick.
//
// Systems only emit data; the scene manager owns world teardown and
// construction.
type SceneChangeRequest struct {
	Target common.SceneName
}

var SceneChangeRequestComponent = NewComponent[SceneChangeRequest]()
