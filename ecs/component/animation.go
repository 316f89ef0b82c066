package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// Animation plays clips cut from a single sheet. Clips holds the animator
// state to clip mapping used by the animation system.
type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Clips      AnimationClips
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

// AnimationClips names the clip for each locomotion state.
type AnimationClips struct {
	Idle string
	Run  string
	Jump string
	Fall string
}

var AnimationComponent = NewComponent[Animation]()
