package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const runSpeedThreshold = 0.01

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if animator, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
			rising := false
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
				rising = body.Body.Velocity().Y < 0
			}
			play(anim, selectClip(anim.Clips, animator, rising))
		}

		if anim.Sheet == nil {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing {
			advanceFrame(anim, def)
		}

		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
	})
}

// selectClip maps animator state to a clip name. The air layer wins over
// the base layer whenever it carries any weight.
func selectClip(clips component.AnimationClips, animator *component.Animator, rising bool) string {
	if animator.LayerWeight(component.AnimLayerAir) > 0 {
		if rising || animator.Triggers[component.AnimParamJump] {
			return clips.Jump
		}
		return clips.Fall
	}
	if animator.Floats[component.AnimParamSpeed] > runSpeedThreshold {
		return clips.Run
	}
	return clips.Idle
}

func play(anim *component.Animation, name string) {
	if name == "" || name == anim.Current {
		return
	}
	if _, ok := anim.Defs[name]; !ok {
		return
	}
	anim.Current = name
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
}

// advanceFrame steps the frame every N ticks based on FPS and 60 TPS.
func advanceFrame(anim *component.Animation, def component.AnimationDef) {
	ticksPerFrame := 1
	if def.FPS > 0 {
		ticksPerFrame = int(60.0 / def.FPS)
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	anim.FrameTimer++
	if anim.FrameTimer < ticksPerFrame {
		return
	}
	anim.FrameTimer = 0
	anim.Frame++
	if anim.Frame >= def.FrameCount {
		if def.Loop {
			anim.Frame = 0
		} else {
			anim.Frame = def.FrameCount - 1
			anim.Playing = false
		}
	}
}
