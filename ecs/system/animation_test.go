package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestAnimationLayerSystem(t *testing.T) {
	for _, grounded := range []bool{true, false} {
		w := ecs.NewWorld()
		p := spawnPlayer(t, w, 0, 0)
		p.probe.Grounded = grounded

		NewAnimationLayerSystem().Update(w)

		want := 1.0
		if grounded {
			want = 0
		}
		if got := p.anim.LayerWeight(component.AnimLayerAir); got != want {
			t.Fatalf("grounded=%v: air weight = %v, want %v", grounded, got, want)
		}
	}
}

func TestSelectClip(t *testing.T) {
	clips := component.AnimationClips{Idle: "idle", Run: "run", Jump: "jump", Fall: "fall"}

	tests := []struct {
		name   string
		air    float64
		speed  float64
		jump   bool
		rising bool
		want   string
	}{
		{name: "idle", want: "idle"},
		{name: "run", speed: 1, want: "run"},
		{name: "tiny speed is idle", speed: 0.005, want: "idle"},
		{name: "rising", air: 1, rising: true, want: "jump"},
		{name: "jump trigger", air: 1, jump: true, want: "jump"},
		{name: "falling", air: 1, speed: 1, want: "fall"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := component.NewAnimator(2)
			a.SetLayerWeight(component.AnimLayerAir, tc.air)
			a.SetFloat(component.AnimParamSpeed, tc.speed)
			if tc.jump {
				a.SetTrigger(component.AnimParamJump)
			}
			if got := selectClip(clips, a, tc.rising); got != tc.want {
				t.Fatalf("clip = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAdvanceFrame(t *testing.T) {
	def := component.AnimationDef{FrameCount: 3, FPS: 30}

	anim := &component.Animation{Playing: true}
	for i := 0; i < 4; i++ {
		advanceFrame(anim, def)
	}
	if anim.Frame != 2 {
		t.Fatalf("frame = %d, want 2", anim.Frame)
	}

	for i := 0; i < 2; i++ {
		advanceFrame(anim, def)
	}
	if anim.Frame != 2 || anim.Playing {
		t.Fatalf("non-looping clip should hold last frame, got frame %d playing %v", anim.Frame, anim.Playing)
	}

	def.Loop = true
	anim = &component.Animation{Playing: true, Frame: 2}
	advanceFrame(anim, def)
	advanceFrame(anim, def)
	if anim.Frame != 0 {
		t.Fatalf("looping clip frame = %d, want 0", anim.Frame)
	}
}
