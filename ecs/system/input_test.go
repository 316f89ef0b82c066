package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type fakeInput struct {
	axis    float64
	pressed bool
}

func (f *fakeInput) Axis() float64     { return f.axis }
func (f *fakeInput) JumpPressed() bool { return f.pressed }

func TestInputSystemLatchesJump(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, 0, 0)
	audioComp := newAudio()
	mustAdd(t, w, p.e, component.AudioComponent.Kind(), audioComp)

	src := &fakeInput{axis: -1, pressed: true}
	sys := NewInputSystem(src)
	sys.Update(w)

	if p.input.MoveX != -1 {
		t.Fatalf("moveX = %v, want -1", p.input.MoveX)
	}
	if !p.input.Jump {
		t.Fatal("expected jump latch after press")
	}
	if !audioComp.Requested(component.SoundJump) {
		t.Fatal("expected jump sound request")
	}

	// The latch survives ticks without a press until movement consumes it.
	src.pressed = false
	src.axis = 0
	sys.Update(w)
	if !p.input.Jump {
		t.Fatal("latch dropped before movement consumed it")
	}

	NewPlayerControllerSystem().Update(w)
	if p.input.Jump {
		t.Fatal("latch not cleared by movement")
	}
}

func TestInputSystemNoPress(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, 0, 0)
	audioComp := newAudio()
	mustAdd(t, w, p.e, component.AudioComponent.Kind(), audioComp)

	NewInputSystem(&fakeInput{axis: 1}).Update(w)

	if p.input.Jump {
		t.Fatal("unexpected jump latch")
	}
	if audioComp.Requested(component.SoundJump) {
		t.Fatal("unexpected jump sound")
	}
}
