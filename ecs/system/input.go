package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const stickDeadzone = 0.2

// InputSource is polled once per tick.
type InputSource interface {
	// Axis returns the horizontal axis in [-1, 1].
	Axis() float64
	// JumpPressed reports a jump press that began this tick.
	JumpPressed() bool
}

// EbitenInput reads the keyboard and the first gamepad.
type EbitenInput struct{}

func (EbitenInput) Axis() float64 {
	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		leftX := ebiten.StandardGamepadAxisValue(gamepads[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
	}
	return moveX
}

func (EbitenInput) JumpPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = EbitenInput{}
	}
	return &InputSystem{source: source}
}

// Update samples the source and latches jump presses. A latched jump stays
// set until the movement step consumes it, so a press between physics steps
// is never lost.
func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	moveX := i.source.Axis()
	jumpPressed := i.source.JumpPressed()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		if !jumpPressed {
			return
		}
		input.Jump = true
		if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
			audioComp.Request(component.SoundJump)
		}
	})
}
