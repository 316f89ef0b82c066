package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

var (
	debugShapeColor    = color.RGBA{R: 50, G: 255, B: 50, A: 230}
	debugProbeColor    = color.RGBA{R: 255, G: 230, B: 40, A: 255}
	debugKillColor     = color.RGBA{R: 255, G: 40, B: 40, A: 200}
	debugCheckColor    = color.RGBA{R: 40, G: 140, B: 255, A: 200}
	debugWinColor      = color.RGBA{R: 255, G: 215, B: 0, A: 200}
	debugScriptColor   = color.RGBA{R: 200, G: 80, B: 255, A: 200}
	debugGroundedColor = color.RGBA{R: 40, G: 255, B: 120, A: 255}
	debugRespawnColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DebugOverlaySystem draws collision shapes, trigger volumes and probes.
type DebugOverlaySystem struct {
	physics *PhysicsSystem
}

func NewDebugOverlaySystem(physics *PhysicsSystem) *DebugOverlaySystem {
	return &DebugOverlaySystem{physics: physics}
}

func (d *DebugOverlaySystem) Draw(w *ecs.World, screen *ebiten.Image) {
	camX, camY, zoom := cameraView(w)
	toScreen := func(x, y float64) (float32, float32) {
		return float32((x - camX) * zoom), float32((y - camY) * zoom)
	}

	if space := d.physics.Space(); space != nil {
		cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, toScreen: toScreen})
	}

	ecs.ForEach2(w, component.TriggerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, trigger *component.Trigger, t *component.Transform) {
		x, y := toScreen(t.X, t.Y)
		vector.StrokeRect(screen, x, y, float32(trigger.Width*zoom), float32(trigger.Height*zoom), 2, triggerColor(trigger.Kind), false)
		ebitenutil.DebugPrintAt(screen, trigger.Kind.String(), int(x)+2, int(y)+2)
	})

	ecs.ForEach2(w, component.GroundProbeComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, probe *component.GroundProbe, t *component.Transform) {
		clr := debugProbeColor
		if probe.Grounded {
			clr = debugGroundedColor
		}
		for _, p := range probe.Points {
			x, y := toScreen(t.X+p.X, t.Y+p.Y)
			vector.StrokeCircle(screen, x, y, float32(probe.Radius*zoom), 1, clr, true)
		}
	})

	ecs.ForEach(w, component.RespawnPointComponent.Kind(), func(_ ecs.Entity, rp *component.RespawnPoint) {
		x, y := toScreen(rp.X, rp.Y)
		vector.StrokeLine(screen, x-6, y, x+6, y, 1, debugRespawnColor, false)
		vector.StrokeLine(screen, x, y-6, x, y+6, 1, debugRespawnColor, false)
	})

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		grounded := false
		if probe, ok := ecs.Get(w, player, component.GroundProbeComponent.Kind()); ok {
			grounded = probe.Grounded
		}
		vy := 0.0
		if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
			vy = body.Body.Velocity().Y
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Grounded: %v\nVY: %.1f\nFPS: %.0f", grounded, vy, ebiten.ActualFPS()), 10, 30)
	}
}

func triggerColor(kind component.TriggerKind) color.RGBA {
	switch kind {
	case component.TriggerKillZone:
		return debugKillColor
	case component.TriggerCheckpoint:
		return debugCheckColor
	case component.TriggerWinZone:
		return debugWinColor
	default:
		return debugScriptColor
	}
}

type physicsDebugDrawer struct {
	screen   *ebiten.Image
	toScreen func(x, y float64) (float32, float32)
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := d.toScreen(pos.X, pos.Y)
	vector.StrokeCircle(d.screen, x, y, float32(radius), 1, toNRGBA(outline), true)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.toScreen(pos.X, pos.Y)
	vector.DrawFilledRect(d.screen, x-1, y-1, 2, 2, toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return toFColor(debugShapeColor)
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a.X, a.Y)
	x2, y2 := d.toScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), false)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
