package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// HUDSystem draws the lives counter in screen space while any remain.
type HUDSystem struct {
	face text.Face
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.LivesLabelComponent.Kind(), func(_ ecs.Entity, label *component.LivesLabel) {
		s, ok := LivesText(w, label.Target)
		if !ok {
			return
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(label.X, label.Y)
		text.Draw(screen, s, h.face, op)
	})
}

// LivesText returns the label for target's lives, or false when there is
// nothing to show.
func LivesText(w *ecs.World, target string) (string, bool) {
	e, ok := findEntityByNameOrTag(w, target)
	if !ok {
		return "", false
	}
	lives, ok := ecs.Get(w, e, component.LivesComponent.Kind())
	if !ok || lives.Count <= 0 {
		return "", false
	}
	return fmt.Sprintf("Lives: %d", lives.Count), true
}
