package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image with its origin placed on the transform. A negative
// Transform.ScaleX mirrors it around the origin.
type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
