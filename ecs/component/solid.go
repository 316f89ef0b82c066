package component

import "image/color"

// Solid is a drawable static block, top-left anchored at the transform.
type Solid struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

var SolidComponent = NewComponent[Solid]()
