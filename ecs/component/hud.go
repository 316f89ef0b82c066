package component

// LivesLabel draws the owner's remaining lives in screen space.
type LivesLabel struct {
	X      float64
	Y      float64
	Target string
}

var LivesLabelComponent = NewComponent[LivesLabel]()
