package component

// Input stores sampled input for an entity. Jump is a latch: set by the
// input system on a press and cleared by the movement step that consumes it.
type Input struct {
	MoveX float64
	Jump  bool
}

var InputComponent = NewComponent[Input]()
