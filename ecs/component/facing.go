package component

type Facing struct {
	Right bool
}

var FacingComponent = NewComponent[Facing]()
