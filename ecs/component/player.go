package component

// Player holds movement tuning for a controllable character.
type Player struct {
	// MoveSpeed is in pixels per second at full axis deflection.
	MoveSpeed float64
	// JumpImpulse is the upward impulse applied on a grounded jump.
	JumpImpulse float64
}

var PlayerComponent = NewComponent[Player]()
