package component

// RespawnPoint is where an entity reappears after touching a kill zone. It
// moves to each checkpoint the entity touches.
type RespawnPoint struct {
	X float64
	Y float64
}

var RespawnPointComponent = NewComponent[RespawnPoint]()
