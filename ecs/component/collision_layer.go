package component

// Collision categories. Ground probes query LayerGround only.
const (
	LayerGround  uint32 = 1 << 0
	LayerPlayer  uint32 = 1 << 1
	LayerTrigger uint32 = 1 << 2

	LayerAll uint32 = ^uint32(0)
)

// CollisionLayer allows entities to declare a collision category and mask
// so the physics system can selectively enable/disable collisions between
// groups of objects.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics system will treat it as LayerGround.
	Category uint32
	// Mask is a bitmask of categories this entity should collide with. If
	// zero, the physics system will treat it as LayerAll.
	Mask uint32
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
