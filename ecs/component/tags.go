package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// GroundTag marks solids that count as ground for probes.
type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
