package component

// ProbePoint is an offset from the owner's transform used as the centre of a
// ground overlap query.
type ProbePoint struct {
	X float64
	Y float64
}

// GroundProbe tests for ground contact with small circle queries at each
// point. Grounded holds the result of the latest probe.
type GroundProbe struct {
	Points   []ProbePoint
	Radius   float64
	Mask     uint32
	Grounded bool
}

var GroundProbeComponent = NewComponent[GroundProbe]()
