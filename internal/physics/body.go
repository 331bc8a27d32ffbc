package physics

// Body is a point mass. Only the engine that owns it mutates it.
type Body struct {
	Position Vec3
	Velocity Vec3
	Mass     float64
}

// NewBody returns a body at rest.
func NewBody(position Vec3, mass float64) Body {
	return Body{Position: position, Mass: mass}
}
