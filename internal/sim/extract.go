package sim

import "fmt"

// Format selects the layout of an extracted position buffer.
type Format int

const (
	// FormatXYZ writes x, y, z per body.
	FormatXYZ Format = iota
	// FormatXY writes the x, y projection per body.
	FormatXY
)

// Components is the number of floats written per body.
func (f Format) Components() int {
	if f == FormatXY {
		return 2
	}
	return 3
}

func (f Format) String() string {
	if f == FormatXY {
		return "xy"
	}
	return "xyz"
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "xyz", "":
		return FormatXYZ, nil
	case "xy":
		return FormatXY, nil
	default:
		return 0, fmt.Errorf("unknown format: %s (available: xyz, xy)", s)
	}
}

// Extract writes every body position, multiplied by scale, into dst in body
// order and returns the result. dst is truncated first and only reallocated
// when its capacity is short. An empty container yields a zero-length buffer.
func (c *Container) Extract(dst []float32, format Format, scale float64) []float32 {
	dst = dst[:0]
	if c.engine == nil {
		return dst
	}

	n := c.engine.Len()
	xyz := format.Components() == 3
	if need := n * format.Components(); cap(dst) < need {
		dst = make([]float32, 0, need)
	}

	for i := 0; i < n; i++ {
		p := c.engine.Position(i)
		dst = append(dst, float32(p.X*scale), float32(p.Y*scale))
		if xyz {
			dst = append(dst, float32(p.Z*scale))
		}
	}
	return dst
}
