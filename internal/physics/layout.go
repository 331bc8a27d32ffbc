package physics

import (
	"fmt"
	"math"
	"sort"
)

const (
	helixRadius = 8.0
	helixHeight = 16.0
	helixTurns  = 5.0
	ringRadius  = 8.0
)

// Layout places n bodies. Implementations must be deterministic in n.
type Layout func(n int) []Body

var layouts = map[string]Layout{
	"helix":     Helix,
	"ring":      Ring,
	"collapsed": Collapsed,
	"line":      Line,
}

// Helix winds n bodies along a five-turn helix around the z axis.
// Body i gets mass 1 + i/n.
func Helix(n int) []Body {
	bodies := make([]Body, n)
	for i := range bodies {
		t := float64(i) / float64(n)
		angle := t * 2 * math.Pi * helixTurns
		bodies[i] = NewBody(Vec3{
			X: math.Cos(angle) * helixRadius,
			Y: math.Sin(angle) * helixRadius,
			Z: (t - 0.5) * helixHeight,
		}, 1+t)
	}
	return bodies
}

// Ring spaces n bodies evenly on a circle in the xy plane.
func Ring(n int) []Body {
	bodies := make([]Body, n)
	for i := range bodies {
		t := float64(i) / float64(n)
		angle := t * 2 * math.Pi
		bodies[i] = NewBody(Vec3{
			X: math.Cos(angle) * ringRadius,
			Y: math.Sin(angle) * ringRadius,
		}, 1+t)
	}
	return bodies
}

// Collapsed stacks every body on the origin.
func Collapsed(n int) []Body {
	bodies := make([]Body, n)
	for i := range bodies {
		bodies[i] = NewBody(Vec3{}, 1)
	}
	return bodies
}

// Line spaces n unit masses evenly along the x axis from -1 to 1.
// Two bodies land on (-1, 0, 0) and (1, 0, 0).
func Line(n int) []Body {
	bodies := make([]Body, n)
	if n == 1 {
		bodies[0] = NewBody(Vec3{}, 1)
		return bodies
	}
	for i := range bodies {
		x := -1 + 2*float64(i)/float64(n-1)
		bodies[i] = NewBody(Vec3{X: x}, 1)
	}
	return bodies
}

// LayoutByName looks up a registered layout.
func LayoutByName(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownLayout, name, LayoutNames())
	}
	return l, nil
}

func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
