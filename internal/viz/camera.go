package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	minZoom = 0.1
	maxZoom = 10
)

// Camera projects frame coordinates onto a canvas. Points are rotated about
// the x, y and z axes in that order, then projected orthographically onto the
// x/y plane. Span is the frame distance from the centre to the shorter canvas
// edge at zoom 1.
type Camera struct {
	RotX, RotY, RotZ float64
	Zoom             float64
	Span             float64
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1, Span: 1}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(maxZoom, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(minZoom, c.Zoom/1.2) }

// Fit sets Span so that every point of frame, read with the given number of
// components per body, lies inside the view with a small margin.
func (c *Camera) Fit(frame []float32, components int) {
	extent := 0.0
	for i := 0; i+components <= len(frame); i += components {
		for k := 0; k < components; k++ {
			extent = math.Max(extent, math.Abs(float64(frame[i+k])))
		}
	}
	if extent == 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		c.Span = 1
		return
	}
	c.Span = extent * 1.1
}

// Rotation is the combined rotation matrix Rz * Ry * Rx.
func (c *Camera) Rotation() mgl64.Mat3 {
	return mgl64.Rotate3DZ(c.RotZ).Mul3(mgl64.Rotate3DY(c.RotY)).Mul3(mgl64.Rotate3DX(c.RotX))
}

// Project maps p to pixel coordinates on a pw x ph pixel canvas and reports
// whether the pixel is on the canvas.
func (c *Camera) Project(p mgl64.Vec3, pw, ph int) (int, int, bool) {
	return c.project(c.Rotation().Mul3x1(p), pw, ph)
}

func (c *Camera) project(r mgl64.Vec3, pw, ph int) (int, int, bool) {
	span := c.Span
	if span <= 0 {
		span = 1
	}
	k := float64(min(pw, ph)) / 2 * c.Zoom / span
	fx := float64(pw)/2 + r.X()*k
	fy := float64(ph)/2 - r.Y()*k
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && x < pw && y >= 0 && y < ph
}
