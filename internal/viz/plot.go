package viz

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PlotXY draws an XY frame (x0, y0, x1, y1, ...) with the camera's zoom and
// span and no rotation. It returns the number of bodies that landed on the
// canvas.
func PlotXY(c *Canvas, cam *Camera, frame []float32) int {
	pw, ph := c.PixelWidth(), c.PixelHeight()
	drawn := 0
	for i := 0; i+2 <= len(frame); i += 2 {
		p := mgl64.Vec3{float64(frame[i]), float64(frame[i+1]), 0}
		if x, y, ok := cam.project(p, pw, ph); ok {
			c.Set(x, y)
			drawn++
		}
	}
	return drawn
}

// PlotXYZ draws an XYZ frame through the camera's rotation.
func PlotXYZ(c *Canvas, cam *Camera, frame []float32) int {
	pw, ph := c.PixelWidth(), c.PixelHeight()
	rot := cam.Rotation()
	drawn := 0
	for i := 0; i+3 <= len(frame); i += 3 {
		p := mgl64.Vec3{float64(frame[i]), float64(frame[i+1]), float64(frame[i+2])}
		if x, y, ok := cam.project(rot.Mul3x1(p), pw, ph); ok {
			c.Set(x, y)
			drawn++
		}
	}
	return drawn
}
