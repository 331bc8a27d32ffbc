package export

import (
	"strings"
	"testing"

	"github.com/san-kum/gravsim/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(7, 7)

	svg := CanvasToSVG(c, 10, "#00ff00")

	if !strings.HasPrefix(svg, "<?xml") || !strings.Contains(svg, `width="80" height="80"`) {
		t.Errorf("unexpected header:\n%s", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(svg, `cx="5.0" cy="5.0"`) || !strings.Contains(svg, `cx="75.0" cy="75.0"`) {
		t.Errorf("circles at wrong positions:\n%s", svg)
	}
	if CanvasToSVG(nil, 1, "#fff") != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	if TrajectoryToSVG([]Point{{0, 0}}, 100, 100, "#fff") != "" {
		t.Error("expected empty output for a single point")
	}

	svg := TrajectoryToSVG([]Point{{0, 0}, {1, 1}}, 120, 120, "#ff00ff")
	if !strings.Contains(svg, `stroke="#ff00ff"`) {
		t.Error("missing stroke colour")
	}
	if !strings.Contains(svg, "M10.0,110.0 ") || !strings.Contains(svg, "L110.0,10.0 ") {
		t.Errorf("unexpected path:\n%s", svg)
	}
}
