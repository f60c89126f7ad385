package gravity

import (
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

type circle struct {
	Center gm.Vec
	Radius float64
	Color  color.Color
}

// recordingCanvas remembers every draw call.
type recordingCanvas struct {
	size    gm.Vec
	cleared int
	circles []circle
}

func (c *recordingCanvas) Size() gm.Vec {
	return c.size
}

func (c *recordingCanvas) Clear(color.Color) {
	c.cleared++
	c.circles = nil
}

func (c *recordingCanvas) FillCircle(center gm.Vec, radius float64, col color.Color) {
	c.circles = append(c.circles, circle{Center: center, Radius: radius, Color: col})
}

func (c *recordingCanvas) FillPolygon([]gm.Vec, color.Color) {}
