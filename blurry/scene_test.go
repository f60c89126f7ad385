package blurry

import (
	"math"
	"testing"
	"time"

	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
	"github.com/stretchr/testify/require"
)

type circle struct {
	Center gm.Vec
	Radius float64
	Color  color.Color
}

type recordingCanvas struct {
	cleared int
	circles []circle
}

func (c *recordingCanvas) Size() gm.Vec {
	return gm.Vec{X: 800, Y: 600}
}

func (c *recordingCanvas) Clear(color.Color) {
	c.cleared++
	c.circles = nil
}

func (c *recordingCanvas) FillCircle(center gm.Vec, radius float64, col color.Color) {
	c.circles = append(c.circles, circle{Center: center, Radius: radius, Color: col})
}

func (c *recordingCanvas) FillPolygon([]gm.Vec, color.Color) {}

func TestScene_Trail(t *testing.T) {
	scene := NewScene(1)
	scene.Setup(gm.Vec{X: 800, Y: 600})

	scene.Update(time.Second / 60)
	require.Equal(t, []gm.Vec{{X: 400, Y: 300}}, scene.Trail())

	for idx := range 20 {
		scene.PointerMoved(gm.Vec{X: float64(idx)})
		scene.Update(time.Second / 60)
	}

	trail := scene.Trail()
	require.Len(t, trail, TrailLength)

	// oldest first, newest last
	require.Equal(t, gm.Vec{X: 8}, trail[0])
	require.Equal(t, gm.Vec{X: 19}, trail[TrailLength-1])
}

func TestScene_Draw(t *testing.T) {
	scene := NewScene(1)
	scene.Setup(gm.Vec{X: 800, Y: 600})

	canvas := &recordingCanvas{}
	scene.Draw(canvas)
	require.Equal(t, 1, canvas.cleared)

	var dots int
	for _, line := range NewShape(gm.Vec{X: 400, Y: 300}, 90, 6, 6).Lines {
		dots += int(math.Ceil(line.Dots))
	}

	// only the hexagon at the pointer, no trail yet
	require.Len(t, canvas.circles, dots)

	for _, c := range canvas.circles {
		require.Equal(t, 3.0, c.Radius)
		require.Equal(t, TrailColor(1), c.Color)
	}

	scene.Update(time.Second / 60)
	scene.Draw(canvas)

	// the first trail entry has a blur amount of zero
	require.Len(t, canvas.circles, 2*dots)
}

func TestTrailColor(t *testing.T) {
	require.Equal(t, color.HSB(0.5, 0.7, 0.25), TrailColor(0))
	require.Equal(t, color.HSB(0.75, 0.7, 0.25), TrailColor(1.25))
}
