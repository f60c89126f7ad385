package isowave

import (
	"time"

	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

const zoom = 0.5

var (
	Background = color.RGB(70.0/255, 67.0/255, 67.0/255)

	// face colors, shaded by the direction of their normal
	TopColor   = color.RGB(0.5, 1.0, 0.5)
	RightColor = color.RGB(1.0, 0.5, 0.5)
	LeftColor  = color.RGB(0.5, 0.5, 1.0)
)

type Scene struct {
	wave       *Wave
	projection Projection
}

var _ sketchbook.Scene = (*Scene)(nil)

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Wave() *Wave {
	return s.wave
}

// Setup builds a square wave as wide as the canvas is tall.
func (s *Scene) Setup(size gm.Vec) {
	s.wave = NewWave(size.Y)
	s.projection = NewProjection(size, size.Y, zoom)
}

func (s *Scene) Update(time.Duration) {
	s.wave.Step()
}

func (s *Scene) Draw(canvas sketchbook.Canvas) {
	canvas.Clear(Background)

	for _, column := range s.wave.Columns() {
		faces := s.projection.BoxFaces(column.X, column.Z, CellSize-2, column.Height)

		canvas.FillPolygon(faces.Right[:], RightColor)
		canvas.FillPolygon(faces.Left[:], LeftColor)
		canvas.FillPolygon(faces.Top[:], TopColor)
	}
}
