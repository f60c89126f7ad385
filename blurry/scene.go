package blurry

import (
	"time"

	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

const (
	TrailLength = 12

	shapeRadius    = 90
	shapeEdges     = 6
	shapeThickness = 6
	blurSeed       = 10
)

// Scene follows the pointer with a hexagon and leaves a trail of
// increasingly blurred copies behind.
type Scene struct {
	rng     *gm.Random
	pointer gm.Vec
	trail   []gm.Vec
}

var _ sketchbook.Scene = (*Scene)(nil)
var _ sketchbook.Pointer = (*Scene)(nil)

func NewScene(seed uint64) *Scene {
	return &Scene{rng: gm.NewRandom(seed)}
}

func (s *Scene) Setup(size gm.Vec) {
	s.pointer = size.Mul(0.5)
}

func (s *Scene) PointerMoved(pos gm.Vec) {
	s.pointer = pos
}

// Update records the current pointer position, keeping the last TrailLength positions.
func (s *Scene) Update(time.Duration) {
	s.trail = append(s.trail, s.pointer)
	if len(s.trail) > TrailLength {
		s.trail = s.trail[len(s.trail)-TrailLength:]
	}
}

// Trail returns the recorded pointer positions, oldest first.
func (s *Scene) Trail() []gm.Vec {
	return s.trail
}

func TrailColor(ratio float64) color.Color {
	return color.HSB(float32(0.5+ratio), 0.7, 0.25)
}

func (s *Scene) Draw(canvas sketchbook.Canvas) {
	canvas.Clear(color.Black)

	current := NewShape(s.pointer, shapeRadius, shapeEdges, shapeThickness)
	current.Draw(canvas, TrailColor(1), s.rng)

	for idx, pos := range s.trail {
		ratio := float64(idx) / float64(len(s.trail))

		shape := NewShape(pos, shapeRadius, shapeEdges, shapeThickness)
		shape.Blur(blurSeed, ratio)
		shape.Draw(canvas, TrailColor(ratio), s.rng)
	}
}
