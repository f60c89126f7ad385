// Package blurry draws polygons made of dotted lines that smear out the
// further they fall behind the pointer.
package blurry

import (
	"iter"
	"math"

	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

// Line is a straight line drawn as a sequence of dots.
type Line struct {
	From, To  gm.Vec
	Thickness float64

	// Dots is the number of dots drawn along the line. It may be fractional after blurring.
	Dots float64

	// Jitter is the standard deviation of the random offset added to each dot.
	Jitter float64
}

// NewLine creates a line with roughly one dot per unit of length.
func NewLine(from, to gm.Vec, thickness float64) Line {
	return Line{
		From:      from,
		To:        to,
		Thickness: thickness,
		Dots:      math.Ceil(from.DistanceTo(to)),
	}
}

// Blur adds more, thinner and scattered dots to the line. An amount of zero
// keeps the line as is, an amount of one makes the dots disappear.
func (l *Line) Blur(seed, amount float64) {
	l.Dots *= 1 + amount*amount
	l.Thickness *= 1 - amount
	l.Jitter = seed * amount
}

// Points yields the position of every dot. rng is only used if the line has jitter.
func (l Line) Points(rng *gm.Random) iter.Seq[gm.Vec] {
	return func(yield func(gm.Vec) bool) {
		delta := l.To.Sub(l.From)

		for i := 0.0; i < l.Dots; i++ {
			p := l.From.Add(delta.Mul(i / l.Dots))

			if l.Jitter != 0 {
				p.X += l.Jitter * rng.Gaussian(0, 1)
				p.Y += l.Jitter * rng.Gaussian(0, 1)
			}

			if !yield(p) {
				return
			}
		}
	}
}

func (l Line) Draw(canvas sketchbook.Canvas, c color.Color, rng *gm.Random) {
	if l.Thickness <= 0 {
		return
	}

	for p := range l.Points(rng) {
		canvas.FillCircle(p, l.Thickness/2, c)
	}
}

// Shape is a regular polygon built from lines.
type Shape struct {
	Center gm.Vec
	Radius float64
	Lines  []Line
}

func NewShape(center gm.Vec, radius float64, edges int, thickness float64) Shape {
	corner := func(idx int) gm.Vec {
		angle := gm.Rad(2 * math.Pi * float64(idx) / float64(edges))
		return center.Add(angle.Vec().Mul(radius))
	}

	lines := make([]Line, 0, edges)
	for idx := range edges {
		lines = append(lines, NewLine(corner(idx), corner(idx+1), thickness))
	}

	return Shape{
		Center: center,
		Radius: radius,
		Lines:  lines,
	}
}

func (s *Shape) Blur(seed, amount float64) {
	for idx := range s.Lines {
		s.Lines[idx].Blur(seed, amount)
	}
}

func (s *Shape) Draw(canvas sketchbook.Canvas, c color.Color, rng *gm.Random) {
	for _, line := range s.Lines {
		line.Draw(canvas, c, rng)
	}
}
