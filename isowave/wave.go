// Package isowave renders a field of boxes whose heights follow a sine wave
// travelling outwards from the center, seen from an isometric camera.
package isowave

import (
	"cmp"
	"math"
	"slices"
)

const (
	CellSize  = 24
	MinHeight = 100
	MaxHeight = 300
	TimeStep  = 0.1
)

// Column is a single box of the wave, positioned on the ground plane.
type Column struct {
	X, Z   float64
	Height float64
}

// Wave holds a square grid of columns. The ground plane spans [0, Side) on both axes.
type Wave struct {
	Side float64
	Time float64
}

func NewWave(side float64) *Wave {
	return &Wave{Side: side}
}

// Step advances the animation by one frame.
func (w *Wave) Step() {
	w.Time += TimeStep
}

// HeightAt returns the height of a column at the given ground position.
func (w *Wave) HeightAt(x, z float64) float64 {
	half := w.Side / 2
	maxDistance := math.Hypot(half, half)
	distance := math.Hypot(x-half, z-half)

	offset := remap(distance, 0, maxDistance, -1, 1) * math.Pi
	return remap(math.Sin(offset-w.Time), -1, 1, MinHeight, MaxHeight)
}

// Columns returns all columns of the grid, ordered back to front.
func (w *Wave) Columns() []Column {
	var columns []Column

	for z := 0.0; z < w.Side; z += CellSize {
		for x := 0.0; x < w.Side; x += CellSize {
			columns = append(columns, Column{
				X:      x,
				Z:      z,
				Height: w.HeightAt(x, z),
			})
		}
	}

	// the camera looks along the diagonal, a smaller x+z is further away
	slices.SortStableFunc(columns, func(a, b Column) int {
		return cmp.Compare(a.X+a.Z, b.X+b.Z)
	})

	return columns
}

func remap(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return toMin + (value-fromMin)/(fromMax-fromMin)*(toMax-toMin)
}
