// Package sketchbook contains the contracts shared by all sketches and drivers.
//
// A sketch implements Scene: it owns its simulation state, advances it in
// Update and renders it through a Canvas in Draw. Drivers (see packages
// sketchbiten and sketchterm) own the window or terminal, supply the frame
// cadence and forward input to the optional Clicker and Pointer capabilities.
package sketchbook

import (
	"time"

	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

// Canvas is an immediate mode 2d drawing surface. Coordinates are in canvas
// units with the origin in the top left corner.
type Canvas interface {
	// Size returns the current width and height of the canvas.
	Size() gm.Vec

	Clear(c color.Color)
	FillCircle(center gm.Vec, radius float64, c color.Color)
	FillPolygon(points []gm.Vec, c color.Color)
}

// Bounds returns the canvas area as a rect starting at the origin.
func Bounds(canvas Canvas) gm.Rect {
	return gm.RectWithSize(canvas.Size())
}

type Scene interface {
	// Setup is called once with the initial canvas size before the first Update.
	Setup(size gm.Vec)

	// Update advances the scene by one frame. Scenes that simulate per frame
	// may ignore dt, it is only informational.
	Update(dt time.Duration)

	Draw(canvas Canvas)
}

// Clicker is implemented by scenes that react to a pointer press.
type Clicker interface {
	Click(pos gm.Vec)
}

// Pointer is implemented by scenes that follow the pointer position.
type Pointer interface {
	PointerMoved(pos gm.Vec)
}

// DebugCircle describes a circular object of a scene for debug overlays.
// Range is an optional second radius, e.g. an interaction distance.
type DebugCircle struct {
	ID     uint64
	Center gm.Vec
	Radius float64
	Range  float64
}

// Inspector is implemented by scenes that expose internals to debug overlays.
type Inspector interface {
	DebugCircles() []DebugCircle
	DebugInfo() []string
}
