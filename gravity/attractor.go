package gravity

import (
	"math"

	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
	"github.com/oliverbestmann/sketchbook/internal/assert"
)

const (
	// RadiusLimit is the radius at which an attractor starts to collapse.
	RadiusLimit = 100.0

	// SpawnRadius is the radius of attractors spawned into a World.
	SpawnRadius = 8.0

	// DefaultRadius is used by NewAttractor if no positive radius is given.
	DefaultRadius = 16.0

	// AttractForce is the force magnitude of a new attractor.
	AttractForce = 0.05

	// CollapseFactor shrinks the radius of a collapsing attractor every frame.
	CollapseFactor = 0.75

	// NearFactor scales the summed radii of two attractors to get the
	// distance at which they merge. Disks merge while still overlapping.
	NearFactor = 0.8
)

type Attractor struct {
	Motion

	ForceMag float64
	Radius   float64
	ID       uint

	Collapsing bool
	Dead       bool
}

// NewAttractor creates an attractor. Attractors are not speed limited.
func NewAttractor(position gm.Vec, radius float64, id uint) *Attractor {
	if radius <= 0 {
		radius = DefaultRadius
	}

	return &Attractor{
		Motion: Motion{
			Position: position,
			TopSpeed: math.Inf(1),
		},
		ForceMag: AttractForce,
		Radius:   radius,
		ID:       id,
	}
}

// ApplyAttractForce pulls target towards this attractor with a force of
// ForceMag, independent of the distance. A target sitting exactly on the
// attractor has no direction to be pulled in and receives no force.
func (a *Attractor) ApplyAttractForce(target *Motion) {
	force := a.Position.Sub(target.Position)
	if force.IsZero() {
		return
	}

	target.ApplyForce(force.WithLength(a.ForceMag))
}

// IsNearAnother reports whether other is close enough to be absorbed.
func (a *Attractor) IsNearAnother(other *Attractor) bool {
	return a.Position.DistanceTo(other.Position) < a.absorbDistance(other)
}

func (a *Attractor) absorbDistance(other *Attractor) float64 {
	return NearFactor * (a.Radius + other.Radius)
}

// Absorb takes over the force and size of other and stops the own drift.
// other is left untouched, the caller is responsible for removing it.
func (a *Attractor) Absorb(other *Attractor) {
	a.ForceMag += other.ForceMag
	a.Radius += other.Radius
	a.Velocity = gm.VecZero

	assert.Finite(a.ForceMag, "attractor force")
	assert.Finite(a.Radius, "attractor radius")
}

// Collapse shrinks the attractor by CollapseFactor. It is dead once the radius drops below one.
func (a *Attractor) Collapse() {
	a.Collapsing = true
	a.Radius *= CollapseFactor

	assert.Finite(a.Radius, "attractor radius")

	if a.Radius < 1 {
		a.Dead = true
	}
}

// ShouldCollapse reports whether the attractor is collapsing or has reached the radius limit.
func (a *Attractor) ShouldCollapse() bool {
	return a.Collapsing || a.Radius >= RadiusLimit
}

// Run updates the attractor and draws it at its new position.
func (a *Attractor) Run(canvas sketchbook.Canvas, c color.Color) {
	a.Update()
	a.Draw(canvas, c)
}

func (a *Attractor) Draw(canvas sketchbook.Canvas, c color.Color) {
	canvas.FillCircle(a.Position, a.Radius, c)
}
