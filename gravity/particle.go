// Package gravity simulates passive particles pulled around by attractors that
// attract each other, merge when they come close and collapse once they grow
// too large.
//
// All types are single threaded. A World is advanced by calling Step once per
// frame, spawn requests arriving from input handlers are queued with
// QueueSpawn and applied at the beginning of the next Step.
package gravity

import (
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

// DefaultTopSpeed is the velocity limit of a freshly created particle.
const DefaultTopSpeed = 12.0

// ParticleRadius is the size particles are rendered with.
const ParticleRadius = 3.0

// Body is anything that integrates forces into motion.
type Body interface {
	ApplyForce(force gm.Vec)
	Update()
}

var _ Body = (*Motion)(nil)

// Motion is the kinematic state shared by particles and attractors.
type Motion struct {
	Position     gm.Vec
	Velocity     gm.Vec
	Acceleration gm.Vec

	// TopSpeed limits the length of Velocity after every Update.
	TopSpeed float64
}

// ApplyForce adds force to the acceleration of this frame. Mass is always one.
func (m *Motion) ApplyForce(force gm.Vec) {
	m.Acceleration = m.Acceleration.Add(force)
}

// Update integrates the accumulated acceleration. The velocity is clamped
// before it moves the position, forces never carry over into the next frame.
func (m *Motion) Update() {
	m.Velocity = m.Velocity.Add(m.Acceleration).ClampLength(m.TopSpeed)
	m.Position = m.Position.Add(m.Velocity)
	m.Acceleration = gm.VecZero
}

type Particle struct {
	Motion
}

func NewParticle(position gm.Vec) *Particle {
	return &Particle{
		Motion: Motion{
			Position: position,
			TopSpeed: DefaultTopSpeed,
		},
	}
}

// Run updates the particle and draws it at its new position.
func (p *Particle) Run(canvas sketchbook.Canvas, c color.Color) {
	p.Update()
	p.Draw(canvas, c)
}

func (p *Particle) Draw(canvas sketchbook.Canvas, c color.Color) {
	canvas.FillCircle(p.Position, ParticleRadius, c)
}
