package gravity

import (
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

// ParticleSystem owns a set of particles spawned at a common origin.
type ParticleSystem struct {
	// Origin is the spawn position of new particles. It is not enforced afterwards.
	Origin    gm.Vec
	Particles []*Particle
}

func NewParticleSystem(origin gm.Vec) *ParticleSystem {
	return &ParticleSystem{Origin: origin}
}

func (ps *ParticleSystem) AddParticle() {
	ps.Particles = append(ps.Particles, NewParticle(ps.Origin))
}

func (ps *ParticleSystem) AddParticles(count int) {
	for range count {
		ps.AddParticle()
	}
}

func (ps *ParticleSystem) Len() int {
	return len(ps.Particles)
}

// Shuffle moves every particle to a random position within bounds.
func (ps *ParticleSystem) Shuffle(bounds gm.Rect, rng *gm.Random) {
	for _, p := range ps.Particles {
		p.Position = rng.InRect(bounds)
	}
}

// Wander gives every particle a random velocity in [-1, 1] on both axes.
func (ps *ParticleSystem) Wander(rng *gm.Random) {
	for _, p := range ps.Particles {
		p.Velocity = rng.InSquare(1)
	}
}

// ApplyForce applies the same force to every particle.
func (ps *ParticleSystem) ApplyForce(force gm.Vec) {
	for _, p := range ps.Particles {
		p.ApplyForce(force)
	}
}

func (ps *ParticleSystem) ApplyAttractor(attractor *Attractor) {
	for _, p := range ps.Particles {
		attractor.ApplyAttractForce(&p.Motion)
	}
}

func (ps *ParticleSystem) Update() {
	for _, p := range ps.Particles {
		p.Update()
	}
}

// Run updates and draws every particle.
func (ps *ParticleSystem) Run(canvas sketchbook.Canvas, c color.Color) {
	for _, p := range ps.Particles {
		p.Run(canvas, c)
	}
}

func (ps *ParticleSystem) Draw(canvas sketchbook.Canvas, c color.Color) {
	for _, p := range ps.Particles {
		p.Draw(canvas, c)
	}
}
