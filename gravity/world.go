package gravity

import (
	"slices"

	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
	"github.com/oliverbestmann/sketchbook/internal/set"
)

// World owns the particles and the attractor population.
type World struct {
	particles  *ParticleSystem
	attractors []*Attractor

	// ids are never reused within one world
	nextID uint

	// spawn positions requested between two steps
	pending []gm.Vec

	// attractors absorbed during the current interaction pass
	absorbed set.Set[uint]

	observers []Observer

	frame uint64

	spawned uint
	absorbs uint
	deaths  uint
}

type Stats struct {
	Frame      uint64
	Particles  int
	Attractors int

	Spawned  uint
	Absorbed uint
	Died     uint

	LargestRadius float64
}

// Palette holds the colors used by World.Draw.
type Palette struct {
	Particle   color.Color
	Attractor  color.Color
	Collapsing color.Color
}

func NewWorld(particles *ParticleSystem) *World {
	if particles == nil {
		particles = NewParticleSystem(gm.VecZero)
	}

	return &World{particles: particles}
}

func (w *World) Particles() *ParticleSystem {
	return w.particles
}

// Attractors returns a copy of the live attractors in world order.
func (w *World) Attractors() []Attractor {
	result := make([]Attractor, 0, len(w.attractors))
	for _, a := range w.attractors {
		result = append(result, *a)
	}

	return result
}

// Attractor returns a copy of the live attractor with the given id.
func (w *World) Attractor(id uint) (Attractor, bool) {
	idx := w.indexOf(id)
	if idx < 0 {
		return Attractor{}, false
	}

	return *w.attractors[idx], true
}

func (w *World) Frame() uint64 {
	return w.frame
}

// Observe registers an observer for attractor lifecycle events.
func (w *World) Observe(observer Observer) {
	w.observers = append(w.observers, observer)
}

// Spawn immediately appends a new attractor at position and returns its id.
// Must not be called while Step is running, input handlers use QueueSpawn.
func (w *World) Spawn(position gm.Vec) uint {
	id := w.nextID
	w.nextID++

	a := NewAttractor(position, SpawnRadius, id)
	w.attractors = append(w.attractors, a)

	w.spawned++
	w.emit(EventSpawned, a, 0)

	return id
}

// QueueSpawn records a spawn request that is applied at the start of the next Step.
func (w *World) QueueSpawn(position gm.Vec) {
	w.pending = append(w.pending, position)
}

// RemoveAttractor removes the attractor with the given id. Removing an id
// that is not (or no longer) part of the world does nothing.
func (w *World) RemoveAttractor(id uint) bool {
	idx := w.indexOf(id)
	if idx < 0 {
		return false
	}

	w.attractors = slices.Delete(w.attractors, idx, idx+1)
	return true
}

func (w *World) indexOf(id uint) int {
	return slices.IndexFunc(w.attractors, func(a *Attractor) bool {
		return a.ID == id
	})
}

// Step advances the simulation by one frame.
func (w *World) Step() {
	w.frame++

	for _, position := range w.pending {
		w.Spawn(position)
	}

	w.pending = w.pending[:0]

	w.particles.Update()

	for _, a := range w.attractors {
		a.Update()

		w.particles.ApplyAttractor(a)

		if a.ShouldCollapse() {
			started := !a.Collapsing

			a.Collapse()

			if started {
				w.emit(EventCollapseStarted, a, 0)
			}

			if a.Dead {
				w.deaths++
				w.emit(EventDied, a, 0)
			}
		}
	}

	w.attractors = slices.DeleteFunc(w.attractors, func(a *Attractor) bool {
		return a.Dead
	})

	w.interact()
}

// interact lets every attractor pull on every other one and merges those that
// come close. Every ordered pair is visited, so each attractor is pulled by
// each other attractor once per frame. The first attractor of a near pair
// absorbs the second one, which is skipped for the rest of the pass.
// Collapsing attractors still pull and are pulled, but take no part in merges.
func (w *World) interact() {
	w.absorbed.Clear()

	for _, a := range w.attractors {
		if w.absorbed.Has(a.ID) {
			continue
		}

		for _, other := range w.attractors {
			if other == a || w.absorbed.Has(other.ID) {
				continue
			}

			other.ApplyAttractForce(&a.Motion)

			if canMerge(a, other) && a.IsNearAnother(other) {
				a.Absorb(other)
				w.absorbed.Insert(other.ID)

				w.absorbs++
				w.emit(EventAbsorbed, a, other.ID)
			}
		}
	}

	if w.absorbed.Len() == 0 {
		return
	}

	w.attractors = slices.DeleteFunc(w.attractors, func(a *Attractor) bool {
		return w.absorbed.Has(a.ID)
	})
}

func canMerge(a, other *Attractor) bool {
	return !a.Collapsing && !other.Collapsing
}

func (w *World) emit(kind EventKind, a *Attractor, other uint) {
	if len(w.observers) == 0 {
		return
	}

	ev := Event{
		Kind:     kind,
		Frame:    w.frame,
		ID:       a.ID,
		Other:    other,
		Position: a.Position,
		Radius:   a.Radius,
	}

	for _, observer := range w.observers {
		observer(ev)
	}
}

// Stats returns a snapshot of the world counters. Reading them does not
// modify the world.
func (w *World) Stats() Stats {
	stats := Stats{
		Frame:      w.frame,
		Particles:  w.particles.Len(),
		Attractors: len(w.attractors),
		Spawned:    w.spawned,
		Absorbed:   w.absorbs,
		Died:       w.deaths,
	}

	for _, a := range w.attractors {
		stats.LargestRadius = max(stats.LargestRadius, a.Radius)
	}

	return stats
}

// Draw renders every particle and every live attractor once.
func (w *World) Draw(canvas sketchbook.Canvas, palette Palette) {
	w.particles.Draw(canvas, palette.Particle)

	for _, a := range w.attractors {
		c := palette.Attractor
		if a.Collapsing {
			c = palette.Collapsing
		}

		a.Draw(canvas, c)
	}
}
