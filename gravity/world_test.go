package gravity

import (
	"testing"

	"github.com/oliverbestmann/sketchbook/gm"
	"github.com/stretchr/testify/require"
)

func recordEvents(w *World) *[]Event {
	var events []Event
	w.Observe(func(ev Event) {
		events = append(events, ev)
	})

	return &events
}

func TestWorld_SpawnIds(t *testing.T) {
	w := NewWorld(nil)

	require.Equal(t, uint(0), w.Spawn(gm.Vec{X: 0}))
	require.Equal(t, uint(1), w.Spawn(gm.Vec{X: 500}))

	a, ok := w.Attractor(1)
	require.True(t, ok)
	require.Equal(t, SpawnRadius, a.Radius)
	require.Equal(t, gm.Vec{X: 500}, a.Position)

	// a second world has its own counter
	require.Equal(t, uint(0), NewWorld(nil).Spawn(gm.VecZero))
}

func TestWorld_AbsorbScenario(t *testing.T) {
	w := NewWorld(nil)
	events := recordEvents(w)

	first := w.Spawn(gm.Vec{X: 0, Y: 0})
	second := w.Spawn(gm.Vec{X: 3, Y: 0})
	require.Equal(t, uint(0), first)
	require.Equal(t, uint(1), second)

	w.Step()

	attractors := w.Attractors()
	require.Len(t, attractors, 1)

	// the attractor visited first in the outer loop absorbs the other one
	survivor := attractors[0]
	require.Equal(t, first, survivor.ID)
	require.Equal(t, 16.0, survivor.Radius)
	require.InDelta(t, 0.10, survivor.ForceMag, 1e-12)
	require.Equal(t, gm.VecZero, survivor.Velocity)

	_, ok := w.Attractor(second)
	require.False(t, ok)

	require.Len(t, *events, 3)
	absorbed := (*events)[2]
	require.Equal(t, EventAbsorbed, absorbed.Kind)
	require.Equal(t, first, absorbed.ID)
	require.Equal(t, second, absorbed.Other)
	require.Equal(t, uint64(1), absorbed.Frame)

	// ids are not reused after an absorption
	require.Equal(t, uint(2), w.Spawn(gm.Vec{X: 1000}))
}

func TestWorld_CollapseScenario(t *testing.T) {
	w := NewWorld(nil)
	events := recordEvents(w)

	id := w.Spawn(gm.VecZero)
	w.attractors[0].Radius = RadiusLimit

	for step := 1; step <= 16; step++ {
		w.Step()

		a, ok := w.Attractor(id)
		require.True(t, ok, "step %d", step)
		require.True(t, a.Collapsing)
		require.False(t, a.Dead)
	}

	w.Step()

	_, ok := w.Attractor(id)
	require.False(t, ok)
	require.Empty(t, w.Attractors())

	var kinds []EventKind
	for _, ev := range *events {
		kinds = append(kinds, ev.Kind)
	}

	require.Equal(t, []EventKind{EventSpawned, EventCollapseStarted, EventDied}, kinds)
	require.Equal(t, uint(1), w.Stats().Died)
}

func TestWorld_AbsorbedAttractorIsSkipped(t *testing.T) {
	w := NewWorld(nil)

	w.Spawn(gm.Vec{X: 0})
	w.Spawn(gm.Vec{X: 5})
	far := w.Spawn(gm.Vec{X: 100})

	w.Step()

	require.Len(t, w.Attractors(), 2)

	// only the merged attractor pulls on the far one, the absorbed one is gone
	c, ok := w.Attractor(far)
	require.True(t, ok)
	require.InDelta(t, -0.10, c.Acceleration.X, 1e-12)
	require.InDelta(t, 0, c.Acceleration.Y, 1e-12)
}

func TestWorld_CollapsingIsNotAbsorbed(t *testing.T) {
	w := NewWorld(nil)
	events := recordEvents(w)

	live := w.Spawn(gm.Vec{X: 0})
	collapsing := w.Spawn(gm.Vec{X: 5})
	w.attractors[1].Radius = RadiusLimit

	w.Step()

	require.Len(t, w.Attractors(), 2)

	a, _ := w.Attractor(live)
	require.Equal(t, SpawnRadius, a.Radius)
	require.False(t, a.Collapsing)

	b, ok := w.Attractor(collapsing)
	require.True(t, ok)
	require.True(t, b.Collapsing)
	require.Equal(t, 0.75*RadiusLimit, b.Radius)

	// both still pull on each other
	require.InDelta(t, AttractForce, a.Acceleration.X, 1e-12)
	require.InDelta(t, -AttractForce, b.Acceleration.X, 1e-12)

	// the collapse runs to the end without a merge
	for range 16 {
		w.Step()
	}

	_, ok = w.Attractor(collapsing)
	require.False(t, ok)

	a, ok = w.Attractor(live)
	require.True(t, ok)
	require.Equal(t, SpawnRadius, a.Radius)

	for _, ev := range *events {
		require.NotEqual(t, EventAbsorbed, ev.Kind)
	}

	require.Equal(t, uint(0), w.Stats().Absorbed)
}

func TestWorld_CollapsingDoesNotAbsorb(t *testing.T) {
	w := NewWorld(nil)

	collapsing := w.Spawn(gm.Vec{X: 0})
	live := w.Spawn(gm.Vec{X: 5})
	w.attractors[0].Radius = RadiusLimit

	w.Step()

	require.Len(t, w.Attractors(), 2)

	a, _ := w.Attractor(collapsing)
	require.True(t, a.Collapsing)
	require.Equal(t, 0.75*RadiusLimit, a.Radius)

	b, ok := w.Attractor(live)
	require.True(t, ok)
	require.Equal(t, SpawnRadius, b.Radius)
	require.InDelta(t, AttractForce, b.ForceMag, 1e-12)
}

func TestWorld_StatsDoesNotModifyWorld(t *testing.T) {
	ps := NewParticleSystem(gm.VecZero)
	ps.AddParticles(3)

	w := NewWorld(ps)
	w.Spawn(gm.Vec{X: 0})
	w.Spawn(gm.Vec{X: 5})
	w.Spawn(gm.Vec{X: 500})
	w.Step()

	before := w.Attractors()

	stats := w.Stats()
	require.Equal(t, Stats{
		Frame:         1,
		Particles:     3,
		Attractors:    2,
		Spawned:       3,
		Absorbed:      1,
		LargestRadius: 2 * SpawnRadius,
	}, stats)

	require.Equal(t, stats, w.Stats())
	require.Equal(t, before, w.Attractors())
	require.Equal(t, uint64(1), w.Frame())
}

func TestWorld_MultipleAbsorbsInOnePass(t *testing.T) {
	w := NewWorld(nil)
	w.Spawn(gm.Vec{X: 0})
	w.Spawn(gm.Vec{X: 1})
	w.Spawn(gm.Vec{X: 2})

	w.Step()

	attractors := w.Attractors()
	require.Len(t, attractors, 1)
	require.Equal(t, uint(0), attractors[0].ID)
	require.Equal(t, 3*SpawnRadius, attractors[0].Radius)
	require.InDelta(t, 3*AttractForce, attractors[0].ForceMag, 1e-12)
	require.Equal(t, uint(2), w.Stats().Absorbed)
}

func TestWorld_MutualAttraction(t *testing.T) {
	w := NewWorld(nil)
	a := w.Spawn(gm.Vec{X: 0})
	b := w.Spawn(gm.Vec{X: 200})

	w.Step()

	first, _ := w.Attractor(a)
	second, _ := w.Attractor(b)
	require.InDelta(t, AttractForce, first.Acceleration.X, 1e-12)
	require.InDelta(t, -AttractForce, second.Acceleration.X, 1e-12)

	// the acceleration is integrated in the next frame
	w.Step()

	first, _ = w.Attractor(a)
	require.InDelta(t, AttractForce, first.Velocity.X, 1e-12)
}

func TestWorld_PullsParticles(t *testing.T) {
	ps := NewParticleSystem(gm.Vec{X: 100})
	ps.AddParticle()

	w := NewWorld(ps)
	w.Spawn(gm.VecZero)

	w.Step()
	require.InDelta(t, -AttractForce, ps.Particles[0].Acceleration.X, 1e-12)
	require.Equal(t, gm.Vec{X: 100}, ps.Particles[0].Position)

	w.Step()
	require.InDelta(t, -AttractForce, ps.Particles[0].Velocity.X, 1e-12)
	require.InDelta(t, 100-AttractForce, ps.Particles[0].Position.X, 1e-12)
}

func TestWorld_QueueSpawn(t *testing.T) {
	w := NewWorld(nil)
	w.QueueSpawn(gm.Vec{X: 10})
	w.QueueSpawn(gm.Vec{X: 500})

	require.Empty(t, w.Attractors())

	w.Step()

	attractors := w.Attractors()
	require.Len(t, attractors, 2)
	require.Equal(t, uint(0), attractors[0].ID)
	require.Equal(t, uint(1), attractors[1].ID)

	// the queue is drained
	w.Step()
	require.Len(t, w.Attractors(), 2)
}

func TestWorld_RemoveAttractor(t *testing.T) {
	w := NewWorld(nil)
	id := w.Spawn(gm.VecZero)

	require.True(t, w.RemoveAttractor(id))
	require.False(t, w.RemoveAttractor(id))
	require.False(t, w.RemoveAttractor(42))
	require.Empty(t, w.Attractors())
}

func TestWorld_LongRunInvariants(t *testing.T) {
	rng := gm.NewRandom(99)
	bounds := gm.RectWithSize(gm.Vec{X: 400, Y: 300})

	ps := NewParticleSystem(bounds.Center())
	ps.AddParticles(50)
	ps.Shuffle(bounds, rng)
	ps.Wander(rng)

	w := NewWorld(ps)

	var lastID uint
	var spawned int
	for frame := range 600 {
		if frame%7 == 0 {
			id := w.Spawn(rng.InRect(bounds))
			if spawned > 0 {
				require.Greater(t, id, lastID)
			}

			lastID = id
			spawned++
		}

		w.Step()

		var previous *Attractor
		for _, a := range w.attractors {
			require.False(t, a.Dead)
			require.Greater(t, a.Radius, 0.0)
			require.True(t, a.Position.IsFinite())

			if previous != nil {
				require.Greater(t, a.ID, previous.ID, "attractors stay in spawn order")
			}

			previous = a
		}

		for _, p := range ps.Particles {
			require.LessOrEqual(t, p.Velocity.Length(), p.TopSpeed+1e-9)
		}
	}

	stats := w.Stats()
	require.Equal(t, uint(spawned), stats.Spawned)
	require.Equal(t, 50, stats.Particles)
	require.Equal(t, stats.Spawned-stats.Absorbed-stats.Died, uint(stats.Attractors))
}

func TestWorld_Draw(t *testing.T) {
	ps := NewParticleSystem(gm.VecZero)
	ps.AddParticles(5)

	w := NewWorld(ps)
	w.Spawn(gm.Vec{X: 100})
	w.Spawn(gm.Vec{X: 300})
	w.attractors[1].Collapsing = true

	canvas := &recordingCanvas{}
	w.Draw(canvas, DefaultPalette)

	require.Len(t, canvas.circles, 7)
	require.Equal(t, DefaultPalette.Particle, canvas.circles[0].Color)
	require.Equal(t, DefaultPalette.Attractor, canvas.circles[5].Color)
	require.Equal(t, SpawnRadius, canvas.circles[5].Radius)
	require.Equal(t, DefaultPalette.Collapsing, canvas.circles[6].Color)
}
