package gravity

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

var DefaultPalette = Palette{
	Particle:   color.Gray(0.85),
	Attractor:  color.RGB(0.35, 0.6, 1),
	Collapsing: color.RGB(1, 0.3, 0.2),
}

type SceneOptions struct {
	Particles int
	Seed      uint64
	Palette   Palette
	Logger    *slog.Logger
}

// Scene runs a World as a sketchbook.Scene. Clicking spawns a new attractor.
type Scene struct {
	world   *World
	rng     *gm.Random
	palette Palette
	count   int
}

var _ sketchbook.Scene = (*Scene)(nil)
var _ sketchbook.Clicker = (*Scene)(nil)
var _ sketchbook.Inspector = (*Scene)(nil)

func NewScene(opts SceneOptions) *Scene {
	palette := opts.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	world := NewWorld(nil)
	world.Observe(func(ev Event) {
		logger.Debug("Attractor event", slog.Any("event", ev))
	})

	return &Scene{
		world:   world,
		rng:     gm.NewRandom(opts.Seed),
		palette: palette,
		count:   opts.Particles,
	}
}

func (s *Scene) World() *World {
	return s.world
}

// Observe forwards events of the underlying world to observer.
func (s *Scene) Observe(observer Observer) {
	s.world.Observe(observer)
}

// Setup spawns the particles in the center of the canvas, then scatters
// them and gives them some initial drift.
func (s *Scene) Setup(size gm.Vec) {
	ps := s.world.Particles()
	ps.Origin = size.Mul(0.5)
	ps.AddParticles(s.count)
	ps.Shuffle(gm.RectWithSize(size), s.rng)
	ps.Wander(s.rng)
}

func (s *Scene) Update(time.Duration) {
	s.world.Step()
}

func (s *Scene) Draw(canvas sketchbook.Canvas) {
	canvas.Clear(color.Black)
	s.world.Draw(canvas, s.palette)
}

func (s *Scene) Click(pos gm.Vec) {
	s.world.QueueSpawn(pos)
}

func (s *Scene) DebugCircles() []sketchbook.DebugCircle {
	var circles []sketchbook.DebugCircle
	for _, a := range s.world.Attractors() {
		circles = append(circles, sketchbook.DebugCircle{
			ID:     uint64(a.ID),
			Center: a.Position,
			Radius: a.Radius,
			// two attractors merge once their ranges touch
			Range: NearFactor * a.Radius,
		})
	}

	return circles
}

func (s *Scene) DebugInfo() []string {
	stats := s.world.Stats()
	return []string{
		fmt.Sprintf("frame=%d particles=%d attractors=%d", stats.Frame, stats.Particles, stats.Attractors),
		fmt.Sprintf("spawned=%d absorbed=%d died=%d largest=%.1f", stats.Spawned, stats.Absorbed, stats.Died, stats.LargestRadius),
	}
}
