package gravity

import (
	"testing"

	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
	"github.com/stretchr/testify/require"
)

func TestMotion_Update(t *testing.T) {
	m := Motion{
		Position: gm.Vec{X: 10, Y: 10},
		Velocity: gm.Vec{X: 1, Y: 0},
		TopSpeed: DefaultTopSpeed,
	}

	m.ApplyForce(gm.Vec{X: 0, Y: 2})
	m.ApplyForce(gm.Vec{X: 0, Y: 1})
	require.Equal(t, gm.Vec{X: 0, Y: 3}, m.Acceleration)

	m.Update()
	require.Equal(t, gm.Vec{X: 1, Y: 3}, m.Velocity)
	require.Equal(t, gm.Vec{X: 11, Y: 13}, m.Position)
	require.Equal(t, gm.VecZero, m.Acceleration)

	// forces do not leak into the next frame
	m.Update()
	require.Equal(t, gm.Vec{X: 1, Y: 3}, m.Velocity)
}

func TestMotion_UpdateClampsBeforeMoving(t *testing.T) {
	m := Motion{TopSpeed: 12}
	m.ApplyForce(gm.Vec{X: 30, Y: 40})
	m.Update()

	require.InDelta(t, 12, m.Velocity.Length(), 1e-9)
	require.InDelta(t, 7.2, m.Position.X, 1e-9)
	require.InDelta(t, 9.6, m.Position.Y, 1e-9)
}

func TestMotion_UpdateInvariants(t *testing.T) {
	rng := gm.NewRandom(3)

	p := NewParticle(gm.VecZero)
	for range 1000 {
		p.ApplyForce(rng.InSquare(20))
		p.Update()

		require.Equal(t, gm.VecZero, p.Acceleration)
		require.LessOrEqual(t, p.Velocity.Length(), p.TopSpeed+1e-9)
	}
}

func TestParticle_Run(t *testing.T) {
	canvas := &recordingCanvas{}

	p := NewParticle(gm.Vec{X: 5, Y: 5})
	p.Velocity = gm.Vec{X: 1, Y: 1}
	p.Run(canvas, color.White)

	require.Len(t, canvas.circles, 1)
	require.Equal(t, gm.Vec{X: 6, Y: 6}, canvas.circles[0].Center)
	require.Equal(t, ParticleRadius, canvas.circles[0].Radius)
}
