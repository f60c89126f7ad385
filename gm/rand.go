package gm

import (
	"math"
	"math/rand/v2"
)

// Random is a seedable source of uniform and normal distributed values.
// A zero Random is not usable, create one with NewRandom.
//
// Random is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a deterministic random source for the given seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// In returns a value uniformly sampled from the given range, excluding max.
func (r *Random) In(min, max float64) float64 {
	return r.rng.Float64()*(max-min) + min
}

// Gaussian returns a normal distributed value with the given mean and standard deviation.
func (r *Random) Gaussian(mean, stddev float64) float64 {
	return r.rng.NormFloat64()*stddev + mean
}

// InRect returns a point uniformly sampled from within the given rect.
func (r *Random) InRect(rect Rect) Vec {
	return Vec{
		X: r.In(rect.Min.X, rect.Max.X),
		Y: r.In(rect.Min.Y, rect.Max.Y),
	}
}

// InSquare returns a vector with both components uniformly sampled from [-extent, extent).
func (r *Random) InSquare(extent float64) Vec {
	return Vec{
		X: r.In(-extent, extent),
		Y: r.In(-extent, extent),
	}
}

// Angle returns a random angle uniformly sampled from the full circle
func (r *Random) Angle() Rad {
	return Rad(r.In(0, 2*math.Pi))
}
