// Package sonify turns attractor events into short tones played through the speaker.
package sonify

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/oliverbestmann/sketchbook/gravity"
)

const (
	minFrequency = 110
	maxFrequency = 1760
)

// Tone is a sine tone with a short linear fade in and fade out.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Fade      time.Duration
	Volume    float64
}

// ToneFor maps an event to the tone that should be played for it.
// Absorbing attractors sound lower the larger they grow.
func ToneFor(ev gravity.Event) (Tone, bool) {
	switch ev.Kind {
	case gravity.EventSpawned:
		return Tone{Frequency: 880, Duration: 60 * time.Millisecond, Fade: 10 * time.Millisecond, Volume: 0.15}, true

	case gravity.EventAbsorbed:
		freq := 3520 / math.Max(ev.Radius, 1)
		freq = math.Min(math.Max(freq, minFrequency), maxFrequency)
		return Tone{Frequency: freq, Duration: 120 * time.Millisecond, Fade: 20 * time.Millisecond, Volume: 0.25}, true

	case gravity.EventCollapseStarted:
		return Tone{Frequency: minFrequency, Duration: 500 * time.Millisecond, Fade: 200 * time.Millisecond, Volume: 0.3}, true

	case gravity.EventDied:
		return Tone{Frequency: 1320, Duration: 40 * time.Millisecond, Fade: 10 * time.Millisecond, Volume: 0.1}, true

	default:
		return Tone{}, false
	}
}

// Streamer renders the tone at the given sample rate.
func (t Tone) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, t.Frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone at %fHz: %w", t.Frequency, err)
	}

	total := rate.N(t.Duration)
	shaped := &fade{
		streamer: beep.Take(total, sine),
		fade:     min(rate.N(t.Fade), total/2),
		total:    total,
	}

	return volume(shaped, t.Volume), nil
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fade ramps the first and last samples of a stream of known length to avoid clicks.
type fade struct {
	streamer beep.Streamer
	position int
	fade     int
	total    int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	for idx := range n {
		gain := 1.0

		if f.fade > 0 {
			if f.position < f.fade {
				gain = float64(f.position) / float64(f.fade)
			}

			if remaining := f.total - f.position; remaining < f.fade {
				gain = float64(remaining) / float64(f.fade)
			}
		}

		samples[idx][0] *= gain
		samples[idx][1] *= gain
		f.position++
	}

	return n, ok
}

func (f *fade) Err() error {
	return f.streamer.Err()
}
