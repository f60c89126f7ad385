package sonify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/oliverbestmann/sketchbook/gravity"
)

const (
	SampleRate = beep.SampleRate(44100)

	// MaxVoices limits the number of tones playing at the same time.
	MaxVoices = 8
)

// Sonifier plays a tone for every attractor event it observes.
// It is silent until Init succeeds.
type Sonifier struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func New() *Sonifier {
	return &Sonifier{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts playing the mixer.
func (s *Sonifier) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	err := speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close stops all tones and closes the speaker.
func (s *Sonifier) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Observe can be registered as a gravity.Observer.
func (s *Sonifier) Observe(ev gravity.Event) {
	tone, ok := ToneFor(ev)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	streamer, err := tone.Streamer(SampleRate)
	if err != nil {
		slog.Warn("Failed to create tone", slog.Any("err", err))
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if s.mixer.Len() >= MaxVoices {
		return
	}

	s.mixer.Add(streamer)
}
