package sketchbook

import (
	"time"
)

// FixedTime turns an irregular stream of real time deltas into a number of
// fixed size steps. Drivers use it to advance a Scene at a steady cadence
// independent of how often they get to run.
//
// The default value of StepInterval is 1/60s.
type FixedTime struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	StepInterval time.Duration

	// MaxSteps limits the number of steps a single Advance call may produce.
	// After a long stall the remaining time is dropped instead of running
	// the simulation in a tight loop to catch up.
	MaxSteps int

	overstep time.Duration
}

func NewFixedTime(ticksPerSecond int) FixedTime {
	interval := time.Second / 60
	if ticksPerSecond > 0 {
		interval = time.Second / time.Duration(ticksPerSecond)
	}

	return FixedTime{
		StepInterval: interval,
		MaxSteps:     8,
	}
}

// Advance accumulates delta and returns the number of steps that are due.
func (ft *FixedTime) Advance(delta time.Duration) int {
	ft.overstep += delta

	step := ft.StepInterval
	if step <= 0 {
		step = time.Second / 60
	}

	var steps int
	for ft.overstep >= step {
		ft.overstep -= step

		if ft.MaxSteps > 0 && steps >= ft.MaxSteps {
			ft.overstep = 0
			break
		}

		ft.Elapsed += step
		ft.Delta = step
		ft.DeltaSecs = step.Seconds()

		steps++
	}

	return steps
}

// Overstep returns the accumulated time that did not yet make up a full step.
func (ft *FixedTime) Overstep() time.Duration {
	return ft.overstep
}

// Stepper drives a Scene with a FixedTime and supports pausing and
// single stepping while paused. Both drivers share it.
type Stepper struct {
	Fixed  FixedTime
	Paused bool

	stepOnce bool
}

func NewStepper(ticksPerSecond int) Stepper {
	return Stepper{Fixed: NewFixedTime(ticksPerSecond)}
}

// TogglePause flips the pause state and returns the new one.
func (s *Stepper) TogglePause() bool {
	s.Paused = !s.Paused
	s.stepOnce = false
	return s.Paused
}

// StepOnce requests a single update on the next Advance. It is ignored
// while running.
func (s *Stepper) StepOnce() {
	s.stepOnce = s.Paused
}

// Advance feeds delta into the fixed clock and updates the scene with every
// step that is due. While paused, the due steps are dropped and only a
// requested single step runs. Returns the number of updates performed.
func (s *Stepper) Advance(scene Scene, delta time.Duration) int {
	steps := s.Fixed.Advance(delta)

	switch {
	case s.stepOnce:
		s.stepOnce = false
		steps = 1

	case s.Paused:
		steps = 0
	}

	for range steps {
		scene.Update(s.Fixed.StepInterval)
	}

	return steps
}
