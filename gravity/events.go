package gravity

import (
	"log/slog"

	"github.com/oliverbestmann/sketchbook/gm"
)

type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventAbsorbed
	EventCollapseStarted
	EventDied
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventAbsorbed:
		return "absorbed"
	case EventCollapseStarted:
		return "collapse-started"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle change of an attractor. For EventAbsorbed,
// ID is the surviving attractor and Other the one that was absorbed.
// Position and Radius describe the attractor identified by ID after the change.
type Event struct {
	Kind     EventKind
	Frame    uint64
	ID       uint
	Other    uint
	Position gm.Vec
	Radius   float64
}

func (ev Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", ev.Kind.String()),
		slog.Uint64("frame", ev.Frame),
		slog.Uint64("id", uint64(ev.ID)),
		slog.Float64("radius", ev.Radius),
	}

	if ev.Kind == EventAbsorbed {
		attrs = append(attrs, slog.Uint64("other", uint64(ev.Other)))
	}

	return slog.GroupValue(attrs...)
}

// Observer receives events synchronously while the world is stepping.
// Observers must not modify the world.
type Observer func(ev Event)
