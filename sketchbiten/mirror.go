package sketchbiten

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/gm"
	"github.com/oliverbestmann/sketchbook/internal/set"
)

// debugMirror keeps a cp.Space in sync with the debug circles of a scene.
// Every circle becomes a kinematic body with a solid shape and, if it has
// a range, a sensor shape. The space is never stepped, it is only used for
// drawing and point queries.
type debugMirror struct {
	space   *cp.Space
	entries map[uint64]*mirrorEntry
}

type mirrorEntry struct {
	body *cp.Body

	shape      *cp.Shape
	rangeShape *cp.Shape

	radius float64
	rng    float64
}

func newDebugMirror() *debugMirror {
	return &debugMirror{
		space:   cp.NewSpace(),
		entries: map[uint64]*mirrorEntry{},
	}
}

func (m *debugMirror) Len() int {
	return len(m.entries)
}

func (m *debugMirror) Sync(circles []sketchbook.DebugCircle) {
	var seen set.Set[uint64]

	for _, circle := range circles {
		seen.Insert(circle.ID)

		entry, ok := m.entries[circle.ID]
		if !ok {
			entry = &mirrorEntry{body: m.space.AddBody(cp.NewKinematicBody())}
			m.entries[circle.ID] = entry
		}

		if entry.shape == nil || entry.radius != circle.Radius || entry.rng != circle.Range {
			m.removeShapes(entry)
			m.addShapes(circle.ID, entry, circle.Radius, circle.Range)
		}

		entry.body.SetPosition(cp.Vector(circle.Center))
		m.space.ReindexShapesForBody(entry.body)
	}

	for id, entry := range m.entries {
		if seen.Has(id) {
			continue
		}

		m.removeShapes(entry)
		m.space.RemoveBody(entry.body)
		delete(m.entries, id)
	}
}

// Nearest returns the id of the circle closest to pos, but no further away than maxDistance.
func (m *debugMirror) Nearest(pos gm.Vec, maxDistance float64) (uint64, bool) {
	info := m.space.PointQueryNearest(cp.Vector(pos), maxDistance, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil {
		return 0, false
	}

	id, ok := info.Shape.UserData.(uint64)
	return id, ok
}

func (m *debugMirror) addShapes(id uint64, entry *mirrorEntry, radius, rng float64) {
	entry.radius = radius
	entry.rng = rng

	entry.shape = m.space.AddShape(cp.NewCircle(entry.body, radius, cp.Vector{}))
	entry.shape.UserData = id

	if rng > 0 {
		entry.rangeShape = m.space.AddShape(cp.NewCircle(entry.body, rng, cp.Vector{}))
		entry.rangeShape.SetSensor(true)
		entry.rangeShape.UserData = id
	}
}

func (m *debugMirror) removeShapes(entry *mirrorEntry) {
	if entry.shape != nil {
		m.space.RemoveShape(entry.shape)
		entry.shape = nil
	}

	if entry.rangeShape != nil {
		m.space.RemoveShape(entry.rangeShape)
		entry.rangeShape = nil
	}
}
