package selection

import (
	"sceneeditor/internal/assets"
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ActiveSelection is the one currently selected object. EntityID, Transform
// and Extent are only meaningful while HasSelection is true; Deselect leaves
// them holding the last selection.
type ActiveSelection struct {
	EntityID     uint64
	Transform    engine.Transform // snapshot taken at selection time
	Extent       rl.Vector3
	HasSelection bool

	// Changed fires after every Select, and after a Deselect that clears a
	// live selection.
	Changed engine.EventWithArg[*ActiveSelection]
}

// Select makes target the active selection and snapshots its transform and
// highlight extent. Selecting the same target again refreshes the snapshot.
func (s *ActiveSelection) Select(target uint64, transform *engine.Transform, mesh *assets.MeshHandle, store MeshLookup) {
	s.HasSelection = true
	s.EntityID = target
	s.Extent, s.Transform = ResolveExtent(transform, mesh, store)
	s.Changed.Invoke(s)
}

// Deselect clears the active flag and keeps the last selection's data.
// Deselecting with nothing selected is a no-op.
func (s *ActiveSelection) Deselect() {
	if !s.HasSelection {
		return
	}
	s.HasSelection = false
	s.Changed.Invoke(s)
}

// IsSelected reports whether uid is the live selection.
func (s *ActiveSelection) IsSelected(uid uint64) bool {
	return s.HasSelection && s.EntityID == uid
}

// Highlight is the overlay drawn around the selection: a box plus three unit
// rays along the object's local axes.
type Highlight struct {
	Center   rl.Vector3
	Size     rl.Vector3 // full size, twice the extent
	Rotation rl.Quaternion
	Up       rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Highlight derives the overlay geometry; false when nothing is selected.
func (s *ActiveSelection) Highlight() (Highlight, bool) {
	if !s.HasSelection {
		return Highlight{}, false
	}
	t := s.Transform
	return Highlight{
		Center:   t.Position,
		Size:     rl.Vector3Scale(s.Extent, 2),
		Rotation: t.Quaternion(),
		Up:       t.Up(),
		Forward:  t.Forward(),
		Right:    t.Right(),
	}, true
}
