// Package selection keeps track of the single active selection in the editor
// and derives the highlight geometry drawn around it.
package selection

import (
	"sceneeditor/internal/assets"
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultExtent is the half-size used when an object has no usable mesh.
var DefaultExtent = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}

// MeshLookup resolves mesh handles to geometry. Missing entries report false.
type MeshLookup interface {
	Mesh(h assets.MeshHandle) (*assets.MeshData, bool)
}

// ResolveExtent returns the half-extents used to size a highlight box and the
// transform to place it with. A nil transform means the world origin; a nil,
// unresolved or empty mesh means DefaultExtent. Inputs are never modified.
func ResolveExtent(world *engine.Transform, mesh *assets.MeshHandle, store MeshLookup) (rl.Vector3, engine.Transform) {
	transform := engine.IdentityTransform()
	if world != nil {
		transform = *world
	}

	extent := DefaultExtent
	if mesh != nil && store != nil {
		if data, ok := store.Mesh(*mesh); ok {
			if half, ok := data.HalfExtents(); ok {
				extent = half
			}
		}
	}
	return extent, transform
}
