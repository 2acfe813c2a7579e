// Package picking turns pointer rays into pick events for the selection router.
package picking

import (
	"sceneeditor/internal/assets"
	"sceneeditor/internal/components"
	"sceneeditor/internal/engine"
	"sceneeditor/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const DefaultMaxDistance = 1000

// Picker raycasts against the bounds of every active object that has a
// MeshRenderer. Objects without a mesh, such as lights, are not pickable.
type Picker struct {
	Scene       *engine.Scene
	Meshes      *assets.MeshStore
	MaxDistance float32
}

func NewPicker(scene *engine.Scene, meshes *assets.MeshStore) *Picker {
	return &Picker{Scene: scene, Meshes: meshes, MaxDistance: DefaultMaxDistance}
}

// Bounds returns the world-space box used to pick g, or false if g is not pickable.
func (p *Picker) Bounds(g *engine.GameObject) (AABB, bool) {
	if !g.Active {
		return AABB{}, false
	}
	mr := engine.GetComponent[*components.MeshRenderer](g)
	if mr == nil {
		return AABB{}, false
	}

	local := NewAABBFromCenter(rl.Vector3{}, selection.DefaultExtent)
	if data, ok := p.Meshes.Mesh(mr.Mesh); ok {
		if box, ok := data.BoundingBox(); ok {
			local = AABB{Min: box.Min, Max: box.Max}
		}
	}
	return WorldBounds(local, g.WorldTransform()), true
}

// Raycast returns the closest pickable object hit by ray.
func (p *Picker) Raycast(ray rl.Ray) (RaycastHit, bool) {
	if p.Scene == nil || rl.Vector3Length(ray.Direction) == 0 {
		return RaycastHit{}, false
	}
	dir := rl.Vector3Normalize(ray.Direction)

	var closest RaycastHit
	closest.Distance = p.MaxDistance
	hit := false
	for _, g := range p.Scene.GameObjects {
		box, ok := p.Bounds(g)
		if !ok {
			continue
		}
		if h, ok := raycastBox(ray.Position, dir, box, p.MaxDistance); ok && h.Distance < closest.Distance {
			closest = h
			closest.UID = g.UID
			hit = true
		}
	}
	return closest, hit
}

// Emit pushes a Pick for the object under ray, reporting whether one was hit.
func (p *Picker) Emit(events *selection.Events, ray rl.Ray) bool {
	h, ok := p.Raycast(ray)
	if ok {
		events.Picks.Push(selection.Pick{Target: h.UID})
	}
	return ok
}
