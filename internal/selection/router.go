package selection

import (
	"sceneeditor/internal/assets"
	"sceneeditor/internal/engine"
	"sceneeditor/internal/input"
)

// SceneLookup resolves an object id to its world transform and optional mesh.
// ok is false when the object no longer exists.
type SceneLookup interface {
	Resolve(uid uint64) (transform *engine.Transform, mesh *assets.MeshHandle, ok bool)
}

// Pick is a picking-backend notification about one scene object.
type Pick struct {
	Target uint64
}

// Events are the frame-scoped producer streams feeding the router.
type Events struct {
	Picks     input.Queue[Pick] // object clicked
	Selects   input.Queue[Pick] // object entered selection
	Deselects input.Queue[Pick] // object left selection
}

// Frame carries the per-frame pointer context the router gates on.
type Frame struct {
	PointerOverUI bool
	PrimaryHeld   bool
}

// Router applies pick, select and deselect events to an ActiveSelection.
// It is driven once per frame from the editor loop and is not safe for
// concurrent use.
type Router struct {
	Selection *ActiveSelection
	Scene     SceneLookup
	Meshes    MeshLookup
	Events    Events
}

func NewRouter(sel *ActiveSelection, scene SceneLookup, meshes MeshLookup) *Router {
	return &Router{
		Selection: sel,
		Scene:     scene,
		Meshes:    meshes,
	}
}

// Update drains every event queue once and applies the resulting transitions:
// pointer over UI suppresses pointer-driven changes, a held primary button with
// no picks clears the selection, each resolvable pick selects (last wins), and
// any explicit deselect event clears the selection afterwards.
func (r *Router) Update(f Frame) {
	picks := append(r.Events.Picks.Drain(), r.Events.Selects.Drain()...)
	deselect := !r.Events.Deselects.IsEmpty()
	r.Events.Deselects.Clear()

	if !f.PointerOverUI {
		if len(picks) == 0 {
			if f.PrimaryHeld {
				r.Selection.Deselect()
			}
		} else {
			for _, p := range picks {
				r.selectTarget(p.Target)
			}
		}
	}

	if deselect {
		r.Selection.Deselect()
	}
}

// SelectFromUI selects uid directly, as when a hierarchy row is clicked.
// It reports false, leaving the selection untouched, when uid cannot be resolved.
func (r *Router) SelectFromUI(uid uint64) bool {
	return r.selectTarget(uid)
}

func (r *Router) selectTarget(uid uint64) bool {
	if r.Scene == nil {
		return false
	}
	transform, mesh, ok := r.Scene.Resolve(uid)
	if !ok {
		return false
	}
	r.Selection.Select(uid, transform, mesh, r.Meshes)
	return true
}
