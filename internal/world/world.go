// Package world owns the editor's scene graph and mesh storage.
package world

import (
	"sceneeditor/internal/assets"
	"sceneeditor/internal/components"
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	DefaultCameraPosition = rl.Vector3{X: -2, Y: 2.5, Z: 5}
	DefaultCameraFocus    = rl.Vector3{}
)

type World struct {
	Scene  *engine.Scene
	Meshes *assets.MeshStore

	// Camera start pose stored with the scene.
	CameraPosition rl.Vector3
	CameraFocus    rl.Vector3
}

func New() *World {
	return &World{
		Scene:          engine.NewScene("Main"),
		Meshes:         assets.NewMeshStore(),
		CameraPosition: DefaultCameraPosition,
		CameraFocus:    DefaultCameraFocus,
	}
}

// NewDefault builds the startup scene: a 5x5 ground plane, a unit cube resting
// on it and a point light. None of them are named.
func NewDefault() *World {
	w := New()

	ground := engine.NewGameObject("")
	w.AddMesh(ground, assets.GenPlane(5, 5), rl.NewColor(77, 128, 77, 255))
	w.Scene.AddGameObject(ground)

	cube := engine.NewGameObject("")
	cube.Transform.Position = rl.Vector3{Y: 0.5}
	w.AddMesh(cube, assets.GenCube(1, 1, 1), rl.NewColor(204, 179, 153, 255))
	w.Scene.AddGameObject(cube)

	light := engine.NewGameObject("")
	light.Transform.Position = rl.Vector3{X: 1, Y: 1, Z: 1}
	light.AddComponent(components.NewPointLight())
	w.Scene.AddGameObject(light)

	w.Scene.Start()
	return w
}

// AddMesh stores mesh and attaches a MeshRenderer for it to g.
func (w *World) AddMesh(g *engine.GameObject, mesh *assets.MeshData, color rl.Color) *components.MeshRenderer {
	mr := components.NewMeshRenderer(w.Meshes.Add(mesh), color)
	g.AddComponent(mr)
	return mr
}

// Resolve looks up uid and returns a copy of its world transform plus its mesh
// handle, if any. ok is false when the object is not in the scene.
func (w *World) Resolve(uid uint64) (*engine.Transform, *assets.MeshHandle, bool) {
	g := w.Scene.FindByUID(uid)
	if g == nil {
		return nil, nil, false
	}
	t := g.WorldTransform()

	var mesh *assets.MeshHandle
	if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
		h := mr.Mesh
		mesh = &h
	}
	return &t, mesh, true
}

// Draw renders every mesh and marks point lights. Call inside BeginMode3D.
func (w *World) Draw() {
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
			mr.Draw(w.Meshes)
		}
		if light := engine.GetComponent[*components.PointLight](g); light != nil {
			rl.DrawSphereWires(light.GetPosition(), 0.1, 6, 6, light.Color)
		}
	}
}
