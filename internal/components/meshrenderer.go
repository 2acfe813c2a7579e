package components

import (
	"sceneeditor/internal/assets"
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer links a game object to mesh data in the world's MeshStore.
type MeshRenderer struct {
	engine.BaseComponent
	Mesh  assets.MeshHandle
	Color rl.Color
}

func NewMeshRenderer(mesh assets.MeshHandle, color rl.Color) *MeshRenderer {
	return &MeshRenderer{
		Mesh:  mesh,
		Color: color,
	}
}

// Draw renders the mesh triangles with the owner's world transform.
// Call inside BeginMode3D/EndMode3D.
func (m *MeshRenderer) Draw(store *assets.MeshStore) {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	data, ok := store.Mesh(m.Mesh)
	if !ok {
		return
	}

	world := g.WorldTransform()
	rot := world.Quaternion()
	place := func(v rl.Vector3) rl.Vector3 {
		v = rl.Vector3Multiply(v, world.Scale)
		return rl.Vector3Add(rl.Vector3RotateByQuaternion(v, rot), world.Position)
	}

	data.Triangles(func(a, b, c rl.Vector3) {
		rl.DrawTriangle3D(place(a), place(b), place(c), m.Color)
	})
}
