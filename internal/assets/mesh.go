package assets

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshHandle identifies a mesh inside a MeshStore. The zero handle never resolves.
type MeshHandle uint32

// MeshData is CPU-side triangle geometry. Indices are triangle lists into Vertices.
type MeshData struct {
	Kind     string // "cube", "plane", "sphere" or empty for custom geometry
	Size     []float32
	Vertices []rl.Vector3
	Indices  []uint16
}

// BoundingBox returns the axis-aligned bounds of the vertices.
// It reports false when the mesh has no usable (finite) vertices.
func (m *MeshData) BoundingBox() (rl.BoundingBox, bool) {
	if m == nil {
		return rl.BoundingBox{}, false
	}
	found := false
	var box rl.BoundingBox
	for _, v := range m.Vertices {
		if !finite(v) {
			continue
		}
		if !found {
			box = rl.BoundingBox{Min: v, Max: v}
			found = true
			continue
		}
		box.Min = rl.Vector3Min(box.Min, v)
		box.Max = rl.Vector3Max(box.Max, v)
	}
	return box, found
}

// HalfExtents returns half the size of the bounding box on each axis.
func (m *MeshData) HalfExtents() (rl.Vector3, bool) {
	box, ok := m.BoundingBox()
	if !ok {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(rl.Vector3Subtract(box.Max, box.Min), 0.5), true
}

// Triangles calls fn for every indexed triangle, skipping out-of-range indices.
func (m *MeshData) Triangles(fn func(a, b, c rl.Vector3)) {
	n := len(m.Vertices)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(a) >= n || int(b) >= n || int(c) >= n {
			continue
		}
		fn(m.Vertices[a], m.Vertices[b], m.Vertices[c])
	}
}

func finite(v rl.Vector3) bool {
	for _, f := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// MeshStore owns mesh data by handle. It is a plain lookup table and is not
// safe for concurrent mutation; the editor only touches it from the frame loop.
type MeshStore struct {
	meshes map[MeshHandle]*MeshData
	last   MeshHandle
}

func NewMeshStore() *MeshStore {
	return &MeshStore{meshes: make(map[MeshHandle]*MeshData)}
}

// Add stores mesh and returns its new handle.
func (s *MeshStore) Add(mesh *MeshData) MeshHandle {
	if s.meshes == nil {
		s.meshes = make(map[MeshHandle]*MeshData)
	}
	s.last++
	s.meshes[s.last] = mesh
	return s.last
}

// Mesh resolves a handle. Missing entries are reported, never an error.
func (s *MeshStore) Mesh(h MeshHandle) (*MeshData, bool) {
	if s == nil {
		return nil, false
	}
	m, ok := s.meshes[h]
	return m, ok && m != nil
}

func (s *MeshStore) Remove(h MeshHandle) {
	delete(s.meshes, h)
}

func (s *MeshStore) Len() int {
	return len(s.meshes)
}
