package assets

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GenCube builds an axis-aligned box centred on the origin.
func GenCube(width, height, length float32) *MeshData {
	x, y, z := width/2, height/2, length/2
	return &MeshData{
		Kind: "cube",
		Size: []float32{width, height, length},
		Vertices: []rl.Vector3{
			{X: -x, Y: -y, Z: -z},
			{X: x, Y: -y, Z: -z},
			{X: x, Y: y, Z: -z},
			{X: -x, Y: y, Z: -z},
			{X: -x, Y: -y, Z: z},
			{X: x, Y: -y, Z: z},
			{X: x, Y: y, Z: z},
			{X: -x, Y: y, Z: z},
		},
		// Counter-clockwise seen from outside
		Indices: []uint16{
			4, 5, 6, 4, 6, 7, // +Z
			1, 0, 3, 1, 3, 2, // -Z
			5, 1, 2, 5, 2, 6, // +X
			0, 4, 7, 0, 7, 3, // -X
			7, 6, 2, 7, 2, 3, // +Y
			0, 1, 5, 0, 5, 4, // -Y
		},
	}
}

// GenPlane builds a flat quad on the XZ plane facing +Y.
func GenPlane(width, length float32) *MeshData {
	x, z := width/2, length/2
	return &MeshData{
		Kind: "plane",
		Size: []float32{width, length},
		Vertices: []rl.Vector3{
			{X: -x, Z: -z},
			{X: x, Z: -z},
			{X: x, Z: z},
			{X: -x, Z: z},
		},
		Indices: []uint16{3, 2, 1, 3, 1, 0},
	}
}

// GenSphere builds a UV sphere. rings and slices are clamped to at least 3.
func GenSphere(radius float32, rings, slices int) *MeshData {
	rings = max(rings, 3)
	slices = max(slices, 3)

	m := &MeshData{Kind: "sphere", Size: []float32{radius}}
	for i := 0; i <= rings; i++ {
		theta := math32.Pi * float32(i) / float32(rings)
		for j := 0; j <= slices; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(slices)
			m.Vertices = append(m.Vertices, rl.Vector3{
				X: radius * math32.Sin(theta) * math32.Cos(phi),
				Y: radius * math32.Cos(theta),
				Z: radius * math32.Sin(theta) * math32.Sin(phi),
			})
		}
	}

	stride := slices + 1
	for i := 0; i < rings; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i*stride + j)
			b := uint16((i+1)*stride + j)
			m.Indices = append(m.Indices, a, a+1, b, b, a+1, b+1)
		}
	}
	return m
}

// GenMesh builds one of the named primitive meshes used by scene files.
func GenMesh(kind string, size []float32) (*MeshData, error) {
	switch kind {
	case "cube":
		if len(size) < 3 {
			return nil, fmt.Errorf("cube needs 3 size values, got %d", len(size))
		}
		return GenCube(size[0], size[1], size[2]), nil
	case "plane":
		if len(size) < 2 {
			return nil, fmt.Errorf("plane needs 2 size values, got %d", len(size))
		}
		return GenPlane(size[0], size[1]), nil
	case "sphere":
		if len(size) < 1 {
			return nil, fmt.Errorf("sphere needs a radius")
		}
		return GenSphere(size[0], 16, 16), nil
	default:
		return nil, fmt.Errorf("unknown mesh kind %q", kind)
	}
}
