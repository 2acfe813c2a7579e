package picking

import (
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and half extents.
func NewAABBFromCenter(center, half rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// WorldBounds places the local box local with t and returns the axis-aligned
// box enclosing its eight transformed corners.
func WorldBounds(local AABB, t engine.Transform) AABB {
	rot := t.Quaternion()
	lo, hi := local.Min, local.Max

	var out AABB
	for i := 0; i < 8; i++ {
		c := lo
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		c = rl.Vector3Multiply(c, t.Scale)
		c = rl.Vector3Add(rl.Vector3RotateByQuaternion(c, rot), t.Position)
		if i == 0 {
			out = AABB{Min: c, Max: c}
			continue
		}
		out.Min = rl.Vector3Min(out.Min, c)
		out.Max = rl.Vector3Max(out.Max, c)
	}
	return out
}
