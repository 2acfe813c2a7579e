package picking

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	UID      uint64
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// raycastBox is a slab test against box. direction must be normalized.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			// parallel to this slab: miss unless the origin lies inside it
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		// origin inside the box
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: faceNormal(point, box), Distance: t}, true
}

func faceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case absF(point.X-box.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case absF(point.X-box.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case absF(point.Y-box.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case absF(point.Y-box.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case absF(point.Z-box.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	}
	return rl.Vector3{Z: 1}
}

func absF(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
