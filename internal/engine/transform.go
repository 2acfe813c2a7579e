package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// IdentityTransform is the origin with no rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: rl.Vector3One()}
}

// FromXYZ returns an identity transform translated to (x, y, z).
func FromXYZ(x, y, z float32) Transform {
	t := IdentityTransform()
	t.Position = rl.Vector3{X: x, Y: y, Z: z}
	return t
}

// Quaternion converts the Euler rotation (applied X, then Y, then Z) into a quaternion.
func (t Transform) Quaternion() rl.Quaternion {
	return rl.QuaternionFromEuler(t.Rotation.X*rl.Deg2rad, t.Rotation.Y*rl.Deg2rad, t.Rotation.Z*rl.Deg2rad)
}

// Up returns the local +Y axis in world space.
func (t Transform) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, t.Quaternion())
}

// Forward returns the local -Z axis in world space.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, t.Quaternion())
}

// Right returns the local +X axis in world space.
func (t Transform) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, t.Quaternion())
}
