// Package camera implements the editor's turntable orbit/pan/zoom camera.
package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PanOrbit is the orbit state of one camera rig.
type PanOrbit struct {
	// Focus is the point the camera orbits around. Panning moves it.
	Focus rl.Vector3
	// Radius is the distance from Focus to the camera. Always > 0.
	Radius float32
	// UpsideDown is set when the camera's up vector points below the horizon,
	// so horizontal orbit input can be inverted.
	UpsideDown bool
}

func DefaultPanOrbit() PanOrbit {
	return PanOrbit{Radius: 5.0}
}

// Projection holds the parameters pan scaling depends on.
type Projection struct {
	FovY         float32 // vertical field of view in radians
	Aspect       float32
	Orthographic bool
}

// Rig is a camera with its orbit state. Position is always derived from
// Focus, Radius and Rotation; it is stored only so renderers can read it.
type Rig struct {
	Orbit      PanOrbit
	Position   rl.Vector3
	Rotation   rl.Quaternion
	Projection Projection
}

// NewRig places a camera at position looking at focus with world +Y up.
// The orbit radius becomes the distance between the two.
func NewRig(position, focus rl.Vector3, proj Projection) *Rig {
	r := &Rig{
		Orbit:      PanOrbit{Focus: focus, Radius: rl.Vector3Distance(position, focus)},
		Rotation:   lookRotation(rl.Vector3Subtract(position, focus)),
		Projection: proj,
	}
	if r.Orbit.Radius <= 0 {
		r.Orbit.Radius = DefaultPanOrbit().Radius
	}
	r.UpdatePosition()
	return r
}

// lookRotation returns the yaw-then-pitch rotation whose local +Z axis points
// along back (the direction from the focus to the camera).
func lookRotation(back rl.Vector3) rl.Quaternion {
	if rl.Vector3Length(back) == 0 {
		return rl.QuaternionIdentity()
	}
	back = rl.Vector3Normalize(back)
	yaw := math32.Atan2(back.X, back.Z)
	pitch := -math32.Asin(rl.Clamp(back.Y, -1, 1))
	return rl.QuaternionMultiply(
		rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, yaw),
		rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, pitch),
	)
}

// UpdatePosition rederives the camera position as focus + rotation*(0,0,radius).
func (r *Rig) UpdatePosition() {
	offset := rl.Vector3RotateByQuaternion(rl.Vector3{Z: r.Orbit.Radius}, r.Rotation)
	r.Position = rl.Vector3Add(r.Orbit.Focus, offset)
}

// Up returns the camera's local +Y axis in world space.
func (r *Rig) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, r.Rotation)
}

// Right returns the camera's local +X axis in world space.
func (r *Rig) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, r.Rotation)
}

// Forward returns the viewing direction (local -Z) in world space.
func (r *Rig) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, r.Rotation)
}

// Camera3D converts the rig into a raylib camera for rendering and picking.
func (r *Rig) Camera3D() rl.Camera3D {
	cam := rl.Camera3D{
		Position:   r.Position,
		Target:     rl.Vector3Add(r.Position, r.Forward()),
		Up:         r.Up(),
		Fovy:       r.Projection.FovY * rl.Rad2deg,
		Projection: rl.CameraPerspective,
	}
	if r.Projection.Orthographic {
		cam.Projection = rl.CameraOrthographic
		cam.Fovy = r.Orbit.Radius
	}
	return cam
}
