package game

import (
	"sceneeditor/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHighlight draws the selection box and the object's local up, forward
// and right axes as unit rays. Call inside BeginMode3D/EndMode3D.
func drawHighlight(h selection.Highlight) {
	drawRotatedBoxWires(h.Center, h.Size, h.Rotation, colorHighlightBox)

	rl.DrawLine3D(h.Center, rl.Vector3Add(h.Center, h.Up), colorAxisUp)
	rl.DrawLine3D(h.Center, rl.Vector3Add(h.Center, h.Forward), colorAxisForward)
	rl.DrawLine3D(h.Center, rl.Vector3Add(h.Center, h.Right), colorAxisRight)
}

// drawRotatedBoxWires draws a wireframe box with rotation applied
func drawRotatedBoxWires(center, size rl.Vector3, rotation rl.Quaternion, color rl.Color) {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	// 8 corners in local space
	corners := [8]rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}

	for i := range corners {
		corners[i] = rl.Vector3Add(rl.Vector3RotateByQuaternion(corners[i], rotation), center)
	}

	// Back face
	rl.DrawLine3D(corners[0], corners[1], color)
	rl.DrawLine3D(corners[1], corners[2], color)
	rl.DrawLine3D(corners[2], corners[3], color)
	rl.DrawLine3D(corners[3], corners[0], color)
	// Front face
	rl.DrawLine3D(corners[4], corners[5], color)
	rl.DrawLine3D(corners[5], corners[6], color)
	rl.DrawLine3D(corners[6], corners[7], color)
	rl.DrawLine3D(corners[7], corners[4], color)
	// Connecting edges
	rl.DrawLine3D(corners[0], corners[4], color)
	rl.DrawLine3D(corners[1], corners[5], color)
	rl.DrawLine3D(corners[2], corners[6], color)
	rl.DrawLine3D(corners[3], corners[7], color)
}
