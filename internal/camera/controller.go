package camera

import (
	"errors"

	"sceneeditor/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoCameraRig = errors.New("camera: no camera rig to control")
	ErrNoViewport  = errors.New("camera: no primary viewport")
)

// Viewport is the pixel size of the primary window.
type Viewport struct {
	Width, Height float32
}

func (v Viewport) size() rl.Vector2 {
	return rl.Vector2{X: v.Width, Y: v.Height}
}

type Settings struct {
	OrbitButton     input.MouseButton
	PanButton       input.MouseButton
	ZoomSensitivity float32
	MinRadius       float32
	// YawRange and PitchRange are the rotations, in radians, produced by
	// dragging across the full viewport width and height.
	YawRange   float32
	PitchRange float32
}

func DefaultSettings() Settings {
	return Settings{
		OrbitButton:     input.MouseRight,
		PanButton:       input.MouseMiddle,
		ZoomSensitivity: 0.2,
		MinRadius:       0.05,
		YawRange:        2 * math32.Pi,
		PitchRange:      math32.Pi,
	}
}

// Controller turns aggregated mouse input into orbit, pan and zoom updates.
type Controller struct {
	Settings Settings
}

func NewController(s Settings) *Controller {
	return &Controller{Settings: s}
}

// Validate checks the host preconditions: a usable primary viewport and at
// least one rig. A failure is a configuration error to surface at startup.
func Validate(viewport Viewport, rigs []*Rig) error {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return ErrNoViewport
	}
	if len(rigs) == 0 {
		return ErrNoCameraRig
	}
	return nil
}

// Update applies one frame of input to every rig and reports whether any rig
// moved. Only one mode runs per frame: orbit (orbit button held), else pan
// (pan button held), else zoom (non-zero scroll). Motion and scroll queues
// are always drained.
func (c *Controller) Update(in *input.State, viewport Viewport, rigs []*Rig) bool {
	var rotationMove, pan rl.Vector2
	var scroll float32

	if in.Buttons.Pressed(c.Settings.OrbitButton) {
		for _, ev := range in.Motion.Drain() {
			rotationMove = rl.Vector2Add(rotationMove, ev.Delta)
		}
	} else if in.Buttons.Pressed(c.Settings.PanButton) {
		for _, ev := range in.Motion.Drain() {
			pan = rl.Vector2Add(pan, ev.Delta)
		}
	}
	for _, ev := range in.Scroll.Drain() {
		scroll += ev.Y
	}
	orbitButtonChanged := in.Buttons.JustPressed(c.Settings.OrbitButton) ||
		in.Buttons.JustReleased(c.Settings.OrbitButton)

	// unused motion must not pile up for later frames
	in.Motion.Clear()

	changed := false
	for _, rig := range rigs {
		if orbitButtonChanged {
			// only re-evaluated on edges so crossing the horizon mid-drag doesn't flip input
			rig.Orbit.UpsideDown = rig.Up().Y <= 0
		}

		moved := false
		switch {
		case rl.Vector2LengthSqr(rotationMove) > 0:
			moved = true
			c.orbit(rig, rotationMove, viewport)
		case rl.Vector2LengthSqr(pan) > 0:
			moved = true
			c.pan(rig, pan, viewport)
		case scroll != 0:
			moved = true
			c.zoom(rig, scroll)
		}

		if moved {
			rig.UpdatePosition()
			changed = true
		}
	}
	return changed
}

func (c *Controller) orbit(rig *Rig, move rl.Vector2, viewport Viewport) {
	deltaX := move.X / viewport.Width * c.Settings.YawRange
	if rig.Orbit.UpsideDown {
		deltaX = -deltaX
	}
	deltaY := move.Y / viewport.Height * c.Settings.PitchRange

	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, -deltaX)
	pitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -deltaY)

	// yaw about the world axis, pitch about the local axis: turntable behaviour
	rig.Rotation = rl.QuaternionMultiply(yaw, rig.Rotation)
	rig.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(rig.Rotation, pitch))
}

func (c *Controller) pan(rig *Rig, pan rl.Vector2, viewport Viewport) {
	if p := rig.Projection; !p.Orthographic {
		scale := rl.Vector2Divide(rl.Vector2{X: p.FovY * p.Aspect, Y: p.FovY}, viewport.size())
		pan = rl.Vector2Multiply(pan, scale)
	}
	right := rl.Vector3Scale(rig.Right(), -pan.X)
	up := rl.Vector3Scale(rig.Up(), pan.Y)

	// proportional to distance so the focus tracks the cursor at any zoom
	translation := rl.Vector3Scale(rl.Vector3Add(right, up), rig.Orbit.Radius)
	rig.Orbit.Focus = rl.Vector3Add(rig.Orbit.Focus, translation)
}

func (c *Controller) zoom(rig *Rig, scroll float32) {
	rig.Orbit.Radius -= scroll * rig.Orbit.Radius * c.Settings.ZoomSensitivity
	rig.Orbit.Radius = max(rig.Orbit.Radius, c.Settings.MinRadius)
}
