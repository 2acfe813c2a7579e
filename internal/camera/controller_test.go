package camera

import (
	"math"
	"testing"

	"sceneeditor/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

var testViewport = Viewport{Width: 100, Height: 100}

func levelRig(radius float32) *Rig {
	return NewRig(rl.Vector3{Z: radius}, rl.Vector3{}, Projection{FovY: math.Pi / 4, Aspect: 1})
}

func assertVec3(t *testing.T, want, got rl.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

func motion(s *input.State, x, y float32) {
	s.Motion.Push(input.MouseMotion{Delta: rl.Vector2{X: x, Y: y}})
}

func TestNewRigLooksAtFocus(t *testing.T) {
	pos := rl.Vector3{X: -2, Y: 2.5, Z: 5}
	rig := NewRig(pos, rl.Vector3{}, Projection{FovY: math.Pi / 4, Aspect: 16.0 / 9.0})

	assert.InDelta(t, math.Sqrt(35.25), rig.Orbit.Radius, eps)
	assertVec3(t, pos, rig.Position)
	assertVec3(t, rl.Vector3Normalize(rl.Vector3Negate(pos)), rig.Forward())
	assert.InDelta(t, 0, rig.Right().Y, eps, "no roll")
	assert.Greater(t, rig.Up().Y, float32(0))
}

func TestNewRigDegenerateRadius(t *testing.T) {
	rig := NewRig(rl.Vector3{}, rl.Vector3{}, Projection{})
	assert.Equal(t, DefaultPanOrbit().Radius, rig.Orbit.Radius)
}

func TestZoomIsMultiplicative(t *testing.T) {
	rig := levelRig(10)
	c := NewController(DefaultSettings())
	var in input.State
	in.Scroll.Push(input.MouseWheel{Y: 1})

	require.True(t, c.Update(&in, testViewport, []*Rig{rig}))

	assert.InDelta(t, 8.0, rig.Orbit.Radius, eps)
	assertVec3(t, rl.Vector3{Z: 8}, rig.Position)
}

func TestZoomScrollAccumulates(t *testing.T) {
	rig := levelRig(10)
	c := NewController(DefaultSettings())
	var in input.State
	in.Scroll.Push(input.MouseWheel{Y: 0.5})
	in.Scroll.Push(input.MouseWheel{Y: 0.5})

	c.Update(&in, testViewport, []*Rig{rig})

	assert.InDelta(t, 8.0, rig.Orbit.Radius, eps)
}

func TestZoomRadiusFloor(t *testing.T) {
	settings := DefaultSettings()
	rig := levelRig(10)
	c := NewController(settings)

	for _, scroll := range []float32{100, 3, 1, 1e6} {
		var in input.State
		in.Scroll.Push(input.MouseWheel{Y: scroll})
		c.Update(&in, testViewport, []*Rig{rig})

		assert.GreaterOrEqual(t, rig.Orbit.Radius, settings.MinRadius)
		assert.Greater(t, rig.Orbit.Radius, float32(0))
	}
	assert.InDelta(t, settings.MinRadius, rig.Orbit.Radius, 1e-6)
}

func TestZeroMotionIsNoOp(t *testing.T) {
	c := NewController(DefaultSettings())

	for _, button := range []input.MouseButton{input.MouseRight, input.MouseMiddle} {
		rig := levelRig(5)
		rig.Orbit.Focus = rl.Vector3{X: 1, Y: 2, Z: 3}
		rig.UpdatePosition()
		before := *rig

		var in input.State
		in.Buttons.Press(button)
		in.Buttons.ClearEdges()
		motion(&in, 0, 0)

		assert.False(t, c.Update(&in, testViewport, []*Rig{rig}), button.String())
		assert.Equal(t, before, *rig, button.String())
	}
}

func TestOrbitTakesPriority(t *testing.T) {
	rig := levelRig(5)
	c := NewController(DefaultSettings())
	var in input.State
	in.Buttons.Press(input.MouseRight)
	in.Buttons.Press(input.MouseMiddle)
	motion(&in, 25, 0)
	in.Scroll.Push(input.MouseWheel{Y: 1})

	c.Update(&in, testViewport, []*Rig{rig})

	assert.InDelta(t, 5, rig.Orbit.Radius, eps, "zoom skipped when orbiting")
	assertVec3(t, rl.Vector3{}, rig.Orbit.Focus, "pan skipped when orbiting")
	// a quarter of the viewport width is a quarter of a full turn
	assertVec3(t, rl.Vector3{X: -5}, rig.Position)
	assert.True(t, in.Scroll.IsEmpty())
}

func TestPanBeatsZoom(t *testing.T) {
	rig := levelRig(5)
	c := NewController(DefaultSettings())
	var in input.State
	in.Buttons.Press(input.MouseMiddle)
	motion(&in, 10, 0)
	in.Scroll.Push(input.MouseWheel{Y: 1})

	c.Update(&in, testViewport, []*Rig{rig})

	assert.InDelta(t, 5, rig.Orbit.Radius, eps)
	assert.NotEqual(t, float32(0), rig.Orbit.Focus.X)
}

func TestPanScalesWithFovViewportAndRadius(t *testing.T) {
	rig := levelRig(5)
	c := NewController(DefaultSettings())
	var in input.State
	in.Buttons.Press(input.MouseMiddle)
	motion(&in, 4, 0)
	motion(&in, 6, 0)
	motion(&in, 0, 10)

	c.Update(&in, testViewport, []*Rig{rig})

	step := float32(10 * (math.Pi / 4) / 100 * 5)
	assertVec3(t, rl.Vector3{X: -step, Y: step}, rig.Orbit.Focus)
	assertVec3(t, rl.Vector3{X: -step, Y: step, Z: 5}, rig.Position)
}

func TestPanOrthographicSkipsFovScaling(t *testing.T) {
	rig := levelRig(2)
	rig.Projection.Orthographic = true
	c := NewController(DefaultSettings())
	var in input.State
	in.Buttons.Press(input.MouseMiddle)
	motion(&in, 1, 0)

	c.Update(&in, testViewport, []*Rig{rig})

	assertVec3(t, rl.Vector3{X: -2}, rig.Orbit.Focus)
}

func TestMotionDrainedWithoutButtons(t *testing.T) {
	rig := levelRig(5)
	c := NewController(DefaultSettings())
	var in input.State
	motion(&in, 30, 30)

	assert.False(t, c.Update(&in, testViewport, []*Rig{rig}))
	assert.True(t, in.Motion.IsEmpty())
	assertVec3(t, rl.Vector3{Z: 5}, rig.Position)
}

func TestOrbitIsTurntable(t *testing.T) {
	rig := levelRig(5)
	c := NewController(DefaultSettings())

	for i := 0; i < 5; i++ {
		var in input.State
		in.Buttons.Press(input.MouseRight)
		motion(&in, 13, 7)
		c.Update(&in, testViewport, []*Rig{rig})

		assert.InDelta(t, 0, rig.Right().Y, eps, "yaw never tilts with pitch")
		assert.InDelta(t, rig.Orbit.Radius, rl.Vector3Distance(rig.Position, rig.Orbit.Focus), eps)
		assertVec3(t, rl.Vector3Add(rig.Orbit.Focus, rl.Vector3RotateByQuaternion(rl.Vector3{Z: rig.Orbit.Radius}, rig.Rotation)), rig.Position)
	}
}

func TestUpsideDownOnlyOnEdges(t *testing.T) {
	rig := levelRig(5)
	rig.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi)
	c := NewController(DefaultSettings())

	var in input.State
	in.Buttons.Press(input.MouseRight)
	in.Buttons.ClearEdges()
	c.Update(&in, testViewport, []*Rig{rig})
	assert.False(t, rig.Orbit.UpsideDown, "held without an edge does not re-evaluate")

	in.Buttons.Release(input.MouseRight)
	c.Update(&in, testViewport, []*Rig{rig})
	assert.True(t, rig.Orbit.UpsideDown, "release edge re-evaluates")
	in.EndFrame()

	// press, then drag back over the horizon while holding
	rig.Rotation = rl.QuaternionIdentity()
	in.Buttons.Press(input.MouseRight)
	c.Update(&in, testViewport, []*Rig{rig})
	assert.False(t, rig.Orbit.UpsideDown, "press edge re-evaluates")
	in.EndFrame()

	for i := 0; i < 2; i++ {
		motion(&in, 0, 40)
		c.Update(&in, testViewport, []*Rig{rig})
		in.EndFrame()
	}
	require.LessOrEqual(t, rig.Up().Y, float32(0), "camera is past the horizon")
	assert.False(t, rig.Orbit.UpsideDown, "no flip mid-hold")

	in.Buttons.Release(input.MouseRight)
	c.Update(&in, testViewport, []*Rig{rig})
	assert.True(t, rig.Orbit.UpsideDown)
}

func TestUpsideDownInvertsYaw(t *testing.T) {
	c := NewController(DefaultSettings())
	normal := levelRig(5)
	flipped := levelRig(5)
	flipped.Orbit.UpsideDown = true

	var in input.State
	in.Buttons.Press(input.MouseRight)
	in.Buttons.ClearEdges()
	motion(&in, -20, 0)
	c.Update(&in, testViewport, []*Rig{normal})

	motion(&in, 20, 0)
	c.Update(&in, testViewport, []*Rig{flipped})

	assertVec3(t, normal.Position, flipped.Position)
}

func TestUpdateAppliesToEveryRig(t *testing.T) {
	a, b := levelRig(10), levelRig(20)
	c := NewController(DefaultSettings())
	var in input.State
	in.Scroll.Push(input.MouseWheel{Y: 1})

	c.Update(&in, testViewport, []*Rig{a, b})

	assert.InDelta(t, 8, a.Orbit.Radius, eps)
	assert.InDelta(t, 16, b.Orbit.Radius, eps)
}

func TestValidate(t *testing.T) {
	rigs := []*Rig{levelRig(5)}

	assert.NoError(t, Validate(testViewport, rigs))
	assert.ErrorIs(t, Validate(testViewport, nil), ErrNoCameraRig)
	assert.ErrorIs(t, Validate(Viewport{}, rigs), ErrNoViewport)
}

func TestCamera3D(t *testing.T) {
	rig := levelRig(5)
	cam := rig.Camera3D()

	assertVec3(t, rl.Vector3{Z: 5}, cam.Position)
	assertVec3(t, rl.Vector3{Z: 4}, cam.Target)
	assertVec3(t, rl.Vector3{Y: 1}, cam.Up)
	assert.InDelta(t, 45, cam.Fovy, eps)
	assert.Equal(t, rl.CameraPerspective, cam.Projection)
}
