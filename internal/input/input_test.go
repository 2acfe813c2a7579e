package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDrainEmpties(t *testing.T) {
	var q Queue[int]
	assert.True(t, q.IsEmpty())

	q.Push(1)
	q.Push(2)
	assert.Equal(t, 2, q.Len())

	assert.Equal(t, []int{1, 2}, q.Drain())
	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.Drain())
}

func TestQueueClearDiscardsBacklog(t *testing.T) {
	var q Queue[string]
	q.Push("stale")
	q.Clear()
	q.Push("fresh")
	assert.Equal(t, []string{"fresh"}, q.Drain())
}

func TestButtonEdges(t *testing.T) {
	var b ButtonInput

	b.Press(MouseRight)
	assert.True(t, b.Pressed(MouseRight))
	assert.True(t, b.JustPressed(MouseRight))
	assert.False(t, b.JustReleased(MouseRight))

	b.ClearEdges()
	b.Press(MouseRight)
	assert.True(t, b.Pressed(MouseRight))
	assert.False(t, b.JustPressed(MouseRight), "holding is not a new press")

	b.Release(MouseRight)
	assert.False(t, b.Pressed(MouseRight))
	assert.True(t, b.JustReleased(MouseRight))

	b.ClearEdges()
	b.Release(MouseRight)
	assert.False(t, b.JustReleased(MouseRight), "releasing an unheld button is not an edge")
}

func TestButtonOutOfRangeIgnored(t *testing.T) {
	var b ButtonInput
	b.Press(MouseButton(42))
	assert.False(t, b.Pressed(MouseButton(42)))
	assert.False(t, b.Pressed(MouseButton(-1)))
}

func TestParseMouseButton(t *testing.T) {
	tests := map[string]MouseButton{
		"left":      MouseLeft,
		"Right":     MouseRight,
		" middle ":  MouseMiddle,
		"secondary": MouseRight,
		"tertiary":  MouseMiddle,
	}
	for name, want := range tests {
		got, err := ParseMouseButton(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseMouseButton("thumb")
	assert.Error(t, err)
	assert.Equal(t, "middle", MouseMiddle.String())
}

func TestStateEndFrame(t *testing.T) {
	var s State
	s.Buttons.Press(MouseLeft)
	s.Motion.Push(MouseMotion{Delta: rl.Vector2{X: 3}})
	s.Scroll.Push(MouseWheel{Y: 1})

	s.EndFrame()

	assert.True(t, s.Motion.IsEmpty())
	assert.True(t, s.Scroll.IsEmpty())
	assert.True(t, s.Buttons.Pressed(MouseLeft))
	assert.False(t, s.Buttons.JustPressed(MouseLeft))
}
