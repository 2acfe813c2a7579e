package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// ParseMouseButton maps "left", "right" or "middle" to a button.
func ParseMouseButton(name string) (MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "primary":
		return MouseLeft, nil
	case "right", "secondary":
		return MouseRight, nil
	case "middle", "tertiary":
		return MouseMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

func (b MouseButton) valid() bool {
	return b >= 0 && b < mouseButtonCount
}

// ButtonInput tracks held buttons plus the press/release edges of the current frame.
type ButtonInput struct {
	pressed      [mouseButtonCount]bool
	justPressed  [mouseButtonCount]bool
	justReleased [mouseButtonCount]bool
}

func (in *ButtonInput) Press(b MouseButton) {
	if !b.valid() {
		return
	}
	if !in.pressed[b] {
		in.justPressed[b] = true
	}
	in.pressed[b] = true
}

func (in *ButtonInput) Release(b MouseButton) {
	if !b.valid() {
		return
	}
	if in.pressed[b] {
		in.justReleased[b] = true
	}
	in.pressed[b] = false
}

func (in *ButtonInput) Pressed(b MouseButton) bool {
	return b.valid() && in.pressed[b]
}

func (in *ButtonInput) JustPressed(b MouseButton) bool {
	return b.valid() && in.justPressed[b]
}

func (in *ButtonInput) JustReleased(b MouseButton) bool {
	return b.valid() && in.justReleased[b]
}

// ClearEdges forgets this frame's press/release edges; held state persists.
func (in *ButtonInput) ClearEdges() {
	in.justPressed = [mouseButtonCount]bool{}
	in.justReleased = [mouseButtonCount]bool{}
}

// MouseMotion is one relative pointer movement in pixels.
type MouseMotion struct {
	Delta rl.Vector2
}

// MouseWheel is one scroll step; Y is positive when scrolling away from the user.
type MouseWheel struct {
	X, Y float32
}

// State is the aggregated mouse input of one frame.
type State struct {
	Buttons ButtonInput
	Motion  Queue[MouseMotion]
	Scroll  Queue[MouseWheel]
	Cursor  rl.Vector2
}

// EndFrame discards unread events and button edges so nothing leaks into the next frame.
func (s *State) EndFrame() {
	s.Motion.Clear()
	s.Scroll.Clear()
	s.Buttons.ClearEdges()
}
