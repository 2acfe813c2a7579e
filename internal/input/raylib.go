package input

import rl "github.com/gen2brain/raylib-go/raylib"

var raylibButtons = [mouseButtonCount]rl.MouseButton{
	MouseLeft:   rl.MouseLeftButton,
	MouseRight:  rl.MouseRightButton,
	MouseMiddle: rl.MouseMiddleButton,
}

// Collect polls raylib for this frame's mouse input. Call once per frame,
// before any consumer reads s.
func Collect(s *State) {
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		down := rl.IsMouseButtonDown(raylibButtons[b])
		switch {
		case down && !s.Buttons.Pressed(b):
			s.Buttons.Press(b)
		case !down && s.Buttons.Pressed(b):
			s.Buttons.Release(b)
		}
	}

	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		s.Motion.Push(MouseMotion{Delta: delta})
	}
	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		s.Scroll.Push(MouseWheel{X: wheel.X, Y: wheel.Y})
	}
	s.Cursor = rl.GetMousePosition()
}
