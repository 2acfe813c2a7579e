package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Layout is the screen space taken by the editor panels this frame.
type Layout struct {
	Panels []rl.Rectangle
}

// NewLayout docks a hierarchy panel on the left and an inspector on the right.
// Widths are clamped so the two panels never overlap.
func NewLayout(screenW, screenH, hierarchyW, inspectorW float32) Layout {
	hierarchyW = rl.Clamp(hierarchyW, 0, screenW/2)
	inspectorW = rl.Clamp(inspectorW, 0, screenW/2)
	return Layout{Panels: []rl.Rectangle{
		{X: 0, Y: 0, Width: hierarchyW, Height: screenH},
		{X: screenW - inspectorW, Y: 0, Width: inspectorW, Height: screenH},
	}}
}

func (l Layout) Hierarchy() rl.Rectangle { return l.Panels[0] }
func (l Layout) Inspector() rl.Rectangle { return l.Panels[1] }

// PointerOver reports whether p lies inside any panel.
func (l Layout) PointerOver(p rl.Vector2) bool {
	for _, r := range l.Panels {
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		if p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height {
			return true
		}
	}
	return false
}
