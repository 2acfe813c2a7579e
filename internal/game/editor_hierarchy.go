package game

import (
	"sceneeditor/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hierarchyItemH  = 22
	hierarchyIndent = 14
	panelHeaderH    = 32
)

// drawHierarchy draws the scene tree. Clicking a row selects that object.
func (e *Editor) drawHierarchy(panel rl.Rectangle) {
	if panel.Width <= 0 {
		return
	}
	drawPanel(panel, "Hierarchy")

	rows := ui.Hierarchy(e.world.Scene, e.Selection, e.cfg.HierarchyMaxDepth)
	mousePos := e.input.Cursor
	clicked := e.input.Buttons.JustPressed(e.cfg.SelectButton.MouseButton)

	top := int32(panel.Y) + panelHeaderH
	rl.BeginScissorMode(int32(panel.X), top, int32(panel.Width), int32(panel.Height)-panelHeaderH)
	defer rl.EndScissorMode()

	for i, row := range rows {
		item := rl.Rectangle{
			X:      panel.X,
			Y:      float32(top + int32(i)*hierarchyItemH),
			Width:  panel.Width,
			Height: hierarchyItemH,
		}
		if item.Y > panel.Y+panel.Height {
			break
		}

		hovered := mousePos.X >= item.X && mousePos.X < item.X+item.Width &&
			mousePos.Y >= item.Y && mousePos.Y < item.Y+item.Height

		switch {
		case row.Selected:
			rl.DrawRectangleRec(item, colorSelection)
			rl.DrawRectangle(int32(item.X), int32(item.Y), 3, hierarchyItemH, colorAccent) // Left accent bar
		case hovered:
			rl.DrawRectangleRec(item, colorBgHover)
		}

		x := int32(item.X) + 12 + int32(row.Depth)*hierarchyIndent
		if row.HasChildren {
			drawTextEx(editorFont, "v", x-10, int32(item.Y)+3, 14, colorTextMuted)
		}
		textColor := colorTextSecondary
		if row.Selected {
			textColor = colorTextPrimary
		}
		drawTextEx(editorFont, row.Name, x, int32(item.Y)+3, 16, textColor)

		if hovered && clicked {
			e.router.SelectFromUI(row.UID)
		}
	}
}
