package game

import (
	"sceneeditor/internal/ui"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawInspector shows read-only details of the active selection.
func (e *Editor) drawInspector(panel rl.Rectangle) {
	if panel.Width <= 0 {
		return
	}
	drawPanel(panel, "Inspector")

	sections := ui.Inspect(e.Selection)
	x := panel.X + 12
	y := panel.Y + panelHeaderH
	w := panel.Width - 24

	if len(sections) == 0 {
		drawTextEx(editorFont, "Nothing selected", int32(x), int32(y), 16, colorTextMuted)
		return
	}

	for _, section := range sections {
		drawTextEx(editorFontBold, section.Title, int32(x), int32(y), 17, colorAccentLight)
		y += 24
		for _, group := range section.Groups {
			if group.Title != "" {
				drawTextEx(editorFont, group.Title, int32(x), int32(y), 15, colorTextSecondary)
				y += 20
			}
			fieldW := w / float32(len(group.Fields))
			for i, f := range group.Fields {
				gui.Label(rl.Rectangle{X: x + float32(i)*fieldW, Y: y, Width: fieldW, Height: 18}, f.Label+": "+f.Value)
			}
			y += 24
		}
		y += 8
	}
}
