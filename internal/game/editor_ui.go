package game

import (
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var editorFont rl.Font     // main UI font
var editorFontBold rl.Font // headers
var editorFontsLoaded bool

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder    = rl.NewColor(255, 255, 255, 13)
	colorSelection = rl.NewColor(108, 99, 255, 60)

	// Highlight overlay
	colorHighlightBox = rl.Yellow
	colorAxisUp       = rl.Green
	colorAxisForward  = rl.Blue
	colorAxisRight    = rl.Red
)

func loadFont(path string) rl.Font {
	if _, err := os.Stat(path); err != nil {
		slog.Warn("font not loaded, using default", "path", path, "error", err)
		return rl.Font{}
	}
	font := rl.LoadFontEx(path, 48, nil)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// initRayguiStyle sets up the dark theme. Fonts are optional.
func initRayguiStyle() {
	if !editorFontsLoaded {
		editorFontsLoaded = true
		editorFont = loadFont("assets/fonts/Outfit-Regular.ttf")
		editorFontBold = loadFont("assets/fonts/Outfit-Bold.ttf")
		if editorFont.Texture.ID > 0 {
			gui.SetFont(editorFont)
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawTextEx draws text using the specified font scaled to the requested size
func drawTextEx(font rl.Font, text string, x, y int32, size float32, color rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 0, color)
	} else {
		rl.DrawText(text, x, y, int32(size), color)
	}
}

// drawPanel draws a panel background with a border on its inner edge.
func drawPanel(r rl.Rectangle, title string) {
	if r.Width <= 0 {
		return
	}
	rl.DrawRectangleRec(r, colorBgPanel)
	rl.DrawRectangleLinesEx(r, 1, colorBorder)
	drawTextEx(editorFontBold, title, int32(r.X)+12, int32(r.Y)+8, 18, colorTextSecondary)
}
