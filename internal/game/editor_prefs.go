package game

import (
	"log/slog"

	"sceneeditor/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// savePrefs saves the window and camera state to disk
func (g *Game) savePrefs() {
	prefs := config.Prefs{
		WindowWidth:    rl.GetScreenWidth(),
		WindowHeight:   rl.GetScreenHeight(),
		HierarchyWidth: g.Config.HierarchyWidth,
		InspectorWidth: g.Config.InspectorWidth,
	}
	prefs.CaptureRig(g.Editor.Rig)

	if err := prefs.Save(g.Config.PrefsPath); err != nil {
		slog.Warn("save editor prefs", "path", g.Config.PrefsPath, "error", err)
	}
}
