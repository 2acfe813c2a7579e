// Package game hosts the editor: it owns the raylib window and drives the
// selection and camera systems once per frame.
package game

import (
	"fmt"
	"log/slog"

	"sceneeditor/internal/camera"
	"sceneeditor/internal/config"
	"sceneeditor/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config *config.Config
	Editor *Editor
	prefs  *config.Prefs
}

func New(cfg *config.Config, w *world.World, prefs *config.Prefs) *Game {
	prefs.ApplyConfig(cfg)
	return &Game{
		Config: cfg,
		Editor: NewEditor(cfg, w),
		prefs:  prefs,
	}
}

// Run opens the window and blocks until it is closed. It fails before the
// first frame if the camera has nothing to drive.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.Config.WindowWidth), int32(g.Config.WindowHeight), g.Config.WindowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.TargetFPS)
	// Escape clears the selection instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	if err := camera.Validate(g.Editor.viewport(), g.Editor.Rigs()); err != nil {
		return fmt.Errorf("camera setup: %w", err)
	}

	if g.Config.ScenePath != "" {
		watcher, err := world.Watch(g.Config.ScenePath)
		if err != nil {
			slog.Warn("scene hot-reload disabled", "error", err)
		} else {
			defer watcher.Close()
			g.Editor.WatchScene(watcher)
		}
	}

	g.prefs.ApplyRig(g.Editor.Rig, g.Config.MinRadius)
	initRayguiStyle()
	w := g.Editor.World()
	slog.Info("editor started", "objects", len(w.Scene.GameObjects), "meshes", w.Meshes.Len())

	for !rl.WindowShouldClose() {
		g.Editor.Update()
		g.Draw()
	}

	g.savePrefs()
	slog.Info("editor closed")
	return nil
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBgDark)

	g.Editor.Draw3D()
	g.Editor.DrawUI()

	rl.EndDrawing()
	g.Editor.EndFrame()
}
