package game

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"sceneeditor/internal/camera"
	"sceneeditor/internal/config"
	"sceneeditor/internal/input"
	"sceneeditor/internal/picking"
	"sceneeditor/internal/selection"
	"sceneeditor/internal/ui"
	"sceneeditor/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultScenePath = "scene.json"

type Editor struct {
	cfg   *config.Config
	world *world.World

	Rig        *camera.Rig
	controller *camera.Controller

	Selection *selection.ActiveSelection
	router    *selection.Router
	picker    *picking.Picker

	input  input.State
	layout ui.Layout

	// Save feedback
	saveMsg     string
	saveMsgTime float64

	// Scene file hot-reload
	watcher      *world.Watcher
	savedModTime time.Time
}

func NewEditor(cfg *config.Config, w *world.World) *Editor {
	sel := &selection.ActiveSelection{}
	sel.Changed.AddListener(func(s *selection.ActiveSelection) {
		slog.Debug("selection changed", "entity", s.EntityID, "selected", s.HasSelection, "extent", s.Extent)
	})

	return &Editor{
		cfg:        cfg,
		world:      w,
		Rig:        camera.NewRig(w.CameraPosition, w.CameraFocus, cfg.Projection()),
		controller: camera.NewController(cfg.CameraSettings()),
		Selection:  sel,
		router:     selection.NewRouter(sel, w, w.Meshes),
		picker:     picking.NewPicker(w.Scene, w.Meshes),
	}
}

func (e *Editor) World() *world.World {
	return e.world
}

// SetWorld swaps in a freshly loaded world. Object ids are not stable across
// loads, so any selection is cleared.
func (e *Editor) SetWorld(w *world.World) {
	e.world = w
	e.picker = picking.NewPicker(w.Scene, w.Meshes)
	e.router.Scene = w
	e.router.Meshes = w.Meshes
	if e.Selection.HasSelection {
		e.Selection.Deselect()
	}
}

// WatchScene reloads the scene whenever w reports an outside change.
func (e *Editor) WatchScene(w *world.Watcher) {
	e.watcher = w
}

func (e *Editor) reloadScene() {
	path := e.scenePath()
	if info, err := os.Stat(path); err == nil && info.ModTime().Equal(e.savedModTime) {
		// our own save
		return
	}
	w, err := world.Load(path)
	if err != nil {
		slog.Warn("reload scene", "path", path, "error", err)
		return
	}
	e.SetWorld(w)
	slog.Info("scene reloaded", "path", path, "objects", len(w.Scene.GameObjects))
}

func (e *Editor) scenePath() string {
	if e.cfg.ScenePath == "" {
		return defaultScenePath
	}
	return e.cfg.ScenePath
}

func (e *Editor) Rigs() []*camera.Rig {
	return []*camera.Rig{e.Rig}
}

func (e *Editor) viewport() camera.Viewport {
	return camera.Viewport{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
}

// Update runs one frame: input collection, picking, selection routing, then
// the camera.
func (e *Editor) Update() {
	if e.watcher != nil && e.watcher.Changed() {
		e.reloadScene()
	}
	input.Collect(&e.input)

	vp := e.viewport()
	e.layout = ui.NewLayout(vp.Width, vp.Height, e.cfg.HierarchyWidth, e.cfg.InspectorWidth)
	overUI := e.layout.PointerOver(e.input.Cursor)
	selectButton := e.cfg.SelectButton.MouseButton

	// A click completes on release, like a GUI button
	if e.input.Buttons.JustReleased(selectButton) && !overUI {
		ray := rl.GetScreenToWorldRay(e.input.Cursor, e.Rig.Camera3D())
		e.picker.Emit(&e.router.Events, ray)
	}
	if rl.IsKeyPressed(rl.KeyEscape) && e.Selection.HasSelection {
		e.router.Events.Deselects.Push(selection.Pick{Target: e.Selection.EntityID})
	}

	// the completed click is the primary press; a miss leaves no pick and deselects
	e.router.Update(selection.Frame{
		PointerOverUI: overUI,
		PrimaryHeld:   e.input.Buttons.JustReleased(selectButton),
	})

	// Ctrl+S: save scene
	if (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)) && rl.IsKeyPressed(rl.KeyS) {
		e.saveScene()
	}

	if vp.Height > 0 {
		e.Rig.Projection.Aspect = vp.Width / vp.Height
	}
	e.controller.Update(&e.input, vp, e.Rigs())
}

// EndFrame drops whatever input the frame did not consume.
func (e *Editor) EndFrame() {
	e.input.EndFrame()
}

func (e *Editor) saveScene() {
	path := e.scenePath()
	e.world.CameraPosition = e.Rig.Position
	e.world.CameraFocus = e.Rig.Orbit.Focus
	if err := e.world.Save(path); err != nil {
		slog.Error("save scene", "path", path, "error", err)
		e.saveMsg = fmt.Sprintf("Save failed: %v", err)
	} else {
		slog.Info("scene saved", "path", path)
		e.saveMsg = "Scene saved!"
		if info, err := os.Stat(path); err == nil {
			e.savedModTime = info.ModTime()
		}
	}
	e.saveMsgTime = rl.GetTime()
}

// Draw3D renders the scene and then the selection highlight on top of it.
func (e *Editor) Draw3D() {
	rl.BeginMode3D(e.Rig.Camera3D())
	rl.DrawGrid(20, 1)
	e.world.Draw()

	if h, ok := e.Selection.Highlight(); ok {
		// Force flush so the highlight ignores scene depth
		rl.DrawRenderBatchActive()
		rl.DisableDepthTest()
		drawHighlight(h)
		rl.DrawRenderBatchActive()
		rl.EnableDepthTest()
	}
	rl.EndMode3D()
}

func (e *Editor) DrawUI() {
	e.drawHierarchy(e.layout.Hierarchy())
	e.drawInspector(e.layout.Inspector())

	if e.saveMsg != "" && rl.GetTime()-e.saveMsgTime < 2 {
		x := int32(e.layout.Hierarchy().Width) + 12
		drawTextEx(editorFont, e.saveMsg, x, 12, 18, colorAccentLight)
	}
	rl.DrawFPS(int32(e.layout.Inspector().X)-90, int32(rl.GetScreenHeight())-26)
}
