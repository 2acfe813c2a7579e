package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sceneeditor/internal/assets"
	"sceneeditor/internal/components"
	"sceneeditor/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnknownMesh = errors.New("unknown mesh")

// --- JSON types ---

type SceneFile struct {
	Camera  *CameraDef  `json:"camera,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type CameraDef struct {
	Position [3]float32 `json:"position"`
	Focus    [3]float32 `json:"focus"`
}

type ObjectDef struct {
	Name     string     `json:"name,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"`
	Scale    [3]float32 `json:"scale"`
	// Parent is the index of the parent object in Objects.
	Parent     *int              `json:"parent,omitempty"`
	Components []json.RawMessage `json:"components,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh"`
	MeshSize []float32 `json:"meshSize,omitempty"`
	Color    string    `json:"color"`
}

type pointLightDef struct {
	Type      string  `json:"type"`
	Color     string  `json:"color,omitempty"`
	Intensity float32 `json:"intensity,omitempty"`
	Radius    float32 `json:"radius,omitempty"`
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// Load reads a scene file into a new World.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	w := New()
	if err := w.apply(sf); err != nil {
		return nil, err
	}
	w.Scene.Start()
	return w, nil
}

func (w *World) apply(sf SceneFile) error {
	if sf.Camera != nil {
		w.CameraPosition = vec3(sf.Camera.Position)
		w.CameraFocus = vec3(sf.Camera.Focus)
	}

	objects := make([]*engine.GameObject, len(sf.Objects))
	for i, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.Rotation = vec3(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				continue
			}

			switch header.Type {
			case "MeshRenderer":
				if err := w.loadMeshRenderer(g, raw); err != nil {
					return fmt.Errorf("object %d (%q): %w", i, objDef.Name, err)
				}
			case "PointLight":
				loadPointLight(g, raw)
			}
		}

		objects[i] = g
		w.Scene.AddGameObject(g)
	}

	for i, objDef := range sf.Objects {
		if objDef.Parent == nil {
			continue
		}
		p := *objDef.Parent
		if p < 0 || p >= len(objects) || p == i {
			return fmt.Errorf("object %d (%q): invalid parent index %d", i, objDef.Name, p)
		}
		if isAncestor(objects[i], objects[p]) {
			return fmt.Errorf("object %d (%q): invalid parent index %d: cycle", i, objDef.Name, p)
		}
		objects[p].AddChild(objects[i])
	}
	return nil
}

// isAncestor reports whether a is g or one of its parents.
func isAncestor(a, g *engine.GameObject) bool {
	for ; g != nil; g = g.Parent {
		if g == a {
			return true
		}
	}
	return false
}

func (w *World) loadMeshRenderer(g *engine.GameObject, raw json.RawMessage) error {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("parse mesh renderer: %w", err)
	}
	mesh, err := assets.GenMesh(def.Mesh, def.MeshSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownMesh, err)
	}
	w.AddMesh(g, mesh, assets.LookupColor(def.Color))
	return nil
}

func loadPointLight(g *engine.GameObject, raw json.RawMessage) {
	var def pointLightDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	light := components.NewPointLight()
	if def.Color != "" {
		light.Color = assets.LookupColor(def.Color)
	}
	if def.Intensity > 0 {
		light.Intensity = def.Intensity
	}
	if def.Radius > 0 {
		light.Radius = def.Radius
	}
	g.AddComponent(light)
}

// --- Saving ---

// Save writes the world to path as an indented scene file.
func (w *World) Save(path string) error {
	data, err := json.MarshalIndent(w.sceneFile(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func (w *World) sceneFile() SceneFile {
	sf := SceneFile{
		Camera: &CameraDef{Position: arr3(w.CameraPosition), Focus: arr3(w.CameraFocus)},
	}

	index := make(map[*engine.GameObject]int, len(w.Scene.GameObjects))
	for i, g := range w.Scene.GameObjects {
		index[g] = i
	}

	for _, g := range w.Scene.GameObjects {
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr3(g.Transform.Position),
			Rotation: arr3(g.Transform.Rotation),
			Scale:    arr3(g.Transform.Scale),
		}
		if g.Parent != nil {
			if p, ok := index[g.Parent]; ok {
				objDef.Parent = &p
			}
		}

		for _, c := range g.Components() {
			if raw := w.serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}
	return sf
}

func (w *World) serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.MeshRenderer:
		data, ok := w.Meshes.Mesh(comp.Mesh)
		if !ok || data.Kind == "" {
			// custom geometry has no file representation
			return nil
		}
		def = meshRendererDef{
			Type:     "MeshRenderer",
			Mesh:     data.Kind,
			MeshSize: data.Size,
			Color:    assets.ColorName(comp.Color),
		}

	case *components.PointLight:
		def = pointLightDef{
			Type:      "PointLight",
			Color:     assets.ColorName(comp.Color),
			Intensity: comp.Intensity,
			Radius:    comp.Radius,
		}

	default:
		return nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
