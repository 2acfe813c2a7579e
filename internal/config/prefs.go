package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sceneeditor/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prefs holds editor preferences saved between sessions. The selection is
// deliberately not part of it.
type Prefs struct {
	WindowWidth    int           `json:"windowWidth"`
	WindowHeight   int           `json:"windowHeight"`
	CameraFocus    rl.Vector3    `json:"cameraFocus"`
	CameraRadius   float32       `json:"cameraRadius"`
	CameraRotation rl.Quaternion `json:"cameraRotation"`
	HierarchyWidth float32       `json:"hierarchyWidth"`
	InspectorWidth float32       `json:"inspectorWidth"`
}

// LoadPrefs reads prefs from path. A missing file is not an error and
// returns nil prefs.
func LoadPrefs(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	return &prefs, nil
}

func (p *Prefs) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// CaptureRig records the orbit pose of rig.
func (p *Prefs) CaptureRig(rig *camera.Rig) {
	p.CameraFocus = rig.Orbit.Focus
	p.CameraRadius = rig.Orbit.Radius
	p.CameraRotation = rig.Rotation
}

// ApplyRig restores a saved orbit pose, keeping the radius at or above
// minRadius. Prefs without a usable pose leave the rig untouched.
func (p *Prefs) ApplyRig(rig *camera.Rig, minRadius float32) {
	if p == nil || p.CameraRadius <= 0 {
		return
	}
	q := p.CameraRotation
	if q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0 {
		return
	}
	rig.Orbit.Focus = p.CameraFocus
	rig.Orbit.Radius = max(p.CameraRadius, minRadius)
	rig.Rotation = rl.QuaternionNormalize(q)
	rig.UpdatePosition()
}

// ApplyConfig lets saved window and panel sizes override the defaults.
func (p *Prefs) ApplyConfig(c *Config) {
	if p == nil {
		return
	}
	if p.WindowWidth > 0 && p.WindowHeight > 0 {
		c.WindowWidth = p.WindowWidth
		c.WindowHeight = p.WindowHeight
	}
	if p.HierarchyWidth > 0 {
		c.HierarchyWidth = p.HierarchyWidth
	}
	if p.InspectorWidth > 0 {
		c.InspectorWidth = p.InspectorWidth
	}
}
