// Package config loads editor settings from the environment and persists
// per-user editor preferences.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"sceneeditor/internal/camera"
	"sceneeditor/internal/input"

	"github.com/kelseyhightower/envconfig"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prefix is prepended to every environment variable, e.g. EDITOR_WINDOW_WIDTH.
const Prefix = "EDITOR"

// Button is a mouse button decoded from "left", "right" or "middle".
type Button struct {
	input.MouseButton
}

func (b *Button) Decode(value string) error {
	mb, err := input.ParseMouseButton(value)
	if err != nil {
		return err
	}
	b.MouseButton = mb
	return nil
}

type Config struct {
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"720"`
	WindowTitle  string `envconfig:"WINDOW_TITLE" default:"Scene Editor"`
	TargetFPS    int32  `envconfig:"TARGET_FPS" default:"60"`

	ScenePath string `envconfig:"SCENE_PATH"`
	PrefsPath string `envconfig:"PREFS_PATH" default:".editor_prefs.json"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	FovY            float32 `envconfig:"FOV_Y" default:"45"` // degrees
	ZoomSensitivity float32 `envconfig:"ZOOM_SENSITIVITY" default:"0.2"`
	MinRadius       float32 `envconfig:"MIN_RADIUS" default:"0.05"`
	OrbitButton     Button  `envconfig:"ORBIT_BUTTON" default:"right"`
	PanButton       Button  `envconfig:"PAN_BUTTON" default:"middle"`
	SelectButton    Button  `envconfig:"SELECT_BUTTON" default:"left"`

	HierarchyMaxDepth int     `envconfig:"HIERARCHY_MAX_DEPTH" default:"32"`
	HierarchyWidth    float32 `envconfig:"HIERARCHY_WIDTH" default:"220"`
	InspectorWidth    float32 `envconfig:"INSPECTOR_WIDTH" default:"260"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the camera and window cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		errs = append(errs, fmt.Errorf("fov %v must be between 0 and 180 degrees", c.FovY))
	}
	if c.MinRadius <= 0 {
		errs = append(errs, fmt.Errorf("min radius %v must be positive", c.MinRadius))
	}
	if c.ZoomSensitivity < 0 {
		errs = append(errs, fmt.Errorf("zoom sensitivity %v must not be negative", c.ZoomSensitivity))
	}
	if c.OrbitButton == c.PanButton {
		errs = append(errs, fmt.Errorf("orbit and pan both use the %s button", c.OrbitButton))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func (c *Config) CameraSettings() camera.Settings {
	s := camera.DefaultSettings()
	s.OrbitButton = c.OrbitButton.MouseButton
	s.PanButton = c.PanButton.MouseButton
	s.ZoomSensitivity = c.ZoomSensitivity
	s.MinRadius = c.MinRadius
	return s
}

func (c *Config) Projection() camera.Projection {
	return camera.Projection{
		FovY:   c.FovY * rl.Deg2rad,
		Aspect: float32(c.WindowWidth) / float32(c.WindowHeight),
	}
}
