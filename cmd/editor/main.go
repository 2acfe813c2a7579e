package main

import (
	"log/slog"
	"os"

	"sceneeditor/internal/config"
	"sceneeditor/internal/game"
	"sceneeditor/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	w := world.NewDefault()
	if cfg.ScenePath != "" {
		w, err = world.Load(cfg.ScenePath)
		if err != nil {
			slog.Error("load scene", "path", cfg.ScenePath, "error", err)
			os.Exit(1)
		}
	}

	prefs, err := config.LoadPrefs(cfg.PrefsPath)
	if err != nil {
		slog.Warn("ignoring editor prefs", "path", cfg.PrefsPath, "error", err)
		prefs = nil
	}

	if err := game.New(cfg, w, prefs).Run(); err != nil {
		slog.Error("editor stopped", "error", err)
		os.Exit(1)
	}
}
