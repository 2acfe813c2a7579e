// Package ui builds the data shown by the editor panels, independent of the
// GUI toolkit that draws it.
package ui

import (
	"sceneeditor/internal/engine"
	"sceneeditor/internal/selection"
)

const (
	UnnamedLabel    = "Unnamed"
	DefaultMaxDepth = 32
)

// Row is one line of the hierarchy panel.
type Row struct {
	UID         uint64
	Name        string
	Depth       int
	Selected    bool
	HasChildren bool
}

// Hierarchy lists the scene depth-first starting from its roots. Descent stops
// at maxDepth so a parent cycle cannot hang the panel; maxDepth <= 0 means
// DefaultMaxDepth.
func Hierarchy(scene *engine.Scene, sel *selection.ActiveSelection, maxDepth int) []Row {
	if scene == nil {
		return nil
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var rows []Row
	var walk func(g *engine.GameObject, depth int)
	walk = func(g *engine.GameObject, depth int) {
		rows = append(rows, Row{
			UID:         g.UID,
			Name:        DisplayName(g),
			Depth:       depth,
			Selected:    sel != nil && sel.IsSelected(g.UID),
			HasChildren: len(g.Children) > 0,
		})
		if depth+1 >= maxDepth {
			return
		}
		for _, c := range g.Children {
			walk(c, depth+1)
		}
	}
	for _, root := range scene.Roots() {
		walk(root, 0)
	}
	return rows
}

func DisplayName(g *engine.GameObject) string {
	if g.Name == "" {
		return UnnamedLabel
	}
	return g.Name
}
