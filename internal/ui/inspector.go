package ui

import (
	"strconv"

	"sceneeditor/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Field struct {
	Label string
	Value string
}

// Group is a labelled set of fields, such as the X/Y/Z of a position.
type Group struct {
	Title  string
	Fields []Field
}

type Section struct {
	Title  string
	Groups []Group
}

// Inspect describes the active selection for the inspector panel. It returns
// nil when nothing is selected.
func Inspect(sel *selection.ActiveSelection) []Section {
	if sel == nil || !sel.HasSelection {
		return nil
	}
	t := sel.Transform
	return []Section{
		{
			Title: "Entity Info",
			Groups: []Group{{
				Fields: []Field{{Label: "ID", Value: strconv.FormatUint(sel.EntityID, 10)}},
			}},
		},
		{
			Title: "Local Transform Info",
			Groups: []Group{
				xyz("Position Info", t.Position),
				xyz("Rotation Info", t.Rotation),
				xyz("Scale Info", t.Scale),
			},
		},
	}
}

func xyz(title string, v rl.Vector3) Group {
	return Group{
		Title: title,
		Fields: []Field{
			{Label: "X", Value: formatFloat(v.X)},
			{Label: "Y", Value: formatFloat(v.Y)},
			{Label: "Z", Value: formatFloat(v.Z)},
		},
	}
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 3, 32)
}
