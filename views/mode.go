// Package views renders the aggregate boards shown in the stats and
// cross-tab panels. Bodies are plain line slices; the caller owns panel
// framing and scrolling.
package views

import "github.com/charmbracelet/lipgloss"

// Dimension selects which grouped price view is active in the stats panel.
type Dimension int

const (
	DimensionZone Dimension = iota
	DimensionFloor
	DimensionGrade
	DimensionNote
	DimensionDate
)

// Dimensions lists the stats-panel dimensions in tab order.
var Dimensions = []Dimension{
	DimensionZone,
	DimensionFloor,
	DimensionGrade,
	DimensionNote,
	DimensionDate,
}

// Label returns the human name of the dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionFloor:
		return "Floor"
	case DimensionGrade:
		return "Grade"
	case DimensionNote:
		return "Note"
	case DimensionDate:
		return "Date"
	default:
		return "Zone"
	}
}

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EA80FC"))

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#667085"))
)

// RenderTabs renders the dimension tab bar with the active tab highlighted.
func RenderTabs(active Dimension) string {
	out := ""
	for i, d := range Dimensions {
		tab := "[" + string(rune('1'+i)) + ":" + d.Label() + "]"
		if d == active {
			tab = tabActiveStyle.Render(tab)
		} else {
			tab = tabInactiveStyle.Render(tab)
		}
		if out != "" {
			out += " "
		}
		out += tab
	}
	return out
}
