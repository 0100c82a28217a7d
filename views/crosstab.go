package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/torysaewoo/ticketb/seat"
)

const crossTabNoData = "–"

var crossTabHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#98A2B3"))

// RenderCrossTabBody renders the floor×grade heat grid: one row per floor,
// one column per grade, each cell the group's average price colored by its
// bucket within [lo, hi]. Unobserved combinations show a dash, never a
// zero-valued cell.
func RenderCrossTabBody(ct seat.CrossTab, lo, hi float64, width, maxRows int) []string {
	if width < 24 {
		width = 24
	}
	if maxRows < 2 {
		maxRows = 2
	}

	if len(ct.Floors) == 0 || len(ct.Grades) == 0 {
		return []string{"~ no floor×grade data ~"}
	}

	floors := ct.Floors
	if len(floors) > maxRows-1 { // reserve the header line
		floors = floors[:maxRows-1]
	}

	labelWidth := minInt(13, maxInt(5, width/4))
	cellWidth := maxInt(8, minInt(10, (width-labelWidth-1)/maxInt(1, len(ct.Grades))-1))
	maxCols := maxInt(1, (width-labelWidth-1)/(cellWidth+1))
	grades := ct.Grades
	if len(grades) > maxCols {
		grades = grades[:maxCols]
	}

	lines := make([]string, 0, len(floors)+1)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelWidth))
	for _, grade := range grades {
		header.WriteString(" ")
		header.WriteString(crossTabHeaderStyle.Render(fmt.Sprintf("%*s", cellWidth, truncate(grade, cellWidth))))
	}
	lines = append(lines, clipANSIWidth(header.String(), width))

	for _, floor := range floors {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%-*s", labelWidth, truncate(displayKey(floor), labelWidth)))
		for _, grade := range grades {
			b.WriteString(" ")
			stats, ok := ct.Cell(floor, grade)
			if !ok {
				b.WriteString(fmt.Sprintf("%*s", cellWidth, crossTabNoData))
				continue
			}
			cell := fmt.Sprintf("%*s", cellWidth, truncate(FormatPrice(stats.Avg), cellWidth))
			b.WriteString(HeatStyle(seat.IntensityFor(stats.Avg, lo, hi)).Render(cell))
		}
		lines = append(lines, clipANSIWidth(b.String(), width))
	}
	return lines
}
