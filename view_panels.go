package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/torysaewoo/ticketb/seat"
	"github.com/torysaewoo/ticketb/views"
)

// Seat table column widths.
const (
	colZone  = 10
	colFloor = 13
	colGrade = 6
	colPrice = 10
	colDate  = 11
)

func (m Model) renderFiltersPanel(width, height int) string {
	active := m.focusedPanel == panelFilters

	var parts []string
	for dim := 0; dim < filterDimCount; dim++ {
		label := filterDimLabel(dim)
		value := m.selectionValue(dim)
		if strings.TrimSpace(value) == "" {
			value = seat.FilterAll
		}

		cell := labelStyle.Render(label+":") + valueStyle.Render(truncate(value, 14))
		if active && dim == m.filterDim {
			cell = selectedStyle.Render(label + ":" + truncate(value, 14))
		}
		parts = append(parts, cell)
	}

	line := strings.Join(parts, "  ")
	hint := mutedStyle.Render(fmt.Sprintf("%d of %d seats match", len(m.filtered), len(m.table)))
	content := line + "\n" + hint
	return renderPanel("⧩", "Filters", content, width, height, active)
}

func (m Model) renderSeatsPanel(width, height int) string {
	active := m.focusedPanel == panelSeats

	if m.loading {
		content := emptyStyle.Render("~ Loading seats"+strings.Repeat(".", m.loadingDots)+" ~") +
			"\n" + m.spinner.View()
		return renderPanel("#", "Seats", content, width, height, active)
	}

	if len(m.filtered) == 0 {
		content := emptyStyle.Render("~ No seats match ~") + "\n" +
			keyStyle.Render("a") + keyDescStyle.Render(" reset filters") + "  " +
			keyStyle.Render("r") + keyDescStyle.Render(" reload")
		return renderPanel("#", "Seats", content, width, height, active)
	}

	sorted := seat.SortRecords(m.filtered, m.sortField, m.sortDir)

	visibleRows := m.visibleSeatRows()
	start := m.seatsOffset
	if start < 0 {
		start = 0
	}
	maxStart := max(0, len(sorted)-max(1, visibleRows))
	if start > maxStart {
		start = maxStart
	}
	end := min(len(sorted), start+visibleRows)

	var lines []string
	header := fmt.Sprintf("%-*s %-*s %-*s %*s  %-*s",
		colZone, "Zone",
		colFloor, "Floor",
		colGrade, "Grade",
		colPrice, "Price",
		colDate, "Date",
	)
	lines = append(lines, headerStyle.Render(header))

	for i := start; i < end; i++ {
		lines = append(lines, m.renderSeatRow(sorted[i], i%2 == 1))
	}

	if len(sorted) > visibleRows {
		lines = append(lines, scrollInfoStyle.Render(
			fmt.Sprintf("showing %d-%d of %d  sort:%s/%s", start+1, end, len(sorted), m.sortField, m.sortDir)))
	} else {
		lines = append(lines, scrollInfoStyle.Render(
			fmt.Sprintf("showing 1-%d of %d  sort:%s/%s", end, len(sorted), m.sortField, m.sortDir)))
	}
	lines = append(lines, views.RenderLegend(max(10, width-2)))

	content := strings.Join(lines, "\n")
	return renderPanel("#", "Seats", content, width, height, active)
}

// renderSeatRow styles each column in place. A grade letter that also
// appears inside a zone name must never steal the grade color, so nothing
// here matches on text.
func (m Model) renderSeatRow(r seat.Record, alt bool) string {
	base := rowStyle
	if alt {
		base = rowAltStyle
	}

	lead := fmt.Sprintf("%-*s %-*s ",
		colZone, truncate(r.Zone, colZone),
		colFloor, truncate(r.Floor, colFloor),
	)
	grade := fmt.Sprintf("%-*s", colGrade, truncate(r.Grade, colGrade))
	price := fmt.Sprintf("%*s", colPrice, views.FormatPrice(r.Price))
	date := fmt.Sprintf("  %-*s", colDate, truncate(r.ShowDateTime, colDate))

	heat := seat.IntensityFor(r.Price, m.heatLo, m.heatHi)
	return base.Render(lead) +
		gradeStyleFor(r.Grade).Render(grade) +
		base.Render(" ") +
		views.HeatStyle(heat).Render(price) +
		base.Render(date)
}

func (m Model) renderStatsPanel(width, height int) string {
	active := m.focusedPanel == panelStats

	contentWidth := max(16, width-2)
	lines := []string{views.RenderTabs(m.statsDim)}

	bodyRows := max(1, height-3)
	lines = append(lines, views.RenderDimensionBody(
		m.dimRows,
		m.heatLo,
		m.heatHi,
		contentWidth,
		bodyRows,
		m.statsDim == views.DimensionZone,
	)...)
	lines = append(lines, views.RenderOverallLine(m.overall, contentWidth))

	content := strings.Join(lines, "\n")
	return renderPanel("Σ", "Stats", content, width, height, active)
}

func (m Model) renderCrossTabPanel(width, height int) string {
	active := m.focusedPanel == panelCrossTab

	contentWidth := max(16, width-2)
	lines := views.RenderCrossTabBody(m.crossTab, m.heatLo, m.heatHi, contentWidth, max(2, height))

	content := strings.Join(lines, "\n")
	return renderPanel("⊞", "Floor × Grade", content, width, height, active)
}

func (m Model) renderRecentPanel(width int) string {
	active := m.focusedPanel == panelRecent

	if len(m.recent) == 0 {
		return renderPanel("⟳", "Recent", emptyStyle.Render("~ no recent sources ~"), width, 1, active)
	}

	now := time.Now()
	var parts []string
	for i, entry := range m.recent {
		item := fmt.Sprintf("%s (%d rows, %s)",
			truncate(sourceBaseName(entry.Source), 18),
			entry.RowCount,
			formatRelativeTime(entry.Timestamp, now),
		)
		if active && i == m.recentIndex {
			parts = append(parts, selectedStyle.Render(item))
		} else {
			parts = append(parts, mutedStyle.Render(item))
		}
	}

	content := clipANSI(strings.Join(parts, "  "), max(10, width-2))
	return renderPanel("⟳", "Recent", content, width, 1, active)
}

func (m Model) renderHelpBar() string {
	helpModel := m.help
	helpModel.Width = max(0, m.width-2)
	help := helpModel.View(m.keys)

	if m.source != "" {
		help = mutedStyle.Render(truncate(m.source, 28)) + "  " + help
	}
	if m.notice != "" {
		help = successStyle.Render(m.notice) + "  " + help
	}
	if m.warning != "" {
		help = warningStyle.Render(m.warning) + "  " + help
	}
	if m.err != nil {
		errLine := dangerStyle.Render(fmt.Sprintf("Error: %v", m.err))
		return helpStyle.Render(errLine + "\n" + help)
	}

	return helpStyle.Render(help)
}
