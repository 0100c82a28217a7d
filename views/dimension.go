package views

import (
	"fmt"

	"github.com/torysaewoo/ticketb/seat"
)

// RenderDimensionBody renders one grouped price view as bar rows. Bars are
// scaled against the highest group average; colors track each group's heat
// bucket within the filtered price range [lo, hi]. Wide layouts add the
// min–max spread, which only the zone view surfaces per the board design.
func RenderDimensionBody(rows []seat.AggregateRow, lo, hi float64, width, maxRows int, showRange bool) []string {
	if width < 24 {
		width = 24
	}
	if maxRows < 1 {
		maxRows = 1
	}

	if len(rows) == 0 {
		return []string{"~ no seats in filter ~"}
	}
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	maxAvg := 0.0
	for _, row := range rows {
		if row.Avg > maxAvg {
			maxAvg = row.Avg
		}
	}
	if maxAvg <= 0 {
		maxAvg = 1
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		labelWidth := minInt(12, maxInt(5, width/4))
		label := truncate(displayKey(row.Key), labelWidth)

		suffix := fmt.Sprintf("%s (%s)", FormatPrice(row.Avg), formatCount(row.Count))
		if showRange && width >= 60 && row.Min > 0 {
			suffix += fmt.Sprintf("  %s–%s", FormatPrice(row.Min), FormatPrice(row.Max))
		}
		if width < 32 {
			suffix = formatCount(row.Count)
		}

		barWidth := width - labelWidth - len([]rune(suffix)) - 2
		barWidth = minInt(16, barWidth)
		barWidth = maxInt(2, barWidth)

		bar := renderHeatBar(row.Avg/maxAvg, barWidth, seat.IntensityFor(row.Avg, lo, hi))
		line := fmt.Sprintf("%-*s %s %s", labelWidth, label, bar, suffix)
		lines = append(lines, clipANSIWidth(line, width))
	}
	return lines
}

// RenderOverallLine summarizes the filtered set under a dimension body.
func RenderOverallLine(stats seat.PriceStats, width int) string {
	var line string
	switch {
	case width >= 56:
		line = fmt.Sprintf("Seats:%d  Avg:%s  Med:%s  Min:%s  Max:%s",
			stats.Count,
			FormatPrice(stats.Avg),
			FormatPrice(stats.Median),
			FormatPrice(stats.Min),
			FormatPrice(stats.Max),
		)
	case width >= 36:
		line = fmt.Sprintf("Seats:%d  Avg:%s  Med:%s",
			stats.Count,
			FormatPrice(stats.Avg),
			FormatPrice(stats.Median),
		)
	default:
		line = fmt.Sprintf("Seats:%d  Avg:%s", stats.Count, FormatPrice(stats.Avg))
	}
	return clipANSIWidth(line, width)
}

// Keys can be empty when a dimension is missing from a record; show those
// buckets with a readable placeholder instead of a blank label.
func displayKey(key string) string {
	if key == "" {
		return "(unknown)"
	}
	return key
}
