package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/torysaewoo/ticketb/seat"
)

const (
	heatLowHex    = "#12B76A"
	heatHighHex   = "#D92D20"
	heatNoDataHex = "#667085"
)

// HeatColor maps an intensity bucket to its hex color on the cheap→dear
// ramp. No-data seats get the muted gray.
func HeatColor(i seat.Intensity) string {
	switch i {
	case seat.IntensityVeryLow, seat.IntensityLow, seat.IntensityMid,
		seat.IntensityHigh, seat.IntensityVeryHigh:
		t := float64(i-seat.IntensityVeryLow) / 4.0
		return blendHex(heatLowHex, heatHighHex, t)
	default:
		return heatNoDataHex
	}
}

// HeatStyle returns a lipgloss style for rendering a price at the given
// intensity.
func HeatStyle(i seat.Intensity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(HeatColor(i)))
}

// RenderHeatPrice renders a price colored by its bucket against the
// currently filtered price range.
func RenderHeatPrice(price, lo, hi float64) string {
	return HeatStyle(seat.IntensityFor(price, lo, hi)).Render(FormatPrice(price))
}

// RenderLegend renders the heat-bucket legend as one clipped line.
func RenderLegend(width int) string {
	buckets := []seat.Intensity{
		seat.IntensityVeryLow,
		seat.IntensityLow,
		seat.IntensityMid,
		seat.IntensityHigh,
		seat.IntensityVeryHigh,
	}

	var b strings.Builder
	for i, bucket := range buckets {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(HeatStyle(bucket).Render("■"))
		b.WriteString(" " + bucket.String())
	}
	return clipANSIWidth(b.String(), width)
}

func blendHex(a, b string, t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	start, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	end, err := colorful.Hex(b)
	if err != nil {
		return b
	}
	return strings.ToUpper(start.BlendRgb(end, t).Clamped().Hex())
}

// renderHeatBar draws a filled bar whose color tracks the given intensity.
func renderHeatBar(ratio float64, width int, i seat.Intensity) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := HeatStyle(i).Render(strings.Repeat("█", filled))
	return bar + strings.Repeat("░", width-filled)
}

func formatCount(n int) string {
	return fmt.Sprintf("%d", n)
}
