package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/torysaewoo/ticketb/seat"
	"github.com/torysaewoo/ticketb/views"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestViewBeforeFirstWindowSize(t *testing.T) {
	m := NewModel(Config{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected loading placeholder, got %q", got)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel()
	m.width = 40
	m.height = 10

	got := stripANSI(m.View())
	if !strings.Contains(got, "Terminal too small (40x10)") {
		t.Fatalf("expected too-small message, got %q", got)
	}
}

func TestViewRendersAllPanels(t *testing.T) {
	m := newTestModel()

	got := stripANSI(m.View())
	for _, want := range []string{"Filters", "Seats", "Stats", "Floor × Grade", "Recent"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected panel %q in view", want)
		}
	}
	if !strings.Contains(got, "4 of 4 seats match") {
		t.Fatalf("expected match count line, got view:\n%s", got)
	}
}

func TestViewShowsHeatPricesAndLegend(t *testing.T) {
	m := newTestModel()

	got := stripANSI(m.View())
	if !strings.Contains(got, "¥150,000") {
		t.Fatalf("expected formatted seat price in view:\n%s", got)
	}
	for _, bucket := range []string{"very-low", "very-high"} {
		if !strings.Contains(got, bucket) {
			t.Fatalf("expected legend bucket %q in view", bucket)
		}
	}
}

func TestViewStackedLayoutAtNarrowWidth(t *testing.T) {
	m := newTestModel()
	m.width = 70
	m.height = 40

	got := stripANSI(m.View())
	if !strings.Contains(got, "Seats") || !strings.Contains(got, "Stats") {
		t.Fatal("expected stacked layout to keep all panels")
	}
}

func TestRenderHelpBarShowsError(t *testing.T) {
	m := newTestModel()
	m.err = errTest{}

	got := stripANSI(m.renderHelpBar())
	if !strings.Contains(got, "Error: boom") {
		t.Fatalf("expected error in help bar, got %q", got)
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }

func TestRenderFiltersPanelHighlightsFocusedDimension(t *testing.T) {
	m := newTestModel()
	m.focusedPanel = panelFilters
	m.filterDim = filterDimGrade
	m.selection.Grade = "S"
	m = m.recompute()

	got := stripANSI(m.renderFiltersPanel(60, 2))
	if !strings.Contains(got, "Grade:S") {
		t.Fatalf("expected focused grade value, got %q", got)
	}
	if !strings.Contains(got, "2 of 4 seats match") {
		t.Fatalf("expected match count, got %q", got)
	}
}

func TestRenderSeatsPanelEmptyState(t *testing.T) {
	m := newTestModel()
	m.selection.Grade = "unobserved"
	m = m.recompute()

	got := stripANSI(m.renderSeatsPanel(60, 10))
	if !strings.Contains(got, "No seats match") {
		t.Fatalf("expected empty state, got %q", got)
	}
}

func TestSeatRowStylesCellsByPosition(t *testing.T) {
	restore := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(restore)

	m := newTestModel()
	row := m.renderSeatRow(seat.Record{
		Zone:         "Arena A",
		Floor:        "1F",
		Grade:        "A",
		Price:        98000,
		ShowDateTime: "03/09 19:00",
	}, false)

	// The grade letter also appears inside the zone name; the zone text
	// must come through contiguous, with the grade color on its own cell.
	if !strings.Contains(row, "Arena A") {
		t.Fatalf("expected contiguous zone text, got %q", row)
	}

	plain := stripANSI(row)
	gradeStart := colZone + 1 + colFloor + 1
	if got := plain[gradeStart : gradeStart+colGrade]; got != "A     " {
		t.Fatalf("expected grade cell at its column, got %q in %q", got, plain)
	}
	if !strings.Contains(plain, "¥98,000") {
		t.Fatalf("expected formatted price, got %q", plain)
	}
}

func TestRenderStatsPanelSwitchesBody(t *testing.T) {
	m := newTestModel()

	zone := stripANSI(m.renderStatsPanel(50, 9))
	if !strings.Contains(zone, "[1:Zone]") {
		t.Fatalf("expected tab bar, got %q", zone)
	}
	if !strings.Contains(zone, "Arena A") {
		t.Fatalf("expected zone rows, got %q", zone)
	}

	m = m.switchStatsDim(views.DimensionGrade)
	grade := stripANSI(m.renderStatsPanel(50, 9))
	if zone == grade {
		t.Fatal("expected stats body to change with dimension")
	}
}
