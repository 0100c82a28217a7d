package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/torysaewoo/ticketb/loader"
	"github.com/torysaewoo/ticketb/seat"
	"github.com/torysaewoo/ticketb/views"
)

// reloadRequestMsg asks for a fresh load of the given source.
type reloadRequestMsg struct {
	source string
}

// loadResultMsg carries one finished load attempt. Results from a
// superseded load generation are dropped.
type loadResultMsg struct {
	gen    int
	result loader.Result
	err    error
}

// Update handles messages and updates the model (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if visible := m.visibleSeatRows(); m.seatsOffset > 0 && m.seatsOffset+visible > len(m.filtered) {
			m.seatsOffset = max(0, len(m.filtered)-visible)
		}
		return m, nil

	case reloadRequestMsg:
		updated, cmd := m.startLoad(msg.source)
		return updated, cmd

	case loadResultMsg:
		return m.handleLoadResult(msg)

	case spinner.TickMsg:
		if m.loading && !m.reduceMotion {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.loadingDots = (m.loadingDots + 1) % 4
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// startLoad kicks off an asynchronous load and cancels any load in flight.
func (m Model) startLoad(source string) (Model, tea.Cmd) {
	m.cancelActiveLoad()
	m.loadGen++
	m.loading = true
	m.err = nil
	m.warning = ""
	m.notice = ""
	m.source = source

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	m.cancelLoad = cancel

	gen := m.loadGen
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := loader.Load(ctx, source)
		return loadResultMsg{gen: gen, result: result, err: err}
	})
}

func (m Model) cancelActiveLoad() {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
}

func (m Model) handleLoadResult(msg loadResultMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}

	m.cancelActiveLoad()
	m.cancelLoad = nil
	m.loading = false

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.err = msg.err
		m.warning = loader.ActionableHint(msg.err)
		return m, nil
	}

	// The old table is discarded wholesale; the selection resets because
	// its observed values may not exist in the new table.
	m.table = msg.result.Records
	m.diags = msg.result.Diagnostics
	m.source = msg.result.Source
	m.selection = seat.NewSelection()
	m.filterDim = filterDimZone
	m.seatsOffset = 0
	m.err = nil
	if n := len(m.diags); n > 0 {
		m.warning = fmt.Sprintf("%d malformed field(s) zeroed", n)
	} else {
		m.warning = ""
	}
	m = m.recompute()

	m.recent = rememberRecent(m.recent, RecentEntry{
		Source:    msg.result.Source,
		Timestamp: time.Now().UTC(),
		RowCount:  len(msg.result.Records),
	})
	m.recentIndex = 0
	store := m.recentStore
	entries := append([]RecentEntry(nil), m.recent...)
	return m, func() tea.Msg {
		if store != nil {
			_ = store.Save(entries)
		}
		return nil
	}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.cancelActiveLoad()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.focusedPanel = (m.focusedPanel + 1) % panelCount
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
		return m, nil

	case key.Matches(msg, m.keys.DimZone):
		return m.switchStatsDim(views.DimensionZone), nil
	case key.Matches(msg, m.keys.DimFloor):
		return m.switchStatsDim(views.DimensionFloor), nil
	case key.Matches(msg, m.keys.DimGrade):
		return m.switchStatsDim(views.DimensionGrade), nil
	case key.Matches(msg, m.keys.DimNote):
		return m.switchStatsDim(views.DimensionNote), nil
	case key.Matches(msg, m.keys.DimDate):
		return m.switchStatsDim(views.DimensionDate), nil

	case key.Matches(msg, m.keys.ClearSel):
		m.selection = seat.NewSelection()
		return m.recompute(), nil

	case key.Matches(msg, m.keys.SortField):
		m.sortField = nextSortField(m.sortField)
		return m, nil

	case key.Matches(msg, m.keys.SortOrder):
		if m.sortDir == seat.SortDirectionAsc {
			m.sortDir = seat.SortDirectionDesc
		} else {
			m.sortDir = seat.SortDirectionAsc
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.source == "" {
			m.notice = "no source configured"
			return m, nil
		}
		source := m.source
		return m, func() tea.Msg { return reloadRequestMsg{source: source} }

	case key.Matches(msg, m.keys.ExportCSV):
		return m.exportAggregates("csv"), nil

	case key.Matches(msg, m.keys.ExportJSN):
		return m.exportAggregates("json"), nil

	case key.Matches(msg, m.keys.Motion):
		m.reduceMotion = !m.reduceMotion
		// The tick chain dies while motion is reduced, so re-enabling
		// animation mid-load has to restart it.
		if !m.reduceMotion && m.loading {
			return m, m.spinner.Tick
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.focusedPanel == panelRecent && m.recentIndex < len(m.recent) {
			source := m.recent[m.recentIndex].Source
			return m, func() tea.Msg { return reloadRequestMsg{source: source} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.handleLeft(), nil
	case key.Matches(msg, m.keys.Right):
		return m.handleRight(), nil
	case key.Matches(msg, m.keys.Up):
		return m.handleUp(), nil
	case key.Matches(msg, m.keys.Down):
		return m.handleDown(), nil
	}

	return m, nil
}

func (m Model) switchStatsDim(dim views.Dimension) Model {
	m.statsDim = dim
	m.dimRows = m.dimensionRows(dim)
	if m.focusedPanel != panelStats {
		m.focusedPanel = panelStats
	}
	return m
}

func (m Model) handleLeft() Model {
	switch m.focusedPanel {
	case panelFilters:
		m.filterDim = (m.filterDim + filterDimCount - 1) % filterDimCount
	case panelRecent:
		if m.recentIndex > 0 {
			m.recentIndex--
		}
	}
	return m
}

func (m Model) handleRight() Model {
	switch m.focusedPanel {
	case panelFilters:
		m.filterDim = (m.filterDim + 1) % filterDimCount
	case panelRecent:
		if m.recentIndex < len(m.recent)-1 {
			m.recentIndex++
		}
	}
	return m
}

func (m Model) handleUp() Model {
	switch m.focusedPanel {
	case panelFilters:
		return m.cycleFilterValue(-1)
	case panelSeats:
		if m.seatsOffset > 0 {
			m.seatsOffset--
		}
	}
	return m
}

func (m Model) handleDown() Model {
	switch m.focusedPanel {
	case panelFilters:
		return m.cycleFilterValue(1)
	case panelSeats:
		maxOffset := max(0, len(m.filtered)-m.visibleSeatRows())
		if m.seatsOffset < maxOffset {
			m.seatsOffset++
		}
	}
	return m
}

// cycleFilterValue steps the focused dimension through "all" plus its
// observed values, wrapping at both ends, and recomputes the aggregates.
func (m Model) cycleFilterValue(step int) Model {
	options := append([]string{seat.FilterAll}, m.filterOptions(m.filterDim)...)
	current := m.selectionValue(m.filterDim)

	idx := 0
	for i, v := range options {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(options)) % len(options)

	m = m.withSelectionValue(m.filterDim, options[idx])
	return m.recompute()
}

func nextSortField(field seat.SortField) seat.SortField {
	for i, f := range seat.SortFields {
		if f == field {
			return seat.SortFields[(i+1)%len(seat.SortFields)]
		}
	}
	return seat.SortFieldPrice
}

func (m Model) exportAggregates(format string) Model {
	if len(m.table) == 0 {
		m.notice = "nothing to export"
		return m
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		m.err = fmt.Errorf("resolve export directory: %w", err)
		return m
	}

	path := BuildExportPath(homeDir, m.source, format, time.Now())
	snapshot := m.exportSnapshot()

	switch format {
	case "json":
		err = ExportJSON(path, snapshot)
	default:
		err = ExportCSV(path, snapshot)
	}
	if err != nil {
		m.err = err
		return m
	}

	m.err = nil
	m.notice = "exported " + path
	return m
}

func (m Model) exportSnapshot() ExportSnapshot {
	return ExportSnapshot{
		Source:    m.source,
		Selection: m.selection,
		Overall:   m.overall,
		Zones:     seat.ZonePriceStats(m.filtered),
		Floors:    seat.FloorPriceStats(m.filtered),
		Grades:    seat.GradePriceStats(m.filtered),
		Notes:     seat.NotePriceStats(m.filtered),
		Dates:     seat.DatePriceStats(m.filtered),
	}
}
