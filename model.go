package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/torysaewoo/ticketb/loader"
	"github.com/torysaewoo/ticketb/seat"
	"github.com/torysaewoo/ticketb/views"
)

// Panel focus states
const (
	panelFilters = iota
	panelSeats
	panelStats
	panelCrossTab
	panelRecent
)

const panelCount = 5

// Filter dimensions in edit order for the filters panel.
const (
	filterDimZone = iota
	filterDimFloor
	filterDimGrade
	filterDimDate
)

const filterDimCount = 4

const layoutOverhead = 13

const loadTimeout = 30 * time.Second

// Model represents the application state. The loaded table and the active
// selection are the only inputs of every derived view; all aggregates below
// them are recomputed wholesale on each change.
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Shared components
	keys keyMap
	help help.Model

	// Focus management
	focusedPanel int

	// Loaded table
	source string
	table  []seat.Record
	diags  []loader.Diagnostic

	// Filter selection
	selection seat.Selection
	filterDim int

	// Derived aggregates, recomputed on every table or selection change
	filtered []seat.Record
	overall  seat.PriceStats
	heatLo   float64
	heatHi   float64
	statsDim views.Dimension
	dimRows  []seat.AggregateRow
	crossTab seat.CrossTab

	// Seats table presentation
	sortField   seat.SortField
	sortDir     seat.SortDirection
	seatsOffset int

	// Recent sources
	recent      []RecentEntry
	recentIndex int
	recentStore RecentStore

	// State
	loading      bool
	loadingDots  int
	spinner      spinner.Model
	reduceMotion bool
	err          error
	warning      string
	notice       string

	// Async load bookkeeping
	loadGen    int
	cancelLoad context.CancelFunc
}

// NewModel creates a new application model with initial state.
func NewModel(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	hp := help.New()
	hp.ShortSeparator = "  "
	hp.FullSeparator = "   "
	hp.Styles.ShortKey = keyStyle
	hp.Styles.ShortDesc = keyDescStyle
	hp.Styles.ShortSeparator = separatorStyle
	hp.Styles.Ellipsis = separatorStyle
	hp.Styles.FullKey = keyStyle
	hp.Styles.FullDesc = keyDescStyle
	hp.Styles.FullSeparator = separatorStyle

	store := NewFileRecentStore()
	recent, _ := store.Load()

	return Model{
		keys:         defaultKeyMap(),
		help:         hp,
		focusedPanel: panelFilters,
		source:       cfg.Source,
		selection:    seat.NewSelection(),
		sortField:    seat.SortFieldPrice,
		sortDir:      seat.SortDirectionDesc,
		spinner:      sp,
		reduceMotion: cfg.ReduceMotion,
		recent:       recent,
		recentStore:  store,
	}
}

// Init initializes the model (required by tea.Model interface).
// The initial load goes through the same reload message the r key uses.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.source != "" {
		source := m.source
		cmds = append(cmds, func() tea.Msg {
			return reloadRequestMsg{source: source}
		})
	}
	return tea.Batch(cmds...)
}

// recompute rebuilds every derived aggregate from (table, selection).
// The heat range always tracks the filtered set, so bucket colors are
// filter-relative rather than global.
func (m Model) recompute() Model {
	m.filtered = seat.Apply(m.table, m.selection)
	m.overall = seat.StatsFor(m.filtered)
	m.heatLo, m.heatHi = seat.PriceRange(m.filtered)
	m.dimRows = m.dimensionRows(m.statsDim)
	m.crossTab = seat.FloorGradeCrossTab(m.filtered)

	if visible := m.visibleSeatRows(); m.seatsOffset > 0 && m.seatsOffset+visible > len(m.filtered) {
		m.seatsOffset = max(0, len(m.filtered)-visible)
	}
	return m
}

func (m Model) dimensionRows(dim views.Dimension) []seat.AggregateRow {
	switch dim {
	case views.DimensionFloor:
		return seat.FloorPriceStats(m.filtered)
	case views.DimensionGrade:
		return seat.GradePriceStats(m.filtered)
	case views.DimensionNote:
		return seat.NotePriceStats(m.filtered)
	case views.DimensionDate:
		return seat.DatePriceStats(m.filtered)
	default:
		return seat.ZonePriceStats(m.filtered)
	}
}

// filterOptions returns the selectable values for one filter dimension,
// derived from the full table so narrowing one dimension never hides the
// other options.
func (m Model) filterOptions(dim int) []string {
	switch dim {
	case filterDimFloor:
		return seat.Floors(m.table)
	case filterDimGrade:
		return seat.Grades(m.table)
	case filterDimDate:
		return seat.DateKeys(m.table)
	default:
		return seat.Zones(m.table)
	}
}

func (m Model) selectionValue(dim int) string {
	switch dim {
	case filterDimFloor:
		return m.selection.Floor
	case filterDimGrade:
		return m.selection.Grade
	case filterDimDate:
		return m.selection.DatePrefix
	default:
		return m.selection.Zone
	}
}

func (m Model) withSelectionValue(dim int, value string) Model {
	switch dim {
	case filterDimFloor:
		m.selection.Floor = value
	case filterDimGrade:
		m.selection.Grade = value
	case filterDimDate:
		m.selection.DatePrefix = value
	default:
		m.selection.Zone = value
	}
	return m
}

func filterDimLabel(dim int) string {
	switch dim {
	case filterDimFloor:
		return "Floor"
	case filterDimGrade:
		return "Grade"
	case filterDimDate:
		return "Date"
	default:
		return "Zone"
	}
}

func (m Model) visibleSeatRows() int {
	return max(3, m.height-layoutOverhead)
}
