package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI (required by tea.Model interface).
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.width < 64 || m.height < 16 {
		return helpStyle.Render(
			fmt.Sprintf(
				"Terminal too small (%dx%d). Resize to at least 64x16.",
				m.width,
				m.height,
			),
		)
	}

	contentWidth := m.width - 4
	stacked := m.width < 84
	leftWidth := contentWidth * 3 / 5
	rightWidth := contentWidth - leftWidth

	if stacked {
		leftWidth = contentWidth
		rightWidth = contentWidth
	} else {
		if leftWidth < 30 {
			leftWidth = 30
			rightWidth = contentWidth - leftWidth
		}
		if rightWidth < 24 {
			rightWidth = 24
			leftWidth = contentWidth - rightWidth
		}
	}

	filtersHeight := 2
	seatsHeight := m.visibleSeatRows() + 3

	const (
		statsMinHeight = 7
		statsMaxHeight = 10
		crossMinHeight = 4
	)
	statsHeight := statsMinHeight
	crossHeight := crossMinHeight

	if !stacked {
		leftTotal := (filtersHeight + 2) + (seatsHeight + 2)
		statsHeight = min(statsMaxHeight, max(statsMinHeight, leftTotal-(crossMinHeight+4)))
		crossHeight = max(crossMinHeight, leftTotal-(statsHeight+2)-2)
	} else {
		statsHeight = min(statsMaxHeight, max(statsMinHeight, m.height/4))
		seatsHeight = max(4, m.height-((filtersHeight+2)+(statsHeight+2)+(crossMinHeight+2)+7))
	}

	appHeader := m.renderAppHeader(m.width - 2)
	filtersPanel := m.renderFiltersPanel(leftWidth, filtersHeight)
	seatsPanel := m.renderSeatsPanel(leftWidth, seatsHeight)
	statsPanel := m.renderStatsPanel(rightWidth, statsHeight)
	crossPanel := m.renderCrossTabPanel(rightWidth, crossHeight)
	recentPanel := m.renderRecentPanel(m.width - 2)
	helpBar := m.renderHelpBar()

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		filtersPanel,
		seatsPanel,
	)

	rightColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		statsPanel,
		crossPanel,
	)

	mainArea := ""
	if stacked {
		mainArea = lipgloss.JoinVertical(
			lipgloss.Left,
			leftColumn,
			rightColumn,
		)
	} else {
		mainArea = lipgloss.JoinHorizontal(
			lipgloss.Top,
			leftColumn,
			rightColumn,
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		appHeader,
		mainArea,
		recentPanel,
		helpBar,
	)
}

func (m Model) renderAppHeader(contentWidth int) string {
	title := renderGradientText("t i c k e t b", "#7D56F4", "#EA80FC")
	subtitle := mutedStyle.Render("Seat Price Board")
	separator := renderGradientText(strings.Repeat("━", max(8, contentWidth)), "#7D56F4", "#EA80FC")
	return lipgloss.JoinVertical(lipgloss.Left, title+" "+subtitle, separator)
}
