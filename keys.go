package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	DimZone   key.Binding
	DimFloor  key.Binding
	DimGrade  key.Binding
	DimNote   key.Binding
	DimDate   key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	ClearSel  key.Binding
	SortField key.Binding
	SortOrder key.Binding
	Reload    key.Binding
	ExportCSV key.Binding
	ExportJSN key.Binding
	Enter     key.Binding
	Motion    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		DimZone: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "zone view"),
		),
		DimFloor: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "floor view"),
		),
		DimGrade: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "grade view"),
		),
		DimNote: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "note view"),
		),
		DimDate: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "date view"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "prev dimension"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "next dimension"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "prev value"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "next value"),
		),
		ClearSel: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "reset filters"),
		),
		SortField: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort column"),
		),
		SortOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort order"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		ExportJSN: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export json"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load recent"),
		),
		Motion: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motion"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Up, k.Down, k.SortField, k.Reload, k.ExportCSV, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter},
		{k.Left, k.Right, k.Up, k.Down, k.ClearSel},
		{k.DimZone, k.DimFloor, k.DimGrade, k.DimNote, k.DimDate},
		{k.SortField, k.SortOrder, k.Reload, k.ExportCSV, k.ExportJSN},
		{k.Motion, k.Quit, k.ForceQuit},
	}
}
