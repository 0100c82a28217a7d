package main

import (
	xansi "github.com/charmbracelet/x/ansi"
)

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// clipANSI truncates a styled line to a visual width without splitting
// escape sequences.
func clipANSI(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(line) <= width {
		return line
	}
	if width <= 1 {
		return "…"
	}
	return xansi.Truncate(line, width, "…")
}
