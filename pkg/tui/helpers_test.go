package tui_test

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func visibleWidth(s string) int {
	return lipgloss.Width(s)
}
