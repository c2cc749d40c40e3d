package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	toggle      key.Binding
	next        key.Binding
	back        key.Binding
	exportText  key.Binding
	exportPDF   key.Binding
	exportPrint key.Binding
	exportEmail key.Binding
	restart     key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		exportText: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "text"),
		),
		exportPDF: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pdf"),
		),
		exportPrint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "print"),
		),
		exportEmail: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "email"),
		),
		restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new checklist"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forStep returns the bindings shown in the help line of a step
func (k keyMap) forStep(checklist bool, canAdvance bool) []key.Binding {
	if checklist {
		return []key.Binding{k.up, k.down, k.toggle, k.exportText, k.exportPDF, k.exportPrint, k.exportEmail, k.restart, k.back, k.quit}
	}
	next := k.next
	next.SetEnabled(canAdvance)
	return []key.Binding{k.up, k.down, k.toggle, next, k.back, k.quit}
}
