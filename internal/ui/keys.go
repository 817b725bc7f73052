package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Reload     key.Binding

	// Ready view
	Click    key.Binding
	Reset    key.Binding
	PrevCat  key.Binding
	NextCat  key.Binding
	FirstCat key.Binding
	LastCat  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reload from the cat store"),
		),

		Click: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "Pet the cat (+1 click)"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Reset clicks to zero"),
		),
		PrevCat: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous cat"),
		),
		NextCat: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next cat"),
		),
		FirstCat: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First cat"),
		),
		LastCat: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last cat"),
		),
	}
}

// helpBindings returns the bindings in help-overlay display order.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Click,
		k.Reset,
		k.PrevCat,
		k.NextCat,
		k.FirstCat,
		k.LastCat,
		k.Reload,
		k.CycleTheme,
		k.Help,
		k.Quit,
	}
}
