package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the table view.
// It helps in managing and displaying help information.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Sort         key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	Search       key.Binding
	ClearSearch  key.Binding
	Filter       key.Binding
	ResetFilters key.Binding
	Action       key.Binding
	Yank         key.Binding
	Enter        key.Binding // Context-dependent help
	Esc          key.Binding // Context-dependent help
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "row down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "column left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "column right"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by column"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "previous page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filters"),
		),
		ResetFilters: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "reset filters"),
		),
		Action: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete/remove"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy row"),
		),
		Enter: key.NewBinding( // Generic, help text might be context specific
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/confirm"),
		),
		Esc: key.NewBinding( // Generic, help text might be context specific
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Search, k.Filter, k.Help, k.Quit}
}

// FullHelp returns all bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Sort, k.NextPage, k.PrevPage, k.Yank},
		{k.Search, k.ClearSearch, k.Filter, k.ResetFilters},
		{k.Action, k.Enter, k.Esc, k.Quit},
	}
}
