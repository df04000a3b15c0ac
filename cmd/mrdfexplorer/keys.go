package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Actions
	Enter key.Binding
	Tab   key.Binding
	Esc   key.Binding
	Space key.Binding

	// Editing
	Edit       key.Binding
	HexEdit    key.Binding
	HexAt      key.Binding
	Revert     key.Binding
	RevertHex  key.Binding
	DiscardAll key.Binding
	Save       key.Binding

	// Commands
	Filter      key.Binding
	NextProfile key.Binding
	CopyRaw     key.Binding
	HexNext     key.Binding
	HexPrev     key.Binding
	JumpOffset  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "go to bottom"),
		),

		// Actions
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit / fold section"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle bit"),
		),

		// Editing
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit value"),
		),
		HexEdit: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "overwrite field bytes"),
		),
		HexAt: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "overwrite bytes at offset"),
		),
		Revert: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "revert field"),
		),
		RevertHex: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "revert byte range"),
		),
		DiscardAll: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "discard all edits"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "w"),
			key.WithHelp("ctrl+s", "save"),
		),

		// Commands
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		NextProfile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next profile"),
		),
		CopyRaw: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy raw bytes"),
		),
		HexNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "hex page down"),
		),
		HexPrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "hex page up"),
		),
		JumpOffset: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "jump to offset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Help,
		k.Quit,
	}
}

// FullHelp returns all key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Tab},
		{k.Enter, k.Edit, k.HexEdit, k.HexAt, k.Space, k.Revert, k.RevertHex, k.DiscardAll, k.Save},
		{k.Filter, k.NextProfile, k.CopyRaw, k.HexPrev, k.HexNext, k.JumpOffset, k.Help, k.Quit},
	}
}
