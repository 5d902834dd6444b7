package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the sidebar.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	Toggle        key.Binding
	Open          key.Binding
	AddLink       key.Binding
	AddFolder     key.Binding
	Rename        key.Binding
	Delete        key.Binding
	Pin           key.Binding
	Group         key.Binding
	Mark          key.Binding
	MoveRight     key.Binding
	Filter        key.Binding
	YankURL       key.Binding
	NextWorkspace key.Binding
	PrevWorkspace key.Binding
	NewWorkspace  key.Binding
	CycleColor    key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("l/enter", "toggle folder / open link"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		AddLink: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add link"),
		),
		AddFolder: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add folder"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin link"),
		),
		Group: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "group marked into folder"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark item"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to next workspace"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank URL"),
		),
		NextWorkspace: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next workspace"),
		),
		PrevWorkspace: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "previous workspace"),
		),
		NewWorkspace: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "new workspace"),
		),
		CycleColor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "cycle workspace color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
