package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// Styles holds all lipgloss styles for the sidebar.
type Styles struct {
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Folder      lipgloss.Style
	Pinned      lipgloss.Style
	Marked      lipgloss.Style
	SectionHead lipgloss.Style
	StatusBar   lipgloss.Style
	FilterLabel lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Reverse(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Folder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")).
			Bold(true),
		Pinned: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		Marked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("168")),
		SectionHead: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		FilterLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")),
	}
}

// workspaceColors maps workspace accent colors to terminal colors.
var workspaceColors = map[model.Color]lipgloss.Color{
	model.ColorBlush:      lipgloss.Color("211"),
	model.ColorApricot:    lipgloss.Color("216"),
	model.ColorButter:     lipgloss.Color("222"),
	model.ColorLeaf:       lipgloss.Color("114"),
	model.ColorMint:       lipgloss.Color("121"),
	model.ColorSky:        lipgloss.Color("117"),
	model.ColorPeriwinkle: lipgloss.Color("111"),
	model.ColorLavender:   lipgloss.Color("183"),
}

// WorkspaceColor returns the terminal color for a workspace accent.
func WorkspaceColor(c model.Color) lipgloss.Color {
	if color, ok := workspaceColors[c]; ok {
		return color
	}
	return workspaceColors[model.DefaultColor]
}
