package layout

// Config holds tunable layout values for the sidebar.
type Config struct {
	// SidebarWidth is the rendered width of the sidebar pane.
	SidebarWidth int
	// MinListHeight is the smallest usable item list height.
	MinListHeight int
	// ChromeHeight is the vertical space taken by the tab strip,
	// section headers and status line.
	ChromeHeight int
	// Indent is the number of columns per tree nesting level.
	Indent int
	// Ellipsis is appended to truncated text.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		SidebarWidth:  42,
		MinListHeight: 5,
		ChromeHeight:  6,
		Indent:        2,
		Ellipsis:      "...",
	}
}

// ListHeight computes the item list height for a terminal height,
// clamped to the minimum.
func ListHeight(terminalHeight int, cfg Config) int {
	h := terminalHeight - cfg.ChromeHeight
	if h < cfg.MinListHeight {
		return cfg.MinListHeight
	}
	return h
}
