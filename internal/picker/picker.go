package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkmdev-sec/arcmark/internal/model"
	"github.com/pkmdev-sec/arcmark/internal/search"
)

// keyMap holds the picker key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// pickerStyles groups the lipgloss styles for the result list.
type pickerStyles struct {
	header    lipgloss.Style
	selected  lipgloss.Style
	normal    lipgloss.Style
	url       lipgloss.Style
	workspace lipgloss.Style
	hint      lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).MarginBottom(1),
		selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		url:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		workspace: lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Picker lets the user choose one link from a list of search results.
type Picker struct {
	results []search.Result
	query   string
	keys    keyMap
	styles  pickerStyles

	cursor    int
	selected  bool
	cancelled bool
}

// New creates a Picker over the given search results.
func New(results []search.Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		keys:    defaultKeyMap(),
		styles:  defaultPickerStyles(),
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Cancel):
		p.cancelled = true
		return p, tea.Quit

	case key.Matches(keyMsg, p.keys.Choose):
		p.selected = true
		return p, tea.Quit

	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(p.results)-1 {
			p.cursor++
		}

	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.header.Render(
		fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	for i := range p.results {
		b.WriteString(p.renderRow(i))
	}

	b.WriteString("\n")
	b.WriteString(p.styles.hint.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// renderRow renders one two-line result: title with workspace label,
// then the URL underneath.
func (p Picker) renderRow(i int) string {
	entry := p.results[i].Entry

	marker, style := "  ", p.styles.normal
	if i == p.cursor {
		marker, style = "> ", p.styles.selected
	}

	return fmt.Sprintf("%s%s %s\n   %s\n",
		marker,
		style.Render(entry.Link.Title),
		p.styles.workspace.Render("["+entry.WorkspaceName+"]"),
		p.styles.url.Render(entry.Link.URL),
	)
}

// SelectedLink returns the chosen link, or nil when nothing was chosen.
func (p Picker) SelectedLink() *model.Link {
	if p.cancelled || !p.selected || p.cursor >= len(p.results) {
		return nil
	}
	return p.results[p.cursor].Entry.Link
}

// Cancelled reports whether the user backed out.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
