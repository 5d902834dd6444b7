package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkmdev-sec/arcmark/internal/tui/layout"
)

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.renderList())
	b.WriteString("\n")
	b.WriteString(a.renderStatus())

	return b.String()
}

// renderTabs renders the workspace tab strip, colored per workspace.
func (a App) renderTabs() string {
	current := a.store.CurrentWorkspace().ID
	var tabs []string
	for _, ws := range a.store.Workspaces() {
		style := a.styles.TabInactive
		if ws.ID == current {
			style = a.styles.TabActive
		}
		style = style.Foreground(WorkspaceColor(ws.ColorID))
		tabs = append(tabs, style.Render(ws.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderList renders the pinned section and the tree rows, scrolled so
// the cursor stays visible.
func (a App) renderList() string {
	var b strings.Builder

	height := layout.ListHeight(a.height, a.layout)
	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}
	end := start + height
	if end > len(a.items) {
		end = len(a.items)
	}

	pinnedShown := false
	treeShown := false

	for i := start; i < end; i++ {
		item := a.items[i]

		if item.IsPinned() && !pinnedShown {
			b.WriteString(a.styles.SectionHead.Render("PINNED"))
			b.WriteString("\n")
			pinnedShown = true
		}
		if !item.IsPinned() && !treeShown {
			if pinnedShown {
				b.WriteString(a.styles.SectionHead.Render("TREE"))
				b.WriteString("\n")
			}
			treeShown = true
		}

		b.WriteString(a.renderItem(item, i == a.cursor))
		b.WriteString("\n")
	}

	if len(a.items) == 0 {
		if a.query != "" {
			b.WriteString(a.styles.StatusBar.Render("no matches"))
		} else {
			b.WriteString(a.styles.StatusBar.Render("empty workspace"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderItem renders a single row.
func (a App) renderItem(item Item, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	mark := " "
	if a.marked[item.ID()] {
		mark = "*"
	}

	indent := strings.Repeat(" ", item.Depth*a.layout.Indent)

	var label string
	var style lipgloss.Style
	switch item.Kind {
	case ItemFolder:
		arrow := "▸"
		if item.Folder.IsExpanded {
			arrow = "▾"
		}
		label = fmt.Sprintf("%s %s", arrow, item.Folder.Name)
		style = a.styles.Folder
	case ItemPinned:
		label = fmt.Sprintf("★ %s", item.Link.Title)
		style = a.styles.Pinned
	default:
		label = item.Link.Title
		style = a.styles.Normal
	}

	if selected {
		style = a.styles.Selected
	} else if a.marked[item.ID()] {
		style = a.styles.Marked
	}

	width := a.layout.SidebarWidth - len(cursor) - len(mark) - item.Depth*a.layout.Indent
	text, _ := layout.Truncate(label, width, a.layout)

	return cursor + mark + indent + style.Render(text)
}

// renderStatus renders the input line or the hint bar.
func (a App) renderStatus() string {
	switch a.mode {
	case modeInput:
		return a.styles.FilterLabel.Render(inputLabel(a.action)) + " " + a.input.View()
	case modeFilter:
		return a.styles.FilterLabel.Render("filter:") + " " + a.filterInput.View()
	case modeConfirm:
		name := ""
		if node := a.store.NodeByID(a.pendingDelete); node != nil {
			name = node.DisplayName()
		}
		return a.styles.FilterLabel.Render(fmt.Sprintf("delete %q? (y/n)", name))
	}

	if a.query != "" {
		return a.styles.StatusBar.Render(fmt.Sprintf("filter: %q  (/ to edit, esc to clear)", a.query))
	}
	return a.styles.StatusBar.Render("a:add  A:folder  p:pin  /:filter  m:move  tab:workspace  q:quit")
}

func inputLabel(action inputAction) string {
	switch action {
	case actionAddLinkURL:
		return "url:"
	case actionAddLinkTitle:
		return "title:"
	case actionAddFolder:
		return "folder:"
	case actionRename:
		return "rename:"
	case actionNewWorkspace:
		return "workspace:"
	case actionGroupName:
		return "group into:"
	}
	return ">"
}
