package tui

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkmdev-sec/arcmark/internal/filter"
	"github.com/pkmdev-sec/arcmark/internal/model"
	"github.com/pkmdev-sec/arcmark/internal/store"
	"github.com/pkmdev-sec/arcmark/internal/tui/layout"
)

// mode is the sidebar interaction mode.
type mode int

const (
	modeNormal mode = iota
	modeInput
	modeFilter
	modeConfirm
)

// inputAction names what the text input is collecting.
type inputAction int

const (
	actionAddLinkURL inputAction = iota
	actionAddLinkTitle
	actionAddFolder
	actionRename
	actionNewWorkspace
	actionGroupName
)

// App is the main bubbletea model for the bookmark sidebar.
type App struct {
	store  *store.Store
	keys   KeyMap
	styles Styles
	layout layout.Config

	mode   mode
	cursor int
	items  []Item

	// Delete confirmation state
	confirmDeletes bool
	pendingDelete  string

	// Text input state
	input      textinput.Model
	action     inputAction
	pendingURL string // collected URL while asking for the link title
	renameID   string

	// Live filter state
	filterInput textinput.Model
	query       string

	// Marked node ids for the group-into-folder operation
	marked map[string]bool

	// For gg command
	lastKeyWasG bool

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store          *store.Store
	Keys           *KeyMap        // optional, uses default if nil
	Styles         *Styles        // optional, uses default if nil
	Layout         *layout.Config // optional, uses default if nil
	ConfirmDeletes bool           // ask before deleting nodes
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.Layout != nil {
		cfg = *params.Layout
	}

	input := textinput.New()
	input.CharLimit = 512

	filterInput := textinput.New()
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 128

	app := App{
		store:          params.Store,
		keys:           keys,
		styles:         styles,
		layout:         cfg,
		confirmDeletes: params.ConfirmDeletes,
		input:          input,
		filterInput:    filterInput,
		marked:         map[string]bool{},
		width:          80,
		height:         24,
	}

	app.refreshItems()
	return app
}

// refreshItems rebuilds the visible rows: the pinned section, then the
// (possibly filtered) tree flattened through expanded folders.
func (a *App) refreshItems() {
	ws := a.store.CurrentWorkspace()
	a.items = a.items[:0]

	for i := range ws.PinnedLinks {
		a.items = append(a.items, Item{Kind: ItemPinned, Link: &ws.PinnedLinks[i]})
	}

	tree := filter.Filter(ws.Items, a.query)
	a.flatten(tree, 0)

	if a.cursor >= len(a.items) {
		a.cursor = len(a.items) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) flatten(nodes model.NodeList, depth int) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *model.Folder:
			a.items = append(a.items, Item{Kind: ItemFolder, Depth: depth, Folder: v})
			if v.IsExpanded {
				a.flatten(v.Children, depth+1)
			}
		case *model.Link:
			a.items = append(a.items, Item{Kind: ItemLink, Depth: depth, Link: v})
		}
	}
}

// selectedItem returns the item under the cursor, or nil.
func (a *App) selectedItem() *Item {
	if len(a.items) == 0 || a.cursor >= len(a.items) {
		return nil
	}
	return &a.items[a.cursor]
}

// Store returns the underlying store.
func (a App) Store() *store.Store {
	return a.store
}

// Items returns the current visible rows.
func (a App) Items() []Item {
	return a.items
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Query returns the active filter query.
func (a App) Query() string {
	return a.query
}

// WithDimensions returns a copy with fixed dimensions (for tests).
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeInput:
			return a.updateInput(msg)
		case modeFilter:
			return a.updateFilter(msg)
		case modeConfirm:
			return a.updateConfirm(msg)
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

// updateNormal handles keys in normal mode.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc && a.query != "" {
		a.query = ""
		a.filterInput.Reset()
		a.refreshItems()
		return a, nil
	}

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.items) > 0 && a.cursor < len(a.items)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.items) > 0 {
			a.cursor = len(a.items) - 1
		}

	case key.Matches(msg, a.keys.Toggle):
		if item := a.selectedItem(); item != nil {
			if item.IsFolder() {
				a.store.SetFolderExpanded(item.ID(), !item.Folder.IsExpanded)
				a.refreshItems()
			} else {
				OpenURL(item.Link.URL)
			}
		}

	case key.Matches(msg, a.keys.Open):
		if item := a.selectedItem(); item != nil && !item.IsFolder() {
			OpenURL(item.Link.URL)
		}

	case key.Matches(msg, a.keys.YankURL):
		if item := a.selectedItem(); item != nil && !item.IsFolder() {
			_ = clipboard.WriteAll(item.Link.URL)
		}

	case key.Matches(msg, a.keys.AddLink):
		return a.startInput(actionAddLinkURL, "https://...", ""), nil

	case key.Matches(msg, a.keys.AddFolder):
		return a.startInput(actionAddFolder, "Folder name", ""), nil

	case key.Matches(msg, a.keys.NewWorkspace):
		return a.startInput(actionNewWorkspace, "Workspace name", ""), nil

	case key.Matches(msg, a.keys.Rename):
		if item := a.selectedItem(); item != nil && !item.IsPinned() {
			app := a.startInput(actionRename, "", item.Title())
			app.renameID = item.ID()
			return app, nil
		}

	case key.Matches(msg, a.keys.Delete):
		if item := a.selectedItem(); item != nil && !item.IsPinned() {
			if a.confirmDeletes {
				a.mode = modeConfirm
				a.pendingDelete = item.ID()
				return a, nil
			}
			delete(a.marked, item.ID())
			a.store.DeleteNode(item.ID())
			a.refreshItems()
		}

	case key.Matches(msg, a.keys.Pin):
		if item := a.selectedItem(); item != nil && !item.IsFolder() {
			if item.IsPinned() {
				a.store.UnpinLink(item.ID())
			} else {
				a.store.PinLink(item.ID())
			}
			a.refreshItems()
		}

	case key.Matches(msg, a.keys.Mark):
		if item := a.selectedItem(); item != nil && !item.IsPinned() {
			if a.marked[item.ID()] {
				delete(a.marked, item.ID())
			} else {
				a.marked[item.ID()] = true
			}
		}

	case key.Matches(msg, a.keys.Group):
		if len(a.marked) > 0 {
			return a.startInput(actionGroupName, "Folder name", ""), nil
		}

	case key.Matches(msg, a.keys.MoveRight):
		a.moveSelectionToNextWorkspace()

	case key.Matches(msg, a.keys.NextWorkspace):
		a.cycleWorkspace(1)

	case key.Matches(msg, a.keys.PrevWorkspace):
		a.cycleWorkspace(-1)

	case key.Matches(msg, a.keys.CycleColor):
		a.cycleWorkspaceColor()

	case key.Matches(msg, a.keys.Filter):
		a.mode = modeFilter
		a.filterInput.SetValue(a.query)
		a.filterInput.Focus()
	}

	return a, nil
}

// startInput switches to input mode for the given action.
func (a App) startInput(action inputAction, placeholder, value string) App {
	a.mode = modeInput
	a.action = action
	a.input.Placeholder = placeholder
	a.input.SetValue(value)
	a.input.CursorEnd()
	a.input.Focus()
	return a
}

// updateInput handles keys while the text input is active.
func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = modeNormal
		a.input.Blur()
		return a, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(a.input.Value())
		a.input.Blur()
		a.mode = modeNormal
		if value == "" {
			return a, nil
		}
		return a.submitInput(value), nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submitInput applies the collected input value.
func (a App) submitInput(value string) App {
	switch a.action {
	case actionAddLinkURL:
		a.pendingURL = value
		return a.startInput(actionAddLinkTitle, "Title", "")

	case actionAddLinkTitle:
		a.store.AddLink(a.pendingURL, value, a.targetFolderID())
		a.pendingURL = ""

	case actionAddFolder:
		a.store.AddFolder(value, a.targetFolderID(), true)

	case actionRename:
		a.store.RenameNode(a.renameID, value)
		a.renameID = ""

	case actionNewWorkspace:
		a.store.CreateWorkspace(value, model.RandomColor())
		a.cursor = 0

	case actionGroupName:
		ids := make([]string, 0, len(a.marked))
		// Keep visual order: walk the visible rows
		for _, item := range a.items {
			if a.marked[item.ID()] {
				ids = append(ids, item.ID())
			}
		}
		a.store.GroupIntoNewFolder(ids, value)
		a.marked = map[string]bool{}
	}

	a.refreshItems()
	return a
}

// targetFolderID picks where new nodes go: into the selected expanded
// folder, otherwise the workspace root.
func (a *App) targetFolderID() *string {
	if item := a.selectedItem(); item != nil && item.IsFolder() && item.Folder.IsExpanded {
		id := item.Folder.ID
		return &id
	}
	return nil
}

// updateConfirm handles the delete confirmation prompt. Only y deletes;
// any other key cancels.
func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.pendingDelete
	a.mode = modeNormal
	a.pendingDelete = ""

	if msg.Type == tea.KeyRunes && string(msg.Runes) == "y" {
		delete(a.marked, id)
		a.store.DeleteNode(id)
		a.refreshItems()
	}
	return a, nil
}

// updateFilter handles keys while the live filter is active.
func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = modeNormal
		a.query = ""
		a.filterInput.Blur()
		a.refreshItems()
		return a, nil

	case tea.KeyEnter:
		// Keep the filter applied, return to normal navigation
		a.mode = modeNormal
		a.filterInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	a.query = a.filterInput.Value()
	a.refreshItems()
	return a, cmd
}

// cycleWorkspace selects the neighboring workspace, wrapping around.
func (a *App) cycleWorkspace(delta int) {
	workspaces := a.store.Workspaces()
	if len(workspaces) < 2 {
		return
	}
	current := a.store.CurrentWorkspace().ID
	for i := range workspaces {
		if workspaces[i].ID == current {
			next := (i + delta + len(workspaces)) % len(workspaces)
			a.store.SelectWorkspace(workspaces[next].ID)
			a.cursor = 0
			a.query = ""
			a.marked = map[string]bool{}
			a.refreshItems()
			return
		}
	}
}

// cycleWorkspaceColor steps the current workspace to the next color.
func (a *App) cycleWorkspaceColor() {
	ws := a.store.CurrentWorkspace()
	colors := model.Colors()
	for i, c := range colors {
		if c == ws.ColorID {
			a.store.SetWorkspaceColor(ws.ID, colors[(i+1)%len(colors)])
			return
		}
	}
	a.store.SetWorkspaceColor(ws.ID, colors[0])
}

// moveSelectionToNextWorkspace sends the selected node (or all marked
// nodes) to the next workspace.
func (a *App) moveSelectionToNextWorkspace() {
	workspaces := a.store.Workspaces()
	if len(workspaces) < 2 {
		return
	}
	current := a.store.CurrentWorkspace().ID
	var destID string
	for i := range workspaces {
		if workspaces[i].ID == current {
			destID = workspaces[(i+1)%len(workspaces)].ID
			break
		}
	}

	if len(a.marked) > 0 {
		ids := make([]string, 0, len(a.marked))
		for _, item := range a.items {
			if a.marked[item.ID()] {
				ids = append(ids, item.ID())
			}
		}
		a.store.MoveNodesToWorkspace(ids, destID)
		a.marked = map[string]bool{}
	} else if item := a.selectedItem(); item != nil && !item.IsPinned() {
		a.store.MoveNodeToWorkspace(item.ID(), destID)
	}
	a.refreshItems()
}

// OpenURL opens a URL in the default browser.
func OpenURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
