package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkmdev-sec/arcmark/internal/exporter"
	"github.com/pkmdev-sec/arcmark/internal/favicon"
	"github.com/pkmdev-sec/arcmark/internal/importer"
	"github.com/pkmdev-sec/arcmark/internal/model"
	"github.com/pkmdev-sec/arcmark/internal/picker"
	"github.com/pkmdev-sec/arcmark/internal/search"
	"github.com/pkmdev-sec/arcmark/internal/storage"
	"github.com/pkmdev-sec/arcmark/internal/store"
	"github.com/pkmdev-sec/arcmark/internal/tui"
	"github.com/pkmdev-sec/arcmark/internal/tui/layout"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: arcmark import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "icons":
			runFetchIcons()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run the sidebar
	runSidebar()
}

func printHelp() {
	help := `arcmark - workspace bookmark sidebar

Usage:
  arcmark               Open the interactive sidebar
  arcmark <query>       Quick search, pick and open
  arcmark import <file> Import bookmarks from HTML
  arcmark export [path] Export bookmarks to HTML
  arcmark icons         Fetch and cache favicons
  arcmark help          Show this help

Sidebar Keybindings:
  Navigation:
    j/k         Move down/up
    gg/G        Jump to top/bottom
    tab / [ ]   Switch workspace
    l/Enter     Toggle folder / open link

  Editing:
    a/A         Add link/folder
    r           Rename
    d           Delete
    p           Pin / unpin link
    space, f    Mark items, group into folder
    m           Move to next workspace
    W           New workspace
    C           Cycle workspace color

  Other:
    /           Filter tree
    Y           Copy URL to clipboard
    o           Open in browser
    q           Quit

Data Storage:
  ~/.config/arcmark/bookmarks.json
`
	fmt.Print(help)
}

// loadConfig reads the preferences file, creating it with defaults.
func loadConfig() *storage.Config {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// openStore loads the persisted state behind a store.
func openStore() *store.Store {
	st, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	state, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}
	return store.New(state, st)
}

// runSidebar runs the full interactive sidebar.
func runSidebar() {
	s := openStore()
	config := loadConfig()

	layoutCfg := layout.DefaultConfig()
	if config.SidebarWidth > 0 {
		layoutCfg.SidebarWidth = config.SidebarWidth
	}

	app := tui.NewApp(tui.AppParams{
		Store:          s,
		Layout:         &layoutCfg,
		ConfirmDeletes: config.ConfirmDeletes,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected link.
func runQuickSearch(query string) {
	s := openStore()

	results := search.FuzzySearchLinks(s.State(), query)

	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.Link

	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Entry.Link
		fmt.Printf("Opening: %s\n", selected.Title)
	} else {
		// Multiple results - show picker
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedLink()
	}

	if selected == nil {
		os.Exit(0)
	}

	tui.OpenURL(selected.URL)
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	s := openStore()

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	nodes, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, skipped := s.MergeImported(nodes)

	fmt.Printf("Imported %d bookmarks into %q", added, s.CurrentWorkspace().Name)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	s := openStore()
	html := exporter.ExportHTML(s.State())

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	count := 0
	for _, ws := range s.Workspaces() {
		count += len(ws.PinnedLinks)
		for range ws.Items.Links() {
			count++
		}
	}
	fmt.Printf("Exported %d bookmarks from %d workspaces to %s\n",
		count, len(s.Workspaces()), outputPath)
}

// runFetchIcons handles the icons subcommand.
func runFetchIcons() {
	config := loadConfig()
	if !config.FetchFavicons {
		fmt.Println("Favicon fetching is disabled in config")
		return
	}

	iconsDir, err := storage.IconsDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating icons directory: %v\n", err)
		os.Exit(1)
	}

	s := openStore()

	var links []*model.Link
	for i := range s.State().Workspaces {
		ws := &s.State().Workspaces[i]
		links = append(links, ws.Items.Links()...)
		for j := range ws.PinnedLinks {
			links = append(links, &ws.PinnedLinks[j])
		}
	}
	if len(links) == 0 {
		fmt.Println("No bookmarks to fetch icons for")
		return
	}

	timeout := time.Duration(config.FetchTimeoutSec) * time.Second
	results := favicon.FetchAll(links, iconsDir, config.FetchConcurrent, timeout,
		func(completed, total int) {
			fmt.Printf("\rFetching icons %d/%d", completed, total)
		})
	fmt.Println()

	paths := make(map[string]string)
	fetched, failed := 0, 0
	for _, r := range results {
		if r.Path != "" {
			paths[r.Link.ID] = r.Path
			fetched++
		} else {
			failed++
		}
	}
	s.ApplyFaviconPaths(paths)

	fmt.Printf("Cached %d icons in %s", fetched, iconsDir)
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	fmt.Println()
}
