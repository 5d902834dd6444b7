package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/arcmark-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("arcmark-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the full state to Netscape bookmark HTML format.
// Each workspace becomes a top-level folder; its pinned links come
// first inside it.
func ExportHTML(state *model.State) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for i := range state.Workspaces {
		ws := &state.Workspaces[i]
		prefix := "    "
		fmt.Fprintf(&b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(ws.Name))
		fmt.Fprintf(&b, "%s<DL><p>\n", prefix)

		for j := range ws.PinnedLinks {
			writeLink(&b, &ws.PinnedLinks[j], 2)
		}
		writeNodes(&b, ws.Items, 2)

		fmt.Fprintf(&b, "%s</DL><p>\n", prefix)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeNodes recursively writes a node list at the given indent level.
func writeNodes(b *strings.Builder, nodes model.NodeList, indent int) {
	prefix := strings.Repeat("    ", indent)

	for _, n := range nodes {
		switch v := n.(type) {
		case *model.Folder:
			fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(v.Name))
			fmt.Fprintf(b, "%s<DL><p>\n", prefix)
			writeNodes(b, v.Children, indent+1)
			fmt.Fprintf(b, "%s</DL><p>\n", prefix)
		case *model.Link:
			writeLink(b, v, indent)
		}
	}
}

func writeLink(b *strings.Builder, link *model.Link, indent int) {
	prefix := strings.Repeat("    ", indent)
	fmt.Fprintf(b,
		"%s<DT><A HREF=\"%s\">%s</A>\n",
		prefix,
		html.EscapeString(link.URL),
		html.EscapeString(link.Title),
	)
}
