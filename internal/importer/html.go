package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML into a nested node
// list ready to merge into a workspace.
func ParseHTMLBookmarks(r io.Reader) (model.NodeList, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	roots := model.NodeList{}

	// Track the folder nesting via a stack of child lists. The top of
	// the stack is where new nodes are appended.
	stack := []*model.NodeList{&roots}
	var pendingFolder *model.Folder // folder waiting for its DL

	top := func() *model.NodeList { return stack[len(stack)-1] }

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - get name from text content
				name := getTextContent(n)
				if name != "" {
					folder := model.NewFolder(model.NewFolderParams{Name: name})
					list := top()
					*list = append(*list, folder)

					// Will be pushed when we see the next DL
					pendingFolder = folder
				}
				return // Don't recurse into H3

			case "a":
				// Bookmark definition
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				link := model.NewLink(model.NewLinkParams{Title: title, URL: href})
				list := top()
				*list = append(*list, link)
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				pushed := false
				if pendingFolder != nil {
					stack = append(stack, &pendingFolder.Children)
					pendingFolder = nil
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					stack = stack[:len(stack)-1]
				}
				return // Don't recurse further, we handled children
			}
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return roots, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
