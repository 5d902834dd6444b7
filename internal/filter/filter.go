// Package filter computes filtered views of a bookmark tree for a
// search query. The input tree is never mutated; any folder whose
// children change is rebuilt.
package filter

import (
	"strings"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// Filter returns the nodes matching the query. Matching is a
// case-insensitive substring test against a link's title or URL, or a
// folder's name. A folder whose own name matches keeps its entire
// subtree; otherwise it is kept only if a descendant matches, with just
// the matching descendants. Kept folders come back expanded. A blank
// query returns the input unchanged.
func Filter(nodes model.NodeList, query string) model.NodeList {
	query = strings.TrimSpace(query)
	if query == "" {
		return nodes
	}
	return filterList(nodes, strings.ToLower(query))
}

func filterList(nodes model.NodeList, query string) model.NodeList {
	result := model.NodeList{}
	for _, n := range nodes {
		switch v := n.(type) {
		case *model.Link:
			if matchesLink(v, query) {
				result = append(result, v)
			}
		case *model.Folder:
			if strings.Contains(strings.ToLower(v.Name), query) {
				result = append(result, expandedCopy(v, v.Children))
				continue
			}
			if kept := filterList(v.Children, query); len(kept) > 0 {
				result = append(result, expandedCopy(v, kept))
			}
		}
	}
	return result
}

func matchesLink(l *model.Link, query string) bool {
	return strings.Contains(strings.ToLower(l.Title), query) ||
		strings.Contains(strings.ToLower(l.URL), query)
}

// expandedCopy rebuilds a folder around the given children so the
// original tree stays untouched.
func expandedCopy(f *model.Folder, children model.NodeList) *model.Folder {
	return &model.Folder{
		ID:         f.ID,
		Name:       f.Name,
		Children:   children,
		IsExpanded: true,
	}
}
