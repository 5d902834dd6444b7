package store

import (
	"strings"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// DuplicateMatch names where an already-saved copy of a URL lives.
type DuplicateMatch struct {
	WorkspaceName string
	LinkTitle     string
}

// FindDuplicateLink searches every workspace's tree for a link whose
// normalized URL matches, iterating workspaces in stored order and
// nodes depth-first. Returns nil if no duplicate exists.
func (s *Store) FindDuplicateLink(url string) *DuplicateMatch {
	want := NormalizeURL(url)
	for i := range s.state.Workspaces {
		ws := &s.state.Workspaces[i]
		for _, link := range ws.Items.Links() {
			if NormalizeURL(link.URL) == want {
				return &DuplicateMatch{WorkspaceName: ws.Name, LinkTitle: link.Title}
			}
		}
	}
	return nil
}

// NormalizeURL produces the canonical form used for duplicate
// detection: lowercased, scheme forced to https, fragment stripped,
// trailing slash removed. The trailing slash is trimmed both before and
// after scheme normalization, and a "www." host prefix is kept as-is.
// Both quirks are load-bearing: stored data was deduplicated against
// exactly this form, so they must not be "fixed".
func NormalizeURL(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "/")

	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}

	switch {
	case strings.HasPrefix(s, "https://"):
	case strings.HasPrefix(s, "http://"):
		s = "https://" + strings.TrimPrefix(s, "http://")
	default:
		s = "https://" + s
	}

	return strings.TrimSuffix(s, "/")
}

// MergeImported appends imported nodes to the current workspace's root
// list. Links whose normalized URL already exists anywhere are dropped
// from the imported tree first. Returns how many links were added and
// how many were skipped as duplicates.
func (s *Store) MergeImported(nodes model.NodeList) (added, skipped int) {
	pruned := make(model.NodeList, 0, len(nodes))
	for _, n := range nodes {
		if kept, a, sk := s.pruneDuplicates(n); kept != nil {
			pruned = append(pruned, kept)
			added += a
			skipped += sk
		} else {
			skipped += sk
		}
	}
	if len(pruned) == 0 {
		return 0, skipped
	}

	ws := s.CurrentWorkspace()
	ws.Items = append(ws.Items, pruned...)
	s.commit()
	return added, skipped
}

// pruneDuplicates walks an imported subtree, dropping duplicate links.
// Empty folders that only contained duplicates are kept so the imported
// structure stays recognizable.
func (s *Store) pruneDuplicates(n model.Node) (model.Node, int, int) {
	switch v := n.(type) {
	case *model.Link:
		if s.FindDuplicateLink(v.URL) != nil {
			return nil, 0, 1
		}
		return v, 1, 0
	case *model.Folder:
		added, skipped := 0, 0
		kept := make(model.NodeList, 0, len(v.Children))
		for _, child := range v.Children {
			if c, a, sk := s.pruneDuplicates(child); c != nil {
				kept = append(kept, c)
				added += a
				skipped += sk
			} else {
				skipped += sk
			}
		}
		v.Children = kept
		return v, added, skipped
	}
	return nil, 0, 0
}
