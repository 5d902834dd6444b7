package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// Entry is one searchable link together with its workspace name.
type Entry struct {
	Link          *model.Link
	WorkspaceName string
}

// Result represents a fuzzy search match.
type Result struct {
	Entry          Entry
	MatchedIndexes []int
	Score          int
}

// entryTitles implements fuzzy.Source for an entry slice.
type entryTitles []Entry

func (et entryTitles) String(i int) string {
	return et[i].Link.Title
}

func (et entryTitles) Len() int {
	return len(et)
}

// CollectEntries gathers every link from every workspace, tree links
// first, then pinned links, in stored order.
func CollectEntries(state *model.State) []Entry {
	var entries []Entry
	for i := range state.Workspaces {
		ws := &state.Workspaces[i]
		for _, link := range ws.Items.Links() {
			entries = append(entries, Entry{Link: link, WorkspaceName: ws.Name})
		}
		for j := range ws.PinnedLinks {
			entries = append(entries, Entry{Link: &ws.PinnedLinks[j], WorkspaceName: ws.Name})
		}
	}
	return entries
}

// FuzzySearchLinks searches all links by title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchLinks(state *model.State, query string) []Result {
	if query == "" {
		return nil
	}

	entries := entryTitles(CollectEntries(state))
	matches := fuzzy.FindFrom(query, entries)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Entry:          entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
