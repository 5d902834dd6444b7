package tui

import "github.com/pkmdev-sec/arcmark/internal/model"

// ItemKind distinguishes the rows of the sidebar list.
type ItemKind int

const (
	ItemFolder ItemKind = iota
	ItemLink
	ItemPinned
)

// Item is one visible row: a folder, a tree link, or a pinned link.
type Item struct {
	Kind   ItemKind
	Depth  int // tree nesting level, 0 for root and pinned rows
	Folder *model.Folder
	Link   *model.Link
}

// ID returns the item's node id regardless of kind.
func (i Item) ID() string {
	if i.Kind == ItemFolder {
		return i.Folder.ID
	}
	return i.Link.ID
}

// Title returns a display title for the item.
func (i Item) Title() string {
	if i.Kind == ItemFolder {
		return i.Folder.Name
	}
	return i.Link.Title
}

// IsFolder returns true if this item is a folder.
func (i Item) IsFolder() bool {
	return i.Kind == ItemFolder
}

// IsPinned returns true if this item comes from the pinned list.
func (i Item) IsPinned() bool {
	return i.Kind == ItemPinned
}
