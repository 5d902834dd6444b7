package store

import "github.com/pkmdev-sec/arcmark/internal/model"

// PinnedLinks returns the current workspace's pinned list.
func (s *Store) PinnedLinks() []model.Link {
	return s.CurrentWorkspace().PinnedLinks
}

// PinLink promotes a tree link into the pinned list, removing it from
// the tree. Refused when the pinned list is full, the id is not a
// link, or the link is already pinned.
func (s *Store) PinLink(id string) {
	ws := s.CurrentWorkspace()
	if len(ws.PinnedLinks) >= model.MaxPinnedLinks {
		return
	}
	if ws.IsPinned(id) {
		return
	}
	link, ok := ws.Items.FindByID(id).(*model.Link)
	if !ok {
		return
	}
	ws.Items.RemoveByID(id)
	ws.PinnedLinks = append(ws.PinnedLinks, *link)
	s.commit()
}

// UnpinLink moves a pinned link back to the front of the tree's root
// list. No-op if the id is not in the pinned list.
func (s *Store) UnpinLink(id string) {
	ws := s.CurrentWorkspace()
	for i := range ws.PinnedLinks {
		if ws.PinnedLinks[i].ID == id {
			link := ws.PinnedLinks[i]
			ws.PinnedLinks = append(ws.PinnedLinks[:i], ws.PinnedLinks[i+1:]...)
			ws.Items.InsertAt(&link, 0)
			s.commit()
			return
		}
	}
}
