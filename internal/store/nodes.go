package store

import "github.com/pkmdev-sec/arcmark/internal/model"

// AddFolder inserts a new empty folder at the end of the target list
// (the root list when parentID is nil) and returns its id. Returns ""
// if parentID does not name a folder in the current workspace.
func (s *Store) AddFolder(name string, parentID *string, expanded bool) string {
	target := s.targetList(parentID)
	if target == nil {
		return ""
	}
	folder := model.NewFolder(model.NewFolderParams{Name: name, Expanded: expanded})
	*target = append(*target, folder)
	s.commit()
	return folder.ID
}

// AddLink inserts a new link at the end of the target list and returns
// its id. Returns "" if parentID does not name a folder.
func (s *Store) AddLink(url, title string, parentID *string) string {
	target := s.targetList(parentID)
	if target == nil {
		return ""
	}
	link := model.NewLink(model.NewLinkParams{Title: title, URL: url})
	*target = append(*target, link)
	s.commit()
	return link.ID
}

// targetList resolves a parent folder id to its child list, or the
// current workspace's root list for nil. Returns nil for unknown ids.
func (s *Store) targetList(parentID *string) *model.NodeList {
	ws := s.CurrentWorkspace()
	if parentID == nil {
		return &ws.Items
	}
	if folder, ok := ws.Items.FindByID(*parentID).(*model.Folder); ok {
		return &folder.Children
	}
	return nil
}

// NodeByID finds a node in the current workspace's tree. Pinned links
// are not part of the tree and are not found here.
func (s *Store) NodeByID(id string) model.Node {
	return s.CurrentWorkspace().Items.FindByID(id)
}

// NodeLocation reports the parent folder id (nil for root) and index of
// a node in the current workspace's tree.
func (s *Store) NodeLocation(id string) (model.Location, bool) {
	return s.CurrentWorkspace().Items.Locate(id)
}

// RenameNode renames a folder or retitles a link. No-op if the id is
// not found anywhere in the current workspace's tree.
func (s *Store) RenameNode(id, name string) {
	switch n := s.NodeByID(id).(type) {
	case *model.Folder:
		n.Name = name
	case *model.Link:
		n.Title = name
	default:
		return
	}
	s.commit()
}

// DeleteNode removes a node, and its subtree if it is a folder,
// wherever it sits in the current workspace's tree.
func (s *Store) DeleteNode(id string) {
	ws := s.CurrentWorkspace()
	if removed := ws.Items.RemoveByID(id); removed == nil {
		return
	}
	s.commit()
}

// SetFolderExpanded toggles the expand flag on a folder. No-op for
// links and unknown ids.
func (s *Store) SetFolderExpanded(id string, expanded bool) {
	folder, ok := s.NodeByID(id).(*model.Folder)
	if !ok {
		return
	}
	folder.IsExpanded = expanded
	s.commit()
}

// MoveNode relocates a node to a new parent (nil = root) at the given
// index. The move is refused when it would create a cycle: a folder can
// never be moved into itself or one of its own descendants. Moving
// within the same parent to a later index decrements the target index
// by one, so the index keeps drop-position semantics.
func (s *Store) MoveNode(id string, newParentID *string, index int) {
	ws := s.CurrentWorkspace()

	node := ws.Items.FindByID(id)
	if node == nil {
		return
	}
	if newParentID != nil {
		if *newParentID == id {
			return
		}
		if folder, ok := node.(*model.Folder); ok && folder.Children.Contains(*newParentID) {
			return
		}
		if _, ok := ws.Items.FindByID(*newParentID).(*model.Folder); !ok {
			return
		}
	}

	loc, _ := ws.Items.Locate(id)
	sameParent := (loc.ParentID == nil) == (newParentID == nil) &&
		(loc.ParentID == nil || *loc.ParentID == *newParentID)
	if sameParent && index > loc.Index {
		index--
	}

	removed := ws.Items.RemoveByID(id)
	target := s.targetList(newParentID)
	target.InsertAt(removed, index)
	s.commit()
}

// MoveNodeToWorkspace removes a node from the current workspace's tree
// and appends it to the destination workspace's root list. Observers
// see one change, not a remove followed by an insert.
func (s *Store) MoveNodeToWorkspace(id, workspaceID string) {
	s.MoveNodesToWorkspace([]string{id}, workspaceID)
}

// MoveNodesToWorkspace is the batch variant of MoveNodeToWorkspace.
// Relative order of the moved nodes is preserved. Ids not found in the
// current tree are skipped.
func (s *Store) MoveNodesToWorkspace(ids []string, workspaceID string) {
	ws := s.CurrentWorkspace()
	dest := s.state.WorkspaceByID(workspaceID)
	if dest == nil || dest.ID == ws.ID {
		return
	}

	moved := 0
	for _, id := range ids {
		if removed := ws.Items.RemoveByID(id); removed != nil {
			dest.Items = append(dest.Items, removed)
			moved++
		}
	}
	if moved == 0 {
		return
	}
	s.commit()
}

// GroupIntoNewFolder removes each id from its current position, puts
// them into one new folder in the order given, and appends that folder
// to the workspace root. Returns nil if none of the ids were found.
func (s *Store) GroupIntoNewFolder(ids []string, folderName string) *string {
	ws := s.CurrentWorkspace()

	var gathered model.NodeList
	for _, id := range ids {
		if removed := ws.Items.RemoveByID(id); removed != nil {
			gathered = append(gathered, removed)
		}
	}
	if len(gathered) == 0 {
		return nil
	}

	folder := model.NewFolder(model.NewFolderParams{Name: folderName, Expanded: true})
	folder.Children = gathered
	ws.Items = append(ws.Items, folder)
	s.commit()
	return &folder.ID
}

// SetLinkFavicon records a cached icon file path for a link, looking in
// both the tree and the pinned list. No-op for unknown ids.
func (s *Store) SetLinkFavicon(id, path string) {
	ws := s.CurrentWorkspace()
	if link, ok := ws.Items.FindByID(id).(*model.Link); ok {
		link.FaviconPath = path
		s.commit()
		return
	}
	for i := range ws.PinnedLinks {
		if ws.PinnedLinks[i].ID == id {
			ws.PinnedLinks[i].FaviconPath = path
			s.commit()
			return
		}
	}
}

// ApplyFaviconPaths records cached icon paths for many links at once,
// across every workspace, with a single commit. Unknown ids are
// skipped. Used by the favicon fetcher after a batch run.
func (s *Store) ApplyFaviconPaths(paths map[string]string) {
	if len(paths) == 0 {
		return
	}
	applied := 0
	for i := range s.state.Workspaces {
		ws := &s.state.Workspaces[i]
		for _, link := range ws.Items.Links() {
			if path, ok := paths[link.ID]; ok {
				link.FaviconPath = path
				applied++
			}
		}
		for j := range ws.PinnedLinks {
			if path, ok := paths[ws.PinnedLinks[j].ID]; ok {
				ws.PinnedLinks[j].FaviconPath = path
				applied++
			}
		}
	}
	if applied == 0 {
		return
	}
	s.commit()
}
