package store_test

import (
	"testing"

	"github.com/pkmdev-sec/arcmark/internal/model"
	"github.com/pkmdev-sec/arcmark/internal/store"
)

func rootIDs(s *store.Store) []string {
	items := s.CurrentWorkspace().Items
	ids := make([]string, len(items))
	for i, n := range items {
		ids[i] = n.NodeID()
	}
	return ids
}

func TestStore_AddFolderAndLink(t *testing.T) {
	s := newTestStore(t)

	folderID := s.AddFolder("Dev", nil, true)
	if folderID == "" {
		t.Fatal("expected a folder id")
	}

	linkID := s.AddLink("https://go.dev", "Go", &folderID)
	if linkID == "" {
		t.Fatal("expected a link id")
	}

	folder, ok := s.NodeByID(folderID).(*model.Folder)
	if !ok {
		t.Fatal("expected to find the folder")
	}
	if len(folder.Children) != 1 || folder.Children[0].NodeID() != linkID {
		t.Error("expected the link inside the folder")
	}

	// Unknown parent refuses the insert
	bogus := "nope"
	if id := s.AddLink("https://x.com", "X", &bogus); id != "" {
		t.Error("expected no id for an unknown parent")
	}
}

func TestStore_RenameNode(t *testing.T) {
	s := newTestStore(t)
	folderID := s.AddFolder("Dev", nil, true)
	linkID := s.AddLink("https://go.dev", "Go", nil)

	s.RenameNode(folderID, "Development")
	if s.NodeByID(folderID).DisplayName() != "Development" {
		t.Error("expected folder renamed")
	}

	s.RenameNode(linkID, "Go Homepage")
	if s.NodeByID(linkID).DisplayName() != "Go Homepage" {
		t.Error("expected link retitled")
	}

	// Unknown id is a silent no-op
	s.RenameNode("nope", "X")
}

func TestStore_DeleteNode_RemovesSubtree(t *testing.T) {
	s := newTestStore(t)
	folderID := s.AddFolder("Dev", nil, true)
	linkID := s.AddLink("https://go.dev", "Go", &folderID)

	s.DeleteNode(folderID)
	if s.NodeByID(folderID) != nil {
		t.Error("expected folder removed")
	}
	if s.NodeByID(linkID) != nil {
		t.Error("expected nested link removed with the folder")
	}
}

func TestStore_MoveNode_ReorderAtRoot(t *testing.T) {
	s := newTestStore(t)
	idA := s.AddLink("https://a.com", "A", nil)
	idB := s.AddLink("https://b.com", "B", nil)

	s.MoveNode(idB, nil, 0)

	got := rootIDs(s)
	if len(got) != 2 || got[0] != idB || got[1] != idA {
		t.Errorf("expected root order [B, A], got %v", got)
	}
}

func TestStore_MoveNode_SameParentLaterIndex(t *testing.T) {
	s := newTestStore(t)
	idA := s.AddLink("https://a.com", "A", nil)
	idB := s.AddLink("https://b.com", "B", nil)
	idC := s.AddLink("https://c.com", "C", nil)

	// Drop A after B: the target index accounts for A's removed slot.
	s.MoveNode(idA, nil, 2)

	got := rootIDs(s)
	want := []string{idB, idA, idC}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestStore_MoveNode_IntoFolder(t *testing.T) {
	s := newTestStore(t)
	folderID := s.AddFolder("Dev", nil, true)
	linkID := s.AddLink("https://go.dev", "Go", nil)

	s.MoveNode(linkID, &folderID, 0)

	folder := s.NodeByID(folderID).(*model.Folder)
	if len(folder.Children) != 1 || folder.Children[0].NodeID() != linkID {
		t.Error("expected the link moved into the folder")
	}
	loc, ok := s.NodeLocation(linkID)
	if !ok || loc.ParentID == nil || *loc.ParentID != folderID {
		t.Errorf("expected location in folder, got %+v", loc)
	}
}

func TestStore_MoveNode_CycleRefused(t *testing.T) {
	s := newTestStore(t)
	outerID := s.AddFolder("Outer", nil, true)
	innerID := s.AddFolder("Inner", &outerID, true)
	leafID := s.AddFolder("Leaf", &innerID, true)

	before := s.CurrentWorkspace().Items.CountNodes()

	// Into itself
	s.MoveNode(outerID, &outerID, 0)
	// Into a direct child
	s.MoveNode(outerID, &innerID, 0)
	// Into a deeper descendant
	s.MoveNode(outerID, &leafID, 0)

	if s.CurrentWorkspace().Items.CountNodes() != before {
		t.Error("cyclic moves must leave the node count unchanged")
	}
	loc, ok := s.NodeLocation(outerID)
	if !ok || loc.ParentID != nil {
		t.Error("cyclic moves must leave the tree shape unchanged")
	}
}

func TestStore_MoveNode_CycleDoesNotNotify(t *testing.T) {
	s := newTestStore(t)
	outerID := s.AddFolder("Outer", nil, true)
	innerID := s.AddFolder("Inner", &outerID, true)

	fired := 0
	s.OnChange(func() { fired++ })
	s.MoveNode(outerID, &innerID, 0)
	if fired != 0 {
		t.Errorf("refused move must not notify, got %d", fired)
	}
}

func TestStore_MoveNodeToWorkspace(t *testing.T) {
	s := newTestStore(t)
	linkID := s.AddLink("https://a.com", "A", nil)

	// Same workspace is a no-op
	s.MoveNodeToWorkspace(linkID, "ws1")
	if s.NodeByID(linkID) == nil {
		t.Fatal("move to the same workspace must be a no-op")
	}

	s.MoveNodeToWorkspace(linkID, "ws2")
	if s.NodeByID(linkID) != nil {
		t.Error("expected the link gone from ws1")
	}
	ws2 := s.State().WorkspaceByID("ws2")
	if !ws2.Items.Contains(linkID) {
		t.Error("expected the link appended to ws2's root")
	}
}

func TestStore_MoveNodesToWorkspace_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	idA := s.AddLink("https://a.com", "A", nil)
	folderID := s.AddFolder("Dev", nil, true)
	idB := s.AddLink("https://b.com", "B", &folderID)

	s.MoveNodesToWorkspace([]string{idA, idB, "nope"}, "ws2")

	ws2 := s.State().WorkspaceByID("ws2")
	if len(ws2.Items) != 2 {
		t.Fatalf("expected 2 moved nodes, got %d", len(ws2.Items))
	}
	if ws2.Items[0].NodeID() != idA || ws2.Items[1].NodeID() != idB {
		t.Error("expected relative order preserved")
	}
}

func TestStore_SetFolderExpanded(t *testing.T) {
	s := newTestStore(t)
	folderID := s.AddFolder("Dev", nil, true)
	linkID := s.AddLink("https://a.com", "A", nil)

	s.SetFolderExpanded(folderID, false)
	if s.NodeByID(folderID).(*model.Folder).IsExpanded {
		t.Error("expected folder collapsed")
	}

	// Links are silently ignored
	s.SetFolderExpanded(linkID, true)
}

func TestStore_GroupIntoNewFolder(t *testing.T) {
	s := newTestStore(t)
	idA := s.AddLink("https://a.com", "A", nil)
	folderID := s.AddFolder("Dev", nil, true)
	idB := s.AddLink("https://b.com", "B", &folderID)

	newID := s.GroupIntoNewFolder([]string{idB, idA}, "Grouped")
	if newID == nil {
		t.Fatal("expected a new folder id")
	}

	folder, ok := s.NodeByID(*newID).(*model.Folder)
	if !ok {
		t.Fatal("expected the new folder in the tree")
	}
	if len(folder.Children) != 2 ||
		folder.Children[0].NodeID() != idB || folder.Children[1].NodeID() != idA {
		t.Error("expected children in the order given")
	}

	// Appended at the workspace root
	root := rootIDs(s)
	if root[len(root)-1] != *newID {
		t.Error("expected the new folder appended to the root list")
	}
}

func TestStore_GroupIntoNewFolder_NoneFound(t *testing.T) {
	s := newTestStore(t)
	if id := s.GroupIntoNewFolder([]string{"x", "y"}, "Grouped"); id != nil {
		t.Error("expected nil when no ids were found")
	}
}
