package store_test

import (
	"fmt"
	"testing"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

func TestStore_PinLink_RemovesFromTree(t *testing.T) {
	s := newTestStore(t)
	linkID := s.AddLink("https://a.com", "A", nil)

	s.PinLink(linkID)

	if s.NodeByID(linkID) != nil {
		t.Error("a pinned link must no longer be found in the tree")
	}
	pinned := s.PinnedLinks()
	if len(pinned) != 1 || pinned[0].ID != linkID {
		t.Fatalf("expected the link in the pinned list, got %v", pinned)
	}
}

func TestStore_UnpinLink_ReversesExactly(t *testing.T) {
	s := newTestStore(t)
	s.AddLink("https://first.com", "First", nil)
	linkID := s.AddLink("https://a.com", "A", nil)

	s.PinLink(linkID)
	s.UnpinLink(linkID)

	if len(s.PinnedLinks()) != 0 {
		t.Error("expected the pinned list empty again")
	}
	link, ok := s.NodeByID(linkID).(*model.Link)
	if !ok {
		t.Fatal("expected the link back in the tree")
	}
	if link.URL != "https://a.com" || link.Title != "A" {
		t.Error("unpinning must restore the link unchanged")
	}
	// Reinserted at the root of the item list
	if rootIDs(s)[0] != linkID {
		t.Errorf("expected the link at the front of the root list, got %v", rootIDs(s))
	}
}

func TestStore_PinLink_BoundAtTwelve(t *testing.T) {
	s := newTestStore(t)

	var ids []string
	for i := 0; i < model.MaxPinnedLinks+1; i++ {
		ids = append(ids, s.AddLink(fmt.Sprintf("https://site%d.com", i), fmt.Sprintf("Site %d", i), nil))
	}

	for _, id := range ids {
		s.PinLink(id)
	}

	if len(s.PinnedLinks()) != model.MaxPinnedLinks {
		t.Errorf("expected the pinned list capped at %d, got %d",
			model.MaxPinnedLinks, len(s.PinnedLinks()))
	}
	// The thirteenth link stays in the tree
	last := ids[len(ids)-1]
	if s.NodeByID(last) == nil {
		t.Error("the refused link must remain in the tree")
	}
}

func TestStore_PinLink_RefusesNonLinks(t *testing.T) {
	s := newTestStore(t)
	folderID := s.AddFolder("Dev", nil, true)

	s.PinLink(folderID)
	if len(s.PinnedLinks()) != 0 {
		t.Error("folders must not be pinnable")
	}

	s.PinLink("nope")
	if len(s.PinnedLinks()) != 0 {
		t.Error("unknown ids must not be pinnable")
	}
}

func TestStore_UnpinLink_UnknownID(t *testing.T) {
	s := newTestStore(t)
	linkID := s.AddLink("https://a.com", "A", nil)
	s.PinLink(linkID)

	s.UnpinLink("nope")
	if len(s.PinnedLinks()) != 1 {
		t.Error("unpinning an unknown id must be a no-op")
	}
}
