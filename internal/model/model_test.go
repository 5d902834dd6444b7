package model_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

func stringPtr(s string) *string { return &s }

// testTree builds a small nested tree with stable ids.
func testTree() model.NodeList {
	return model.NodeList{
		&model.Folder{
			ID:   "f-work",
			Name: "Work",
			Children: model.NodeList{
				&model.Link{ID: "l-gh", Title: "GitHub", URL: "https://github.com"},
				&model.Folder{
					ID:   "f-infra",
					Name: "Infra",
					Children: model.NodeList{
						&model.Link{ID: "l-grafana", Title: "Grafana", URL: "https://grafana.example.com"},
					},
				},
			},
			IsExpanded: true,
		},
		&model.Link{ID: "l-hn", Title: "Hacker News", URL: "https://news.ycombinator.com"},
	}
}

func TestNodeList_TaggedUnionShape(t *testing.T) {
	nodes := model.NodeList{
		&model.Folder{ID: "f1", Name: "Dev", Children: model.NodeList{}},
		&model.Link{ID: "l1", Title: "Go Docs", URL: "https://go.dev"},
	}

	data, err := json.Marshal(nodes)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to re-read marshaled nodes: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 envelopes, got %d", len(raw))
	}

	var kind string
	if err := json.Unmarshal(raw[0]["type"], &kind); err != nil || kind != "folder" {
		t.Errorf("expected first envelope type 'folder', got %q", kind)
	}
	if _, ok := raw[0]["folder"]; !ok {
		t.Error("folder envelope missing 'folder' payload")
	}
	if _, ok := raw[0]["link"]; ok {
		t.Error("folder envelope should not carry a 'link' payload")
	}

	if err := json.Unmarshal(raw[1]["type"], &kind); err != nil || kind != "link" {
		t.Errorf("expected second envelope type 'link', got %q", kind)
	}
	if _, ok := raw[1]["link"]; !ok {
		t.Error("link envelope missing 'link' payload")
	}
}

func TestNodeList_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown type", `[{"type":"widget","widget":{}}]`},
		{"folder without payload", `[{"type":"folder"}]`},
		{"link without payload", `[{"type":"link"}]`},
		{"link with folder payload", `[{"type":"link","folder":{"id":"x","name":"y","children":[],"isExpanded":false}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nodes model.NodeList
			if err := json.Unmarshal([]byte(tt.json), &nodes); err == nil {
				t.Error("expected a hard parse failure, got nil error")
			}
		})
	}
}

func TestState_RoundTrip(t *testing.T) {
	state := &model.State{
		SchemaVersion: model.CurrentSchemaVersion,
		Workspaces: []model.Workspace{
			{
				ID:      "ws1",
				Name:    "Inbox",
				ColorID: model.ColorSky,
				Items:   testTree(),
				PinnedLinks: []model.Link{
					{ID: "l-pinned", Title: "Mail", URL: "https://mail.example.com"},
				},
			},
			{
				ID:          "ws2",
				Name:        "Reading",
				ColorID:     model.ColorLavender,
				Items:       model.NodeList{},
				PinnedLinks: []model.Link{},
			},
		},
		SelectedWorkspaceID: stringPtr("ws1"),
		IsSettingsSelected:  false,
	}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var got model.State
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if !reflect.DeepEqual(&got, state) {
		t.Errorf("round-trip changed the state:\n got: %+v\nwant: %+v", got, state)
	}
}

func TestColor_SerializesLowercase(t *testing.T) {
	ws := model.Workspace{
		ID: "ws1", Name: "Inbox", ColorID: model.ColorSky,
		Items: model.NodeList{}, PinnedLinks: []model.Link{},
	}

	data, err := json.Marshal(ws)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if !strings.Contains(string(data), `"colorId":"sky"`) {
		t.Errorf("expected colorId literal \"sky\", got %s", data)
	}
	if strings.Contains(string(data), `"Sky"`) {
		t.Errorf("colorId must never serialize capitalized: %s", data)
	}
}

func TestColor_UnknownFallsBackToSky(t *testing.T) {
	var ws model.Workspace
	raw := `{"id":"ws1","name":"Inbox","colorId":"neon","items":[],"pinnedLinks":[]}`
	if err := json.Unmarshal([]byte(raw), &ws); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if ws.ColorID != model.ColorSky {
		t.Errorf("expected fallback to sky, got %q", ws.ColorID)
	}
}

func TestNodeList_FindByID(t *testing.T) {
	tree := testTree()

	tests := []struct {
		name  string
		id    string
		found bool
	}{
		{"root link", "l-hn", true},
		{"nested link", "l-grafana", true},
		{"folder", "f-infra", true},
		{"missing", "nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.FindByID(tt.id)
			if (got != nil) != tt.found {
				t.Errorf("FindByID(%q) found=%v, want %v", tt.id, got != nil, tt.found)
			}
			if got != nil && got.NodeID() != tt.id {
				t.Errorf("FindByID(%q) returned node %q", tt.id, got.NodeID())
			}
		})
	}
}

func TestNodeList_RemoveByID(t *testing.T) {
	tree := testTree()
	before := tree.CountNodes()

	removed := tree.RemoveByID("l-grafana")
	if removed == nil || removed.NodeID() != "l-grafana" {
		t.Fatal("expected to remove the nested link")
	}
	if tree.Contains("l-grafana") {
		t.Error("removed node still present")
	}
	if tree.CountNodes() != before-1 {
		t.Errorf("expected %d nodes after removal, got %d", before-1, tree.CountNodes())
	}

	if tree.RemoveByID("nope") != nil {
		t.Error("removing a missing id should return nil")
	}
}

func TestNodeList_Locate(t *testing.T) {
	tree := testTree()

	loc, ok := tree.Locate("l-hn")
	if !ok || loc.ParentID != nil || loc.Index != 1 {
		t.Errorf("expected root location index 1, got %+v ok=%v", loc, ok)
	}

	loc, ok = tree.Locate("l-grafana")
	if !ok || loc.ParentID == nil || *loc.ParentID != "f-infra" || loc.Index != 0 {
		t.Errorf("expected location in f-infra at 0, got %+v ok=%v", loc, ok)
	}

	if _, ok := tree.Locate("nope"); ok {
		t.Error("expected no location for missing id")
	}
}

func TestNodeList_InsertAt(t *testing.T) {
	list := model.NodeList{
		&model.Link{ID: "a", Title: "A", URL: "https://a.com"},
		&model.Link{ID: "b", Title: "B", URL: "https://b.com"},
	}

	list.InsertAt(&model.Link{ID: "c", Title: "C", URL: "https://c.com"}, 1)
	ids := []string{list[0].NodeID(), list[1].NodeID(), list[2].NodeID()}
	want := []string{"a", "c", "b"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected order %v, got %v", want, ids)
	}

	// Out-of-range indexes clamp
	list.InsertAt(&model.Link{ID: "d", Title: "D", URL: "https://d.com"}, 99)
	if list[len(list)-1].NodeID() != "d" {
		t.Error("expected clamped insert at end")
	}
	list.InsertAt(&model.Link{ID: "e", Title: "E", URL: "https://e.com"}, -5)
	if list[0].NodeID() != "e" {
		t.Error("expected clamped insert at front")
	}
}

func TestNodeList_Links(t *testing.T) {
	links := testTree().Links()
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(links))
	}
	// Depth-first: Work's children before root-level Hacker News
	wantOrder := []string{"l-gh", "l-grafana", "l-hn"}
	for i, want := range wantOrder {
		if links[i].ID != want {
			t.Errorf("expected link %q at position %d, got %q", want, i, links[i].ID)
		}
	}
}

func TestDefaultState(t *testing.T) {
	state := model.DefaultState()

	if len(state.Workspaces) != 1 {
		t.Fatalf("expected 1 workspace, got %d", len(state.Workspaces))
	}
	ws := state.Workspaces[0]
	if ws.Name != model.DefaultWorkspaceName {
		t.Errorf("expected %q workspace, got %q", model.DefaultWorkspaceName, ws.Name)
	}
	if !ws.ColorID.IsValid() {
		t.Errorf("expected a valid random color, got %q", ws.ColorID)
	}
	if state.SelectedWorkspaceID == nil || *state.SelectedWorkspaceID != ws.ID {
		t.Error("expected the default workspace to be selected")
	}
	if state.SchemaVersion != model.CurrentSchemaVersion {
		t.Errorf("expected schema version %d, got %d", model.CurrentSchemaVersion, state.SchemaVersion)
	}
}

func TestState_Normalize(t *testing.T) {
	state := &model.State{
		Workspaces: []model.Workspace{{ID: "ws1", Name: "Inbox", ColorID: model.ColorSky}},
	}
	state.Normalize()

	if state.Workspaces[0].Items == nil {
		t.Error("expected Items slice to be repaired")
	}
	if state.Workspaces[0].PinnedLinks == nil {
		t.Error("expected PinnedLinks slice to be repaired")
	}
	if state.SchemaVersion != model.CurrentSchemaVersion {
		t.Errorf("expected schema version repair, got %d", state.SchemaVersion)
	}
}
