package model

// CurrentSchemaVersion is written to every persisted document.
const CurrentSchemaVersion = 2

// DefaultWorkspaceName is the workspace created for a fresh state.
const DefaultWorkspaceName = "Inbox"

// State is the full persisted application state: the single mutable
// source of truth, owned by the store.
type State struct {
	SchemaVersion       int         `json:"schemaVersion"`
	Workspaces          []Workspace `json:"workspaces"`
	SelectedWorkspaceID *string     `json:"selectedWorkspaceId"`
	IsSettingsSelected  bool        `json:"isSettingsSelected"`
}

// DefaultState returns a fresh state with a single "Inbox" workspace in
// a random color, selected.
func DefaultState() *State {
	ws := NewWorkspace(NewWorkspaceParams{
		Name:  DefaultWorkspaceName,
		Color: RandomColor(),
	})
	id := ws.ID
	return &State{
		SchemaVersion:       CurrentSchemaVersion,
		Workspaces:          []Workspace{ws},
		SelectedWorkspaceID: &id,
	}
}

// Normalize repairs nil slices after deserialization so the rest of the
// code never has to nil-check them.
func (s *State) Normalize() {
	if s.Workspaces == nil {
		s.Workspaces = []Workspace{}
	}
	for i := range s.Workspaces {
		if s.Workspaces[i].Items == nil {
			s.Workspaces[i].Items = NodeList{}
		}
		if s.Workspaces[i].PinnedLinks == nil {
			s.Workspaces[i].PinnedLinks = []Link{}
		}
	}
	if s.SchemaVersion == 0 {
		s.SchemaVersion = CurrentSchemaVersion
	}
}

// WorkspaceByID finds a workspace by id, nil if not found.
func (s *State) WorkspaceByID(id string) *Workspace {
	for i := range s.Workspaces {
		if s.Workspaces[i].ID == id {
			return &s.Workspaces[i]
		}
	}
	return nil
}
