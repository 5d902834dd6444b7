package model

// MaxPinnedLinks caps the quick-access pinned list per workspace.
const MaxPinnedLinks = 12

// Workspace is an isolated named collection of bookmark nodes plus its
// own pinned-links list and color tag. A pinned link is never
// simultaneously present in Items.
type Workspace struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ColorID     Color    `json:"colorId"`
	Items       NodeList `json:"items"`
	PinnedLinks []Link   `json:"pinnedLinks"`
}

// NewWorkspaceParams holds parameters for creating a new Workspace.
type NewWorkspaceParams struct {
	Name  string
	Color Color
}

// NewWorkspace creates an empty Workspace with a generated UUID.
func NewWorkspace(params NewWorkspaceParams) Workspace {
	color := params.Color
	if !color.IsValid() {
		color = DefaultColor
	}
	return Workspace{
		ID:          generateUUID(),
		Name:        params.Name,
		ColorID:     color,
		Items:       NodeList{},
		PinnedLinks: []Link{},
	}
}

// IsPinned reports whether the given link id is in the pinned list.
func (w *Workspace) IsPinned(id string) bool {
	for i := range w.PinnedLinks {
		if w.PinnedLinks[i].ID == id {
			return true
		}
	}
	return false
}
