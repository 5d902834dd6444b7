// Package store owns the application state. Every structural change to
// workspaces and bookmark trees passes through a Store, which persists
// the state after each mutation and notifies subscribers.
//
// Store methods are not safe for concurrent use; callers on background
// goroutines must marshal back to the owning goroutine first. Invalid
// operations (unknown ids, invariant violations) are silent no-ops:
// nothing is persisted and no notification fires.
package store

import (
	"log"

	"github.com/pkmdev-sec/arcmark/internal/model"
	"github.com/pkmdev-sec/arcmark/internal/storage"
)

// Store is the exclusive owner of the application state.
type Store struct {
	state     *model.State
	storage   storage.Storage
	listeners []func()
}

// New creates a Store over the given state. storage may be nil, in
// which case mutations are in-memory only (used by tests).
func New(state *model.State, st storage.Storage) *Store {
	if state == nil {
		state = model.DefaultState()
	}
	state.Normalize()
	return &Store{state: state, storage: st}
}

// OnChange registers a callback invoked after every committed mutation.
func (s *Store) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// State returns the underlying state. Read-only for callers; all
// mutations go through Store methods.
func (s *Store) State() *model.State {
	return s.state
}

// Workspaces returns all workspaces in stored order.
func (s *Store) Workspaces() []model.Workspace {
	return s.state.Workspaces
}

// commit persists the state and fires the change notification. A failed
// write is logged and swallowed; the in-memory state stays authoritative.
func (s *Store) commit() {
	s.persist()
	for _, fn := range s.listeners {
		fn()
	}
}

func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.state); err != nil {
		log.Printf("store: persist failed: %v", err)
	}
}

// CurrentWorkspace returns the selected workspace, falling back to the
// first one. An empty workspace list is repaired by synthesizing a
// default workspace, which is persisted immediately.
func (s *Store) CurrentWorkspace() *model.Workspace {
	if len(s.state.Workspaces) == 0 {
		ws := model.NewWorkspace(model.NewWorkspaceParams{
			Name:  model.DefaultWorkspaceName,
			Color: model.RandomColor(),
		})
		s.state.Workspaces = append(s.state.Workspaces, ws)
		id := ws.ID
		s.state.SelectedWorkspaceID = &id
		s.persist()
	}
	if s.state.SelectedWorkspaceID != nil {
		if ws := s.state.WorkspaceByID(*s.state.SelectedWorkspaceID); ws != nil {
			return ws
		}
	}
	return &s.state.Workspaces[0]
}

// SelectWorkspace sets the selected workspace. No-op for unknown ids.
func (s *Store) SelectWorkspace(id string) {
	if s.state.WorkspaceByID(id) == nil {
		return
	}
	s.state.SelectedWorkspaceID = &id
	s.state.IsSettingsSelected = false
	s.commit()
}

// SelectSettings switches selection to the settings view.
func (s *Store) SelectSettings() {
	s.state.SelectedWorkspaceID = nil
	s.state.IsSettingsSelected = true
	s.commit()
}

// CreateWorkspace appends a new workspace and selects it.
func (s *Store) CreateWorkspace(name string, color model.Color) string {
	ws := model.NewWorkspace(model.NewWorkspaceParams{Name: name, Color: color})
	s.state.Workspaces = append(s.state.Workspaces, ws)
	id := ws.ID
	s.state.SelectedWorkspaceID = &id
	s.state.IsSettingsSelected = false
	s.commit()
	return id
}

// RenameWorkspace renames a workspace. No-op for unknown ids.
func (s *Store) RenameWorkspace(id, name string) {
	ws := s.state.WorkspaceByID(id)
	if ws == nil {
		return
	}
	ws.Name = name
	s.commit()
}

// SetWorkspaceColor changes a workspace's color. No-op for unknown ids.
func (s *Store) SetWorkspaceColor(id string, color model.Color) {
	ws := s.state.WorkspaceByID(id)
	if ws == nil || !color.IsValid() {
		return
	}
	ws.ColorID = color
	s.commit()
}

// DeleteWorkspace removes a workspace. Refused while only one remains.
// If the deleted workspace was selected, selection moves to the first
// remaining workspace.
func (s *Store) DeleteWorkspace(id string) {
	if len(s.state.Workspaces) <= 1 {
		return
	}
	idx := -1
	for i := range s.state.Workspaces {
		if s.state.Workspaces[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	s.state.Workspaces = append(s.state.Workspaces[:idx], s.state.Workspaces[idx+1:]...)
	if s.state.SelectedWorkspaceID != nil && *s.state.SelectedWorkspaceID == id {
		first := s.state.Workspaces[0].ID
		s.state.SelectedWorkspaceID = &first
	}
	s.commit()
}

// Direction is a horizontal move direction for workspace reordering.
type Direction int

const (
	Left Direction = iota
	Right
)

// MoveWorkspace swaps a workspace with its neighbor. No-op at either
// boundary and for unknown ids.
func (s *Store) MoveWorkspace(id string, dir Direction) {
	idx := -1
	for i := range s.state.Workspaces {
		if s.state.Workspaces[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	target := idx - 1
	if dir == Right {
		target = idx + 1
	}
	if target < 0 || target >= len(s.state.Workspaces) {
		return
	}
	ws := s.state.Workspaces
	ws[idx], ws[target] = ws[target], ws[idx]
	s.commit()
}
