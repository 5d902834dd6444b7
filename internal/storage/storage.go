package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// Storage defines the interface for persisting the application state.
type Storage interface {
	Load() (*model.State, error)
	Save(state *model.State) error
}

// JSONStorage implements Storage using a single JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the state from the JSON file. A missing, unreadable or
// unparsable file yields a fresh default state which is written back
// immediately, so the application always starts with a usable state.
func (s *JSONStorage) Load() (*model.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.reset()
	}

	var state model.State
	if err := json.Unmarshal(data, &state); err != nil {
		return s.reset()
	}

	state.Normalize()
	return &state, nil
}

// reset substitutes a default state and best-effort persists it.
func (s *JSONStorage) reset() (*model.State, error) {
	state := model.DefaultState()
	if err := s.Save(state); err != nil {
		return state, nil
	}
	return state, nil
}

// Save writes the state to the JSON file, creating the directory if
// needed. Output is pretty-printed with keys sorted lexicographically
// at every nesting level, so files synced across machines diff cleanly.
func (s *JSONStorage) Save(state *model.State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.SchemaVersion = model.CurrentSchemaVersion

	data, err := marshalSorted(state)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// marshalSorted produces deterministic JSON: structs marshal in field
// order, so the document is round-tripped through generic maps, which
// encoding/json emits with sorted keys.
func marshalSorted(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.MarshalIndent(generic, "", "  ")
}

// DefaultStatePath returns the default state file path:
// ~/.config/arcmark/bookmarks.json
func DefaultStatePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "arcmark", "bookmarks.json"), nil
}

// IconsDir returns the directory for cached favicon files, creating it
// on first use: ~/.config/arcmark/icons
func IconsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, ".config", "arcmark", "icons")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
