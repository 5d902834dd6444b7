package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/pkmdev-sec/arcmark/internal/model"
)

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys and set pragmas for performance
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	// Check current schema version
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	if version < 2 {
		if err := s.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY NOT NULL,
			value TEXT
		);

		CREATE TABLE IF NOT EXISTS workspaces (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			color_id TEXT NOT NULL DEFAULT 'sky',
			position INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY NOT NULL,
			workspace_id TEXT NOT NULL,
			parent_id TEXT,
			position INTEGER NOT NULL DEFAULT 0,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			url TEXT,
			is_expanded INTEGER NOT NULL DEFAULT 0,
			pinned INTEGER NOT NULL DEFAULT 0,
			pin_order INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (workspace_id) REFERENCES workspaces(id) ON DELETE CASCADE,
			FOREIGN KEY (parent_id) REFERENCES nodes(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_nodes_workspace_id ON nodes(workspace_id);
		CREATE INDEX IF NOT EXISTS idx_nodes_parent_id ON nodes(parent_id);
		CREATE INDEX IF NOT EXISTS idx_nodes_pinned ON nodes(pinned) WHERE pinned = 1;

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 adds the cached favicon path column.
func (s *SQLiteStorage) migrateV2() error {
	migration := `
		ALTER TABLE nodes ADD COLUMN favicon_path TEXT NOT NULL DEFAULT '';
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

// nodeRow is one row of the nodes table before tree assembly.
type nodeRow struct {
	node     model.Node
	parentID *string
}

// Load reads the state from the SQLite database.
func (s *SQLiteStorage) Load() (*model.State, error) {
	state := &model.State{
		SchemaVersion: model.CurrentSchemaVersion,
		Workspaces:    []model.Workspace{},
	}

	rows, err := s.db.Query(`
		SELECT id, name, color_id
		FROM workspaces
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ws model.Workspace
		var colorID string
		if err := rows.Scan(&ws.ID, &ws.Name, &colorID); err != nil {
			return nil, err
		}
		ws.ColorID = model.Color(colorID)
		if !ws.ColorID.IsValid() {
			ws.ColorID = model.DefaultColor
		}
		ws.Items = model.NodeList{}
		ws.PinnedLinks = []model.Link{}
		state.Workspaces = append(state.Workspaces, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range state.Workspaces {
		if err := s.loadWorkspaceNodes(&state.Workspaces[i]); err != nil {
			return nil, err
		}
	}

	if err := s.loadAppState(state); err != nil {
		return nil, err
	}

	return state, nil
}

// loadWorkspaceNodes reads one workspace's rows and rebuilds the nested
// tree via the parent_id references.
func (s *SQLiteStorage) loadWorkspaceNodes(ws *model.Workspace) error {
	rows, err := s.db.Query(`
		SELECT id, parent_id, kind, name, url, is_expanded, favicon_path, pinned
		FROM nodes
		WHERE workspace_id = ?
		ORDER BY pinned, pin_order, position
	`, ws.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var ordered []nodeRow
	folders := make(map[string]*model.Folder)

	for rows.Next() {
		var id, kind, name string
		var parentID sql.NullString
		var url sql.NullString
		var faviconPath string
		var isExpanded, pinned int

		if err := rows.Scan(&id, &parentID, &kind, &name, &url, &isExpanded, &faviconPath, &pinned); err != nil {
			return err
		}

		if pinned == 1 {
			ws.PinnedLinks = append(ws.PinnedLinks, model.Link{
				ID:          id,
				Title:       name,
				URL:         url.String,
				FaviconPath: faviconPath,
			})
			continue
		}

		var node model.Node
		if kind == "folder" {
			folder := &model.Folder{
				ID:         id,
				Name:       name,
				Children:   model.NodeList{},
				IsExpanded: isExpanded == 1,
			}
			folders[id] = folder
			node = folder
		} else {
			node = &model.Link{
				ID:          id,
				Title:       name,
				URL:         url.String,
				FaviconPath: faviconPath,
			}
		}

		var pid *string
		if parentID.Valid {
			pid = &parentID.String
		}
		ordered = append(ordered, nodeRow{node: node, parentID: pid})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Attach children to parents in stored order. Rows with a missing
	// parent fall back to the root list rather than being dropped.
	for _, row := range ordered {
		if row.parentID != nil {
			if parent, ok := folders[*row.parentID]; ok {
				parent.Children = append(parent.Children, row.node)
				continue
			}
		}
		ws.Items = append(ws.Items, row.node)
	}

	return nil
}

// loadAppState reads selection flags from the app_state table.
func (s *SQLiteStorage) loadAppState(state *model.State) error {
	rows, err := s.db.Query("SELECT key, value FROM app_state")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case "selected_workspace_id":
			if value.Valid && value.String != "" {
				v := value.String
				state.SelectedWorkspaceID = &v
			}
		case "is_settings_selected":
			state.IsSettingsSelected = value.Valid && value.String == "1"
		}
	}
	return rows.Err()
}

// Save writes the state to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(state *model.State) error {
	// Temporarily disable foreign key checks for bulk insert
	// (nodes reference parents that haven't been inserted yet)
	// Note: PRAGMA foreign_keys cannot be changed inside a transaction
	if _, err := s.db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		s.db.Exec("PRAGMA foreign_keys = ON")
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"nodes", "workspaces", "app_state"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	wsStmt, err := tx.Prepare(`
		INSERT INTO workspaces (id, name, color_id, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer wsStmt.Close()

	nodeStmt, err := tx.Prepare(`
		INSERT INTO nodes (id, workspace_id, parent_id, position, kind, name, url, is_expanded, favicon_path, pinned, pin_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer nodeStmt.Close()

	for pos, ws := range state.Workspaces {
		if _, err := wsStmt.Exec(ws.ID, ws.Name, string(ws.ColorID), pos); err != nil {
			return err
		}
		if err := insertNodes(nodeStmt, ws.ID, nil, ws.Items); err != nil {
			return err
		}
		for order, link := range ws.PinnedLinks {
			if _, err := nodeStmt.Exec(
				link.ID, ws.ID, nil, 0, "link", link.Title, link.URL, 0,
				link.FaviconPath, 1, order,
			); err != nil {
				return err
			}
		}
	}

	var selected string
	if state.SelectedWorkspaceID != nil {
		selected = *state.SelectedWorkspaceID
	}
	settings := "0"
	if state.IsSettingsSelected {
		settings = "1"
	}
	appState := map[string]string{
		"selected_workspace_id": selected,
		"is_settings_selected":  settings,
	}
	for key, value := range appState {
		if _, err := tx.Exec(
			"INSERT INTO app_state (key, value) VALUES (?, ?)", key, value,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	// Re-enable foreign key checks
	_, _ = s.db.Exec("PRAGMA foreign_keys = ON")

	return nil
}

// insertNodes walks a node list depth-first, writing each node with its
// position in the parent list.
func insertNodes(stmt *sql.Stmt, workspaceID string, parentID *string, nodes model.NodeList) error {
	for pos, n := range nodes {
		switch v := n.(type) {
		case *model.Folder:
			expanded := 0
			if v.IsExpanded {
				expanded = 1
			}
			if _, err := stmt.Exec(
				v.ID, workspaceID, parentID, pos, "folder", v.Name, nil, expanded, "", 0, 0,
			); err != nil {
				return err
			}
			if err := insertNodes(stmt, workspaceID, &v.ID, v.Children); err != nil {
				return err
			}
		case *model.Link:
			if _, err := stmt.Exec(
				v.ID, workspaceID, parentID, pos, "link", v.Title, v.URL, 0,
				v.FaviconPath, 0, 0,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/arcmark/arcmark.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "arcmark", "arcmark.db"), nil
}
