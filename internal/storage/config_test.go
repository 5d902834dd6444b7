package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkmdev-sec/arcmark/internal/storage"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := storage.DefaultConfig()
	if *cfg != want {
		t.Errorf("expected defaults %+v, got %+v", want, *cfg)
	}

	// The file should have been written for next time.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := storage.Config{
		SidebarWidth:    60,
		ConfirmDeletes:  false,
		FetchFavicons:   false,
		FetchConcurrent: 4,
		FetchTimeoutSec: 3,
	}
	if err := storage.SaveConfig(path, &cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if *loaded != cfg {
		t.Errorf("round-trip changed config: got %+v, want %+v", *loaded, cfg)
	}
}

func TestLoadConfig_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"confirmDeletes": false}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	defaults := storage.DefaultConfig()
	if cfg.ConfirmDeletes {
		t.Error("explicit false should be kept")
	}
	if cfg.SidebarWidth != defaults.SidebarWidth {
		t.Errorf("missing sidebarWidth should default to %d, got %d", defaults.SidebarWidth, cfg.SidebarWidth)
	}
	if cfg.FetchConcurrent != defaults.FetchConcurrent {
		t.Errorf("missing fetchConcurrent should default to %d, got %d", defaults.FetchConcurrent, cfg.FetchConcurrent)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.LoadConfig(path); err == nil {
		t.Error("expected an error for invalid config JSON")
	}
}
