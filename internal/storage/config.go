package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds persisted UI preferences.
type Config struct {
	SidebarWidth    int  `json:"sidebarWidth"`
	ConfirmDeletes  bool `json:"confirmDeletes"`
	FetchFavicons   bool `json:"fetchFavicons"`
	FetchConcurrent int  `json:"fetchConcurrent"`
	FetchTimeoutSec int  `json:"fetchTimeoutSec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SidebarWidth:    42,
		ConfirmDeletes:  true,
		FetchFavicons:   true,
		FetchConcurrent: 8,
		FetchTimeoutSec: 10,
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			if saveErr := SaveConfig(path, &config); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.SidebarWidth <= 0 {
		config.SidebarWidth = defaults.SidebarWidth
	}
	if config.FetchConcurrent <= 0 {
		config.FetchConcurrent = defaults.FetchConcurrent
	}
	if config.FetchTimeoutSec <= 0 {
		config.FetchTimeoutSec = defaults.FetchTimeoutSec
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/arcmark/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "arcmark", "config.json"), nil
}
