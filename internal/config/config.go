package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend constants
const (
	BackendSQLite = "sqlite" // local ~/.srs/srs.db
	BackendSheets = "sheets" // remote Google Sheets table
)

// Config represents the flat srs configuration
type Config struct {
	Version        string `json:"version"`
	Backend        string `json:"backend,omitempty"`         // "sqlite" or "sheets"
	SheetID        string `json:"sheet_id,omitempty"`        // spreadsheet ID (sheets backend)
	ServiceAccount string `json:"service_account,omitempty"` // path to service-account JSON
}

// DefaultDir returns the directory holding config and local database.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".srs"), nil
}

// Load reads config.json from the specified directory. A missing file is
// not an error: it yields the default local-backend config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{Version: "1", Backend: BackendSQLite}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes config.json to directory
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolvedBackend returns the backend to use. Sheets needs both a sheet ID
// and a credentials file; anything less falls back to the local database.
func (c *Config) ResolvedBackend() string {
	if c.Backend == BackendSheets && c.SheetID != "" && c.ServiceAccount != "" {
		return BackendSheets
	}
	return BackendSQLite
}
