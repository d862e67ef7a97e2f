package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Version:        "1",
		Backend:        BackendSheets,
		SheetID:        "1AbC",
		ServiceAccount: "/tmp/sa.json",
	}
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadMissingDefaultsToSQLite(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ResolvedBackend() != BackendSQLite {
		t.Errorf("ResolvedBackend = %q, want %q", cfg.ResolvedBackend(), BackendSQLite)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected parse error for malformed config")
	}
}

func TestResolvedBackend(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "default is sqlite", cfg: Config{}, want: BackendSQLite},
		{name: "sheets with full credentials", cfg: Config{Backend: BackendSheets, SheetID: "x", ServiceAccount: "y"}, want: BackendSheets},
		{name: "sheets without sheet id falls back", cfg: Config{Backend: BackendSheets, ServiceAccount: "y"}, want: BackendSQLite},
		{name: "sheets without credentials falls back", cfg: Config{Backend: BackendSheets, SheetID: "x"}, want: BackendSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ResolvedBackend(); got != tt.want {
				t.Errorf("ResolvedBackend = %q, want %q", got, tt.want)
			}
		})
	}
}
