package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != refnav.ThemeDark {
		t.Errorf("expected default theme %q, got %q", refnav.ThemeDark, cfg.Theme)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Menus) != len(DefaultMenus) {
		t.Errorf("expected %d default menus, got %d", len(DefaultMenus), len(cfg.Menus))
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.refnav.yml")

	original := DefaultConfig()
	original.BasePath = "/docs"
	original.Theme = refnav.ThemeLight
	original.Server.ShutdownTimeout = 3 * time.Second
	original.Libraries = []LibraryConfig{{
		Key:      refnav.LibraryDart,
		Sections: "spec/sections.json",
		Versions: []VersionConfig{
			{Name: "v1", Latest: true, Menu: "reference_dart_v1", Spec: "spec/dart_v1.yml"},
		},
	}}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.BasePath != original.BasePath {
		t.Errorf("base_path: got %q, want %q", loaded.BasePath, original.BasePath)
	}
	if loaded.Theme != original.Theme {
		t.Errorf("theme: got %q, want %q", loaded.Theme, original.Theme)
	}
	if loaded.Server.ShutdownTimeout != original.Server.ShutdownTimeout {
		t.Errorf("shutdown_timeout: got %v, want %v", loaded.Server.ShutdownTimeout, original.Server.ShutdownTimeout)
	}
	if len(loaded.Libraries) != 1 {
		t.Fatalf("libraries: got %d, want 1", len(loaded.Libraries))
	}
	lib := loaded.Libraries[0]
	if lib.Key != refnav.LibraryDart || len(lib.Versions) != 1 {
		t.Fatalf("library: got %+v", lib)
	}
	if lib.Versions[0].Menu != "reference_dart_v1" || !lib.Versions[0].Latest {
		t.Errorf("version: got %+v", lib.Versions[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadListsReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.yml")
	data := `menus:
  - id: reference_cli
    title: CLI
    icon: reference-cli
libraries:
  - key: cli
    sections: cli.json
    versions:
      - name: ""
        latest: true
        menu: reference_cli
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Menus) != 1 || cfg.Menus[0].ID != "reference_cli" {
		t.Errorf("menus: got %+v", cfg.Menus)
	}
	if len(cfg.Libraries) != 1 || len(cfg.Libraries[0].Versions) != 1 {
		t.Fatalf("libraries: got %+v", cfg.Libraries)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should be valid: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("REFNAV_THEME", "light")
	t.Setenv("REFNAV_SERVER__PORT", "9090")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != refnav.ThemeLight {
		t.Errorf("env override failed: got %q, want %q", loaded.Theme, refnav.ThemeLight)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("nested env override failed: got %d, want 9090", loaded.Server.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"base path without slash", func(c *Config) { c.BasePath = "docs" }},
		{"base path trailing slash", func(c *Config) { c.BasePath = "/docs/" }},
		{"unknown theme", func(c *Config) { c.Theme = "sepia" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"negative concurrency", func(c *Config) { c.Concurrency = -1 }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"empty library key", func(c *Config) { c.Libraries[0].Key = "" }},
		{"duplicate library", func(c *Config) { c.Libraries = append(c.Libraries, c.Libraries[0]) }},
		{"missing sections", func(c *Config) { c.Libraries[0].Sections = "" }},
		{"no versions", func(c *Config) { c.Libraries[0].Versions = nil }},
		{"unknown menu", func(c *Config) { c.Libraries[0].Versions[0].Menu = "reference_cobol" }},
		{"two latest", func(c *Config) { c.Libraries[0].Versions[1].Latest = true }},
		{"unreachable version", func(c *Config) { c.Libraries[0].Versions[1].Name = "v3" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestVersionsFor(t *testing.T) {
	versions := VersionsFor(DefaultMenus, refnav.LibraryDart, "spec")
	if len(versions) != 2 {
		t.Fatalf("versions = %d, want 2", len(versions))
	}
	if versions[0].Name != "v1" || !versions[0].Latest || versions[0].Menu != "reference_dart_v1" {
		t.Errorf("first version = %+v", versions[0])
	}
	if versions[1].Name != "v0" || versions[1].Latest {
		t.Errorf("second version = %+v", versions[1])
	}
	if versions[0].Spec != "spec/dart_v1*.yml" {
		t.Errorf("spec glob = %q", versions[0].Spec)
	}

	cli := VersionsFor(DefaultMenus, refnav.LibraryCLI, "")
	if len(cli) != 1 || cli[0].Name != "" || cli[0].Menu != "reference_cli" || cli[0].Spec != "" {
		t.Errorf("cli versions = %+v", cli)
	}
}
