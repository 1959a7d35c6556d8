package config

import (
	"time"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

// DefaultMenus are the reference menus known out of the box.
var DefaultMenus = []refnav.Menu{
	{ID: "reference_javascript_v1", Title: "JavaScript", Icon: "reference-javascript"},
	{ID: "reference_javascript_v2", Title: "JavaScript", Icon: "reference-javascript"},
	{ID: "reference_dart_v0", Title: "Flutter", Icon: "reference-dart"},
	{ID: "reference_dart_v1", Title: "Flutter", Icon: "reference-dart"},
	{ID: "reference_python_v2", Title: "Python", Icon: "reference-python"},
	{ID: "reference_csharp_v0", Title: "C#", Icon: "reference-csharp"},
	{ID: "reference_swift_v1", Title: "Swift", Icon: "reference-swift"},
	{ID: "reference_kotlin_v1", Title: "Kotlin", Icon: "reference-kotlin"},
	{ID: "reference_cli", Title: "CLI", Icon: "reference-cli"},
	{ID: "reference_api", Title: "Management API", Icon: "reference-api"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   "dist",
		DocsDir:     "docs",
		Theme:       refnav.ThemeDark,
		Concurrency: 8,
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Menus: append([]refnav.Menu(nil), DefaultMenus...),
		Libraries: []LibraryConfig{
			{
				Key:      refnav.LibraryJavaScript,
				Sections: "spec/common-client-libs-sections.json",
				Versions: []VersionConfig{
					{Name: "v2", Latest: true, Menu: "reference_javascript_v2", Spec: "spec/supabase_js_v2.yml"},
					{Name: "v1", Menu: "reference_javascript_v1", Spec: "spec/supabase_js_v1.yml"},
				},
			},
		},
	}
}
