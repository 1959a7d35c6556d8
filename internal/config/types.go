package config

import (
	"time"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

// Config is the top-level refnav configuration, corresponding to .refnav.yml.
type Config struct {
	BasePath    string          `yaml:"base_path" koanf:"base_path"`
	OutputDir   string          `yaml:"output_dir" koanf:"output_dir"`
	DocsDir     string          `yaml:"docs_dir" koanf:"docs_dir"`
	AssetsDir   string          `yaml:"assets_dir" koanf:"assets_dir"`
	Theme       refnav.Theme    `yaml:"theme" koanf:"theme"`
	Concurrency int             `yaml:"concurrency" koanf:"concurrency"`
	Server      ServerConfig    `yaml:"server" koanf:"server"`
	Log         LogConfig       `yaml:"log" koanf:"log"`
	Menus       []refnav.Menu   `yaml:"menus" koanf:"menus"`
	Libraries   []LibraryConfig `yaml:"libraries" koanf:"libraries"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// LogConfig selects the log level and encoder.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Pretty bool   `yaml:"pretty" koanf:"pretty"`
}

// LibraryConfig describes one client library and its versions.
type LibraryConfig struct {
	Key refnav.LibraryKey `yaml:"key" koanf:"key"`
	// Sections is the JSON file with the shared section tree.
	Sections string          `yaml:"sections" koanf:"sections"`
	Versions []VersionConfig `yaml:"versions" koanf:"versions"`
}

// VersionConfig describes one version of a library.
type VersionConfig struct {
	Name   string        `yaml:"name" koanf:"name"`
	Latest bool          `yaml:"latest" koanf:"latest"`
	Menu   refnav.MenuID `yaml:"menu" koanf:"menu"`
	// Spec is a glob of spec YAML files whose function ids form the
	// allow-list. Empty means every entry is shown.
	Spec string `yaml:"spec" koanf:"spec"`
}
