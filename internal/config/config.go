package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

// EnvPrefix prefixes environment overrides. A double underscore nests:
// REFNAV_SERVER__PORT sets server.port.
const EnvPrefix = "REFNAV_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (REFNAV_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the defaults instead of merging into them.
	if k.Exists("menus") {
		cfg.Menus = nil
	}
	if k.Exists("libraries") {
		cfg.Libraries = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLevels is the set of recognized log levels.
var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.BasePath != "" && (!strings.HasPrefix(c.BasePath, "/") || strings.HasSuffix(c.BasePath, "/")) {
		return fmt.Errorf("invalid base_path %q: must start with / and not end with /", c.BasePath)
	}
	if c.Theme != refnav.ThemeLight && c.Theme != refnav.ThemeDark {
		return fmt.Errorf("invalid theme %q: must be light or dark", c.Theme)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be non-negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Log.Level != "" && !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	menus := refnav.NewMenus(c.Menus)
	seen := make(map[refnav.LibraryKey]bool)
	for _, lib := range c.Libraries {
		if lib.Key == "" {
			return fmt.Errorf("library key is required")
		}
		if seen[lib.Key] {
			return fmt.Errorf("duplicate library %q", lib.Key)
		}
		seen[lib.Key] = true
		if lib.Sections == "" {
			return fmt.Errorf("library %s: sections is required", lib.Key)
		}
		if err := validateVersions(lib, menus); err != nil {
			return err
		}
	}

	return nil
}

func validateVersions(lib LibraryConfig, menus refnav.Menus) error {
	if len(lib.Versions) == 0 {
		return fmt.Errorf("library %s: at least one version is required", lib.Key)
	}
	latest := 0
	for _, v := range lib.Versions {
		if _, ok := menus[v.Menu]; !ok {
			return fmt.Errorf("library %s version %q: unknown menu %q", lib.Key, v.Name, v.Menu)
		}
		if v.Latest {
			latest++
			continue
		}
		// Older versions are only reachable through a path marker.
		if v.Name != refnav.VersionV0 && v.Name != refnav.VersionV1 {
			return fmt.Errorf("library %s: version %q must be latest or one of v0, v1", lib.Key, v.Name)
		}
	}
	if latest > 1 {
		return fmt.Errorf("library %s: only one version may be latest", lib.Key)
	}
	return nil
}
