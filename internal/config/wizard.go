package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

// detectSections looks for a sections file in the usual places.
func detectSections() string {
	for _, pattern := range []string{"spec/*sections*.json", "*sections*.json"} {
		matches, _ := filepath.Glob(pattern)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	return "spec/common-client-libs-sections.json"
}

// libraryMenus returns the menus whose id belongs to key, keyed by version
// suffix ("" for unversioned menus such as reference_cli).
func libraryMenus(menus []refnav.Menu, key refnav.LibraryKey) map[string]refnav.MenuID {
	prefix := "reference_" + string(key)
	out := make(map[string]refnav.MenuID)
	for _, m := range menus {
		id := string(m.ID)
		switch {
		case id == prefix:
			out[""] = m.ID
		case strings.HasPrefix(id, prefix+"_"):
			out[strings.TrimPrefix(id, prefix+"_")] = m.ID
		}
	}
	return out
}

// VersionsFor derives version entries for key from the known menus. The
// highest version becomes latest.
func VersionsFor(menus []refnav.Menu, key refnav.LibraryKey, specDir string) []VersionConfig {
	byVersion := libraryMenus(menus, key)
	names := make([]string, 0, len(byVersion))
	for name := range byVersion {
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	versions := make([]VersionConfig, 0, len(names))
	for i, name := range names {
		v := VersionConfig{Name: name, Latest: i == 0, Menu: byVersion[name]}
		if specDir != "" {
			v.Spec = filepath.ToSlash(filepath.Join(specDir, fmt.Sprintf("%s_%s*.yml", key, name)))
		}
		versions = append(versions, v)
	}
	return versions
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to refnav! Let's configure your reference sidebar.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Library.
	keys := []string{
		string(refnav.LibraryJavaScript), string(refnav.LibraryDart), string(refnav.LibraryPython),
		string(refnav.LibraryCSharp), string(refnav.LibrarySwift), string(refnav.LibraryKotlin),
		string(refnav.LibraryCLI), string(refnav.LibraryAPI),
	}
	libPrompt := promptui.Select{
		Label: "Select client library",
		Items: keys,
	}
	_, keyStr, err := libPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("library selection: %w", err)
	}
	key := refnav.LibraryKey(keyStr)

	// 2. Sections file.
	sectionsPrompt := promptui.Prompt{
		Label:   "Sections JSON file",
		Default: detectSections(),
	}
	sections, err := sectionsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sections file: %w", err)
	}

	// 3. Spec directory.
	specPrompt := promptui.Prompt{
		Label:   "Directory with library spec YAML files (blank shows every entry)",
		Default: filepath.Dir(sections),
	}
	specDir, err := specPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("spec directory: %w", err)
	}

	// 4. Base path.
	basePrompt := promptui.Prompt{
		Label:   "Base path (blank for none, e.g. /docs)",
		Default: "",
		Validate: func(s string) error {
			if s != "" && (!strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/")) {
				return fmt.Errorf("must start with / and not end with /")
			}
			return nil
		},
	}
	basePath, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base path: %w", err)
	}

	// 5. Theme.
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{string(refnav.ThemeDark), string(refnav.ThemeLight)},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	versions := VersionsFor(cfg.Menus, key, specDir)
	if len(versions) == 0 {
		return nil, fmt.Errorf("no menus known for library %q", key)
	}

	cfg.BasePath = basePath
	cfg.Theme = refnav.Theme(theme)
	cfg.Libraries = []LibraryConfig{{Key: key, Sections: sections, Versions: versions}}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
