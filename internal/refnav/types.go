// Package refnav builds the sidebar navigation of the API reference: it
// filters the section tree by the library's allow-list, works out which
// entry is active and which group is open, and renders nested list markup.
package refnav

// MenuID identifies a reference menu, e.g. "reference_javascript_v1".
type MenuID string

// LevelHome is the menu level shown on the landing page.
const LevelHome MenuID = "home"

// LibraryKey is the URL key of a client library, e.g. "javascript".
type LibraryKey string

const (
	LibraryJavaScript LibraryKey = "javascript"
	LibraryDart       LibraryKey = "dart"
	LibraryPython     LibraryKey = "python"
	LibraryCSharp     LibraryKey = "csharp"
	LibrarySwift      LibraryKey = "swift"
	LibraryKotlin     LibraryKey = "kotlin"
	LibraryCLI        LibraryKey = "cli"
	LibraryAPI        LibraryKey = "api"
)

// Menu describes one reference menu.
type Menu struct {
	ID    MenuID `json:"id" yaml:"id" koanf:"id"`
	Title string `json:"title" yaml:"title" koanf:"title"`
	Icon  string `json:"icon" yaml:"icon" koanf:"icon"`
}

// Menus indexes menus by id.
type Menus map[MenuID]Menu

// NewMenus builds a registry from a list of menus. Later duplicates win.
func NewMenus(list []Menu) Menus {
	m := make(Menus, len(list))
	for _, menu := range list {
		m[menu.ID] = menu
	}
	return m
}

// EntryType classifies a section entry.
type EntryType string

const (
	TypeFunction EntryType = "function"
	// TypeMarkdown entries are free-form pages, never hidden by the allow-list.
	TypeMarkdown EntryType = "markdown"
)

// Entry is one node of the section tree. An entry without an ID is a group
// heading; anything with an ID is a link.
type Entry struct {
	ID    string    `json:"id,omitempty"`
	Title string    `json:"title"`
	Slug  string    `json:"slug,omitempty"`
	Icon  string    `json:"icon,omitempty"`
	Type  EntryType `json:"type,omitempty"`
	Items []Entry   `json:"items,omitempty"`
}

// IsGroup reports whether the entry is a heading rather than a link.
func (e Entry) IsGroup() bool { return e.ID == "" }

// Theme selects icon variants.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps user input to a Theme, falling back to def.
func ParseTheme(s string, def Theme) Theme {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s)
	}
	return def
}

// Route is the per-request state the sidebar is derived from.
type Route struct {
	// Path is the page path; link targets carry the version derived from it.
	Path string
	// BasePath prefixes every generated URL.
	BasePath string
	// ActiveID is the id of the entry currently being viewed.
	ActiveID string
	// Level is the menu currently shown. Empty means the rendered menu.
	Level MenuID
	Theme Theme
}
