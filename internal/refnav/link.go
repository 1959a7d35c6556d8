package refnav

import "strings"

// Version markers recognised in request paths.
const (
	VersionV0 = "v0"
	VersionV1 = "v1"
)

// DeriveVersion returns the version marker contained in path, or "" for the
// current version. The match is a plain substring test and v0 is checked
// last, so it wins when both markers occur.
func DeriveVersion(path string) string {
	version := ""
	if strings.Contains(path, VersionV1) {
		version = VersionV1
	}
	if strings.Contains(path, VersionV0) {
		version = VersionV0
	}
	return version
}

// LinkTarget builds /reference/{library}/{version/}{slug}.
func LinkTarget(library LibraryKey, version, slug string) string {
	var b strings.Builder
	b.WriteString("/reference/")
	b.WriteString(string(library))
	b.WriteString("/")
	if version != "" {
		b.WriteString(version)
		b.WriteString("/")
	}
	b.WriteString(slug)
	return b.String()
}

// FunctionLink is a single navigable sidebar entry.
type FunctionLink struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Target string `json:"target"`
	// Href is Target with the base path applied.
	Href    string `json:"href"`
	IconSrc string `json:"icon_src,omitempty"`
	IconAlt string `json:"icon_alt,omitempty"`
	Active  bool   `json:"active"`
}

// NewFunctionLink resolves e against the route. The slug falls back to the id
// when the entry has none.
func NewFunctionLink(e Entry, library LibraryKey, route Route) FunctionLink {
	target := LinkTarget(library, DeriveVersion(route.Path), e.URLSlug())

	link := FunctionLink{
		ID:     e.ID,
		Title:  e.Title,
		Target: target,
		Href:   route.BasePath + target,
		Active: e.ID != "" && e.ID == route.ActiveID,
	}
	if e.Icon != "" {
		link.IconSrc = route.BasePath + e.Icon
		link.IconAlt = e.Icon
	}
	return link
}
