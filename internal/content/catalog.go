package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ziadkadry99/refnav/internal/config"
	"github.com/ziadkadry99/refnav/internal/refnav"
)

var (
	// ErrUnknownLibrary is returned for a library key not in the catalog.
	ErrUnknownLibrary = errors.New("unknown library")
	// ErrNotFound is returned when no visible entry matches a slug.
	ErrNotFound = errors.New("entry not found")
)

// Version is one loaded version of a library.
type Version struct {
	Name    string
	Latest  bool
	Menu    refnav.MenuID
	Allowed refnav.AllowList

	functions map[string]Function
}

// Segment is the path segment of the version, empty for the latest one.
func (v *Version) Segment() string {
	if v.Latest {
		return ""
	}
	return v.Name
}

// Label is the name shown in the version switcher.
func (v *Version) Label() string {
	if v.Name == "" {
		return "latest"
	}
	return v.Name
}

// Function returns the spec function with the given id.
func (v *Version) Function(id string) (Function, bool) {
	fn, ok := v.functions[id]
	return fn, ok
}

// Library is a loaded client library.
type Library struct {
	Key      refnav.LibraryKey
	Sections []refnav.Entry
	Versions []*Version
}

// Version returns the version named by a path marker: an older version
// whose name is marker, or the latest one when marker is empty or names it.
func (l *Library) Version(marker string) (*Version, error) {
	var latest *Version
	for _, v := range l.Versions {
		if v.Latest {
			latest = v
			continue
		}
		if marker != "" && v.Name == marker {
			return v, nil
		}
	}
	if latest == nil && len(l.Versions) > 0 {
		latest = l.Versions[0]
	}
	if latest != nil && (marker == "" || latest.Name == marker) {
		return latest, nil
	}
	return nil, fmt.Errorf("%w: library %s has no version %q", ErrNotFound, l.Key, marker)
}

// Locate splits a reference path /reference/{lib}[/{v0|v1}][/{slug}] into
// its version and slug. Only the first segment after the library selects the
// version, so slugs such as csv1-export stay on the latest version.
func (l *Library) Locate(path string) (*Version, string, error) {
	prefix := "/reference/" + string(l.Key)
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok || (rest != "" && rest[0] != '/') {
		return nil, "", fmt.Errorf("%w: %s is not under %s", ErrNotFound, path, prefix)
	}

	segs := strings.FieldsFunc(rest, func(r rune) bool { return r == '/' })
	marker := ""
	if len(segs) > 0 && (segs[0] == refnav.VersionV0 || segs[0] == refnav.VersionV1) {
		marker, segs = segs[0], segs[1:]
	}
	if len(segs) > 1 {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	v, err := l.Version(marker)
	if err != nil {
		return nil, "", err
	}
	slug := ""
	if len(segs) == 1 {
		slug = segs[0]
	}
	return v, slug, nil
}

// RootPath is the landing path of v, e.g. /reference/javascript/v1.
func (l *Library) RootPath(v *Version) string {
	return strings.TrimSuffix(refnav.LinkTarget(l.Key, v.Segment(), ""), "/")
}

// Entry returns the entry for slug as the sidebar of v links it.
func (l *Library) Entry(v *Version, slug string) (refnav.Entry, bool) {
	return refnav.FindLinked(l.Sections, v.Allowed, slug)
}

// Props assembles sidebar props for v with a version switcher pointing at
// slug. Versions that do not show slug link to their landing page.
func (l *Library) Props(v *Version, slug, basePath string) refnav.Props {
	options := make([]refnav.VersionOption, 0, len(l.Versions))
	for _, other := range l.Versions {
		href := l.RootPath(other)
		if slug != "" {
			if _, ok := l.Entry(other, slug); ok {
				href = refnav.LinkTarget(l.Key, other.Segment(), slug)
			}
		}
		options = append(options, refnav.VersionOption{
			Label:   other.Label(),
			Href:    basePath + href,
			Current: other == v,
		})
	}
	return refnav.Props{
		Menu:     v.Menu,
		Library:  l.Key,
		Sections: l.Sections,
		Allowed:  v.Allowed,
		Versions: options,
	}
}

// Page is the body of one reference page.
type Page struct {
	Entry    refnav.Entry
	Title    string
	Markdown string
}

// Catalog holds every configured library. It is read-only after loading.
type Catalog struct {
	docsDir   string
	libraries map[refnav.LibraryKey]*Library
}

// NewCatalog loads sections and specs for every configured library.
func NewCatalog(libs []config.LibraryConfig, docsDir string) (*Catalog, error) {
	c := &Catalog{
		docsDir:   docsDir,
		libraries: make(map[refnav.LibraryKey]*Library, len(libs)),
	}
	for _, lc := range libs {
		sections, err := LoadSections(lc.Sections)
		if err != nil {
			return nil, fmt.Errorf("library %s: %w", lc.Key, err)
		}
		lib := &Library{Key: lc.Key, Sections: sections}
		for _, vc := range lc.Versions {
			v := &Version{
				Name:      vc.Name,
				Latest:    vc.Latest,
				Menu:      vc.Menu,
				Allowed:   refnav.Unrestricted(),
				functions: map[string]Function{},
			}
			if vc.Spec != "" {
				spec, err := LoadSpecs(vc.Spec)
				if err != nil {
					return nil, fmt.Errorf("library %s version %s: %w", lc.Key, v.Label(), err)
				}
				v.Allowed = spec.AllowList()
				for _, fn := range spec.Functions {
					v.functions[fn.ID] = fn
				}
			}
			lib.Versions = append(lib.Versions, v)
		}
		// Latest first, then newest marker first.
		sort.SliceStable(lib.Versions, func(i, j int) bool {
			if lib.Versions[i].Latest != lib.Versions[j].Latest {
				return lib.Versions[i].Latest
			}
			return lib.Versions[i].Name > lib.Versions[j].Name
		})
		c.libraries[lc.Key] = lib
	}
	return c, nil
}

// Library returns the library for key.
func (c *Catalog) Library(key refnav.LibraryKey) (*Library, error) {
	lib, ok := c.libraries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLibrary, key)
	}
	return lib, nil
}

// Libraries returns all libraries sorted by key.
func (c *Catalog) Libraries() []*Library {
	out := make([]*Library, 0, len(c.libraries))
	for _, lib := range c.libraries {
		out = append(out, lib)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Page resolves the page for slug in a library version. Only entries the
// version's sidebar links are served. A markdown file in the docs dir
// ({lib}/{slug}.md, then {slug}.md) takes precedence over the spec function.
func (c *Catalog) Page(lib *Library, v *Version, slug string) (*Page, error) {
	entry, ok := lib.Entry(v, slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, lib.Key, slug)
	}

	page := &Page{Entry: entry, Title: entry.Title}

	if md, found, err := c.readMarkdown(lib.Key, slug); err != nil {
		return nil, err
	} else if found {
		page.Markdown = md
		page.Title = ExtractTitle(md, entry.Title)
		return page, nil
	}

	if fn, ok := v.Function(entry.ID); ok {
		page.Markdown = fn.Markdown()
		if fn.Title != "" {
			page.Title = fn.Title
		}
		return page, nil
	}

	page.Markdown = "# " + entry.Title + "\n"
	return page, nil
}

func (c *Catalog) readMarkdown(key refnav.LibraryKey, slug string) (string, bool, error) {
	if c.docsDir == "" {
		return "", false, nil
	}
	candidates := []string{
		filepath.Join(c.docsDir, string(key), slug+".md"),
		filepath.Join(c.docsDir, slug+".md"),
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err == nil {
			return string(data), true, nil
		}
		if !os.IsNotExist(err) {
			return "", false, fmt.Errorf("reading page %s: %w", p, err)
		}
	}
	return "", false, nil
}

// ExtractTitle pulls the first # heading from markdown content, or returns
// fallback.
func ExtractTitle(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return fallback
}
