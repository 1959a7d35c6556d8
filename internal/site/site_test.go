package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/refnav/internal/config"
	"github.com/ziadkadry99/refnav/internal/content"
	"github.com/ziadkadry99/refnav/internal/logger"
	"github.com/ziadkadry99/refnav/internal/refnav"
)

const testdata = "../../testdata"

func newTestPages(t *testing.T, basePath string) (*content.Catalog, *Pages) {
	t.Helper()
	libs := []config.LibraryConfig{{
		Key:      refnav.LibraryJavaScript,
		Sections: filepath.Join(testdata, "spec", "common-client-libs-sections.json"),
		Versions: []config.VersionConfig{
			{Name: "v2", Latest: true, Menu: "reference_javascript_v2", Spec: filepath.Join(testdata, "spec", "javascript_v2*.yml")},
			{Name: "v1", Menu: "reference_javascript_v1", Spec: filepath.Join(testdata, "spec", "javascript_v1.yml")},
		},
	}}
	catalog, err := content.NewCatalog(libs, filepath.Join(testdata, "docs"))
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	renderer, err := refnav.NewRenderer(refnav.NewMenus(config.DefaultMenus), logger.Nop())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	pages, err := NewPages(catalog, renderer, basePath)
	if err != nil {
		t.Fatalf("NewPages: %v", err)
	}
	return catalog, pages
}

func versionOf(t *testing.T, catalog *content.Catalog, marker string) *content.Version {
	t.Helper()
	lib, err := catalog.Library(refnav.LibraryJavaScript)
	if err != nil {
		t.Fatalf("Library: %v", err)
	}
	v, err := lib.Version(marker)
	if err != nil {
		t.Fatalf("Version(%q): %v", marker, err)
	}
	return v
}

func TestRenderPage(t *testing.T) {
	catalog, pages := newTestPages(t, "/docs")

	var buf bytes.Buffer
	res, err := pages.Render(&buf, Request{
		Library: refnav.LibraryJavaScript,
		Version: versionOf(t, catalog, "v1"),
		Slug:    "eq",
		Theme:   refnav.ThemeLight,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Version.Name != "v1" || res.Entry.ID != "eq" || res.Title != "eq()" {
		t.Errorf("result = %+v", res)
	}

	html := buf.String()
	checks := []string{
		`<nav class="sidebar"`,
		`data-theme="light"`,
		`href="/docs/style.css"`,
		`data-id="using-filters" data-state="open"`,
		`data-id="using-modifiers" data-state="closed"`,
		`<a class="function-link active" href="/docs/reference/javascript/v1/eq">`,
		`src="/docs/img/icons/menu/reference-javascript-light.svg"`,
		`<h1 id="eq">eq()</h1>`,
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(html, "/reference/javascript/v1/insert") {
		t.Error("v1 page should not link to insert")
	}
}

func TestRenderPageHighlightsExamples(t *testing.T) {
	_, pages := newTestPages(t, "")

	var buf bytes.Buffer
	if _, err := pages.Render(&buf, Request{Library: refnav.LibraryJavaScript, Slug: "select"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "<pre") || !strings.Contains(html, "supabase") {
		t.Error("example code block should be rendered")
	}
	if !strings.Contains(html, "Getting your data") {
		t.Error("example heading should be rendered")
	}
}

func TestRenderPageLanding(t *testing.T) {
	_, pages := newTestPages(t, "")

	var buf bytes.Buffer
	res, err := pages.Render(&buf, Request{Library: refnav.LibraryJavaScript})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Entry.ID != "introduction" {
		t.Errorf("landing entry = %q, want introduction", res.Entry.ID)
	}
}

func TestRenderPageErrors(t *testing.T) {
	catalog, pages := newTestPages(t, "")

	var buf bytes.Buffer
	if _, err := pages.Render(&buf, Request{Library: "cobol", Slug: "x"}); !errors.Is(err, content.ErrUnknownLibrary) {
		t.Errorf("unknown library err = %v", err)
	}
	if _, err := pages.Render(&buf, Request{Library: refnav.LibraryJavaScript, Version: versionOf(t, catalog, "v1"), Slug: "insert"}); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("hidden entry err = %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"# Title\n\nFirst line.\n\nSecond.", "First line."},
		{"# Title\n\n```js\ncode()\n```\n\nAfter code.", "After code."},
		{"# Title\n\n- A bullet point", "A bullet point"},
		{"# Only a title\n", ""},
	}
	for _, tt := range tests {
		if got := summarize(tt.input); got != tt.want {
			t.Errorf("summarize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFullSiteGeneration(t *testing.T) {
	catalog, pages := newTestPages(t, "")
	outputDir := t.TempDir()

	gen := &Generator{
		Catalog:     catalog,
		Pages:       pages,
		OutputDir:   outputDir,
		Theme:       refnav.ThemeDark,
		Concurrency: 4,
		Log:         logger.Nop(),
	}
	pageCount, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// 14 v2 entries and 10 v1 entries plus a landing page per version.
	if pageCount != 26 {
		t.Errorf("pageCount = %d, want 26", pageCount)
	}

	expectedFiles := []string{
		"index.html",
		"style.css",
		"script.js",
		"search-index.json",
		"reference/javascript/index.html",
		"reference/javascript/v1/index.html",
		"reference/javascript/eq/index.html",
		"reference/javascript/v1/eq/index.html",
		"reference/javascript/introduction/index.html",
		"reference/javascript/single/index.html",
	}
	for _, f := range expectedFiles {
		path := filepath.Join(outputDir, filepath.FromSlash(f))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("expected file %s does not exist", f)
		}
	}

	for _, f := range []string{"reference/javascript/v1/insert/index.html", "reference/javascript/upsert/index.html"} {
		if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(f))); err == nil {
			t.Errorf("hidden entry %s should not be generated", f)
		}
	}

	eqPage, err := os.ReadFile(filepath.Join(outputDir, "reference", "javascript", "eq", "index.html"))
	if err != nil {
		t.Fatalf("reading eq page: %v", err)
	}
	if !strings.Contains(string(eqPage), `<a class="function-link active" href="/reference/javascript/eq">`) {
		t.Error("eq page should mark eq active with an unversioned link")
	}

	home, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	if !strings.Contains(string(home), `href="/reference/javascript"`) {
		t.Error("home page should link to the javascript reference")
	}

	searchData, err := os.ReadFile(filepath.Join(outputDir, "search-index.json"))
	if err != nil {
		t.Fatalf("reading search-index.json: %v", err)
	}
	var searchEntries []SearchEntry
	if err := json.Unmarshal(searchData, &searchEntries); err != nil {
		t.Fatalf("parsing search-index.json: %v", err)
	}
	if len(searchEntries) != 24 {
		t.Errorf("search entries = %d, want 24", len(searchEntries))
	}
}

func TestGenerateCancelled(t *testing.T) {
	catalog, pages := newTestPages(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &Generator{Catalog: catalog, Pages: pages, OutputDir: t.TempDir(), Concurrency: 1, Log: logger.Nop()}
	if _, err := gen.Generate(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// newMarkerCatalog has a latest-only entry whose slug contains a version
// marker.
func newMarkerCatalog(t *testing.T) (*content.Catalog, *Pages) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"sections.json": `[{"title": "Data", "items": [
			{"id": "select", "title": "Fetch data", "slug": "select", "type": "function"},
			{"id": "csv1-export", "title": "Export CSV", "slug": "csv1-export", "type": "function"}
		]}]`,
		"v2.yml": "functions:\n  - id: select\n    title: select()\n  - id: csv1-export\n    title: csv()\n",
		"v1.yml": "functions:\n  - id: select\n    title: select()\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	catalog, err := content.NewCatalog([]config.LibraryConfig{{
		Key:      refnav.LibraryJavaScript,
		Sections: filepath.Join(dir, "sections.json"),
		Versions: []config.VersionConfig{
			{Name: "v2", Latest: true, Menu: "reference_javascript_v2", Spec: filepath.Join(dir, "v2.yml")},
			{Name: "v1", Menu: "reference_javascript_v1", Spec: filepath.Join(dir, "v1.yml")},
		},
	}}, "")
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	renderer, err := refnav.NewRenderer(refnav.NewMenus(config.DefaultMenus), logger.Nop())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	pages, err := NewPages(catalog, renderer, "")
	if err != nil {
		t.Fatalf("NewPages: %v", err)
	}
	return catalog, pages
}

func TestGenerateSlugWithVersionMarker(t *testing.T) {
	catalog, pages := newMarkerCatalog(t)
	outputDir := t.TempDir()

	gen := &Generator{Catalog: catalog, Pages: pages, OutputDir: outputDir, Theme: refnav.ThemeDark, Concurrency: 2, Log: logger.Nop()}
	count, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// v2: landing, select, csv1-export. v1: landing, select.
	if count != 5 {
		t.Errorf("pageCount = %d, want 5", count)
	}

	page, err := os.ReadFile(filepath.Join(outputDir, "reference", "javascript", "csv1-export", "index.html"))
	if err != nil {
		t.Fatalf("reading csv1-export page: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, `<a class="function-link inactive" href="/reference/javascript/select">`) {
		t.Error("sidebar links on a latest page must not carry a version segment")
	}
	if !strings.Contains(html, `<a href="/reference/javascript/v1">v1</a>`) {
		t.Error("v1 switcher option should fall back to the v1 landing page")
	}
}
