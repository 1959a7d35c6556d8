package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/refnav/internal/content"
	"github.com/ziadkadry99/refnav/internal/refnav"
)

// Request addresses one reference page.
type Request struct {
	Library refnav.LibraryKey
	// Version to render. Nil selects the latest version.
	Version *content.Version
	// Slug of the entry. Empty selects the first entry of the sidebar.
	Slug  string
	Theme refnav.Theme
}

// Result describes a rendered page.
type Result struct {
	Library refnav.LibraryKey
	Version *content.Version
	Entry   refnav.Entry
	Title   string
	Summary string
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title    string
	Library  refnav.LibraryKey
	Theme    refnav.Theme
	Sidebar  template.HTML
	Content  template.HTML
	BasePath string
}

// Pages renders full reference pages: sidebar plus markdown body. It is
// shared by the static generator and the HTTP server and is safe for
// concurrent use.
type Pages struct {
	catalog  *content.Catalog
	renderer *refnav.Renderer
	basePath string
	md       goldmark.Markdown
	tmpl     *template.Template
}

// NewPages parses the page templates and configures goldmark.
func NewPages(catalog *content.Catalog, renderer *refnav.Renderer, basePath string) (*Pages, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	if _, err := tmpl.New("home").Parse(homeTemplate); err != nil {
		return nil, fmt.Errorf("parsing home template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &Pages{
		catalog:  catalog,
		renderer: renderer,
		basePath: basePath,
		md:       md,
		tmpl:     tmpl,
	}, nil
}

// Render writes the page addressed by req to w. Nothing is written when an
// error is returned.
func (p *Pages) Render(w io.Writer, req Request) (*Result, error) {
	lib, err := p.catalog.Library(req.Library)
	if err != nil {
		return nil, err
	}
	v := req.Version
	if v == nil {
		if v, err = lib.Version(""); err != nil {
			return nil, err
		}
	}

	slug := req.Slug
	if slug == "" {
		linked := refnav.Linked(lib.Sections, v.Allowed)
		if len(linked) == 0 {
			return nil, fmt.Errorf("%w: library %s has no pages", content.ErrNotFound, lib.Key)
		}
		slug = linked[0].URLSlug()
	}

	page, err := p.catalog.Page(lib, v, slug)
	if err != nil {
		return nil, err
	}

	route := refnav.Route{
		Path:     lib.RootPath(v),
		BasePath: p.basePath,
		ActiveID: page.Entry.ID,
		Level:    v.Menu,
		Theme:    req.Theme,
	}
	sidebar, err := p.renderer.RenderHTML(lib.Props(v, slug, p.basePath), route)
	if err != nil {
		return nil, fmt.Errorf("rendering sidebar: %w", err)
	}

	var body bytes.Buffer
	if err := p.md.Convert([]byte(page.Markdown), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var out bytes.Buffer
	err = p.tmpl.ExecuteTemplate(&out, "page", pageData{
		Title:    page.Title,
		Library:  lib.Key,
		Theme:    req.Theme,
		Sidebar:  sidebar,
		Content:  template.HTML(body.String()),
		BasePath: p.basePath,
	})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	if _, err := out.WriteTo(w); err != nil {
		return nil, err
	}

	return &Result{
		Library: lib.Key,
		Version: v,
		Entry:   page.Entry,
		Title:   page.Title,
		Summary: summarize(page.Markdown),
	}, nil
}

// homeLink is one library on the landing page.
type homeLink struct {
	Title string
	Href  string
}

// RenderHome writes the landing page listing every library.
func (p *Pages) RenderHome(w io.Writer, theme refnav.Theme) error {
	var links []homeLink
	for _, lib := range p.catalog.Libraries() {
		title := string(lib.Key)
		if len(lib.Versions) > 0 {
			if menu, ok := p.renderer.Menu(lib.Versions[0].Menu); ok && menu.Title != "" {
				title = menu.Title
			}
		}
		links = append(links, homeLink{
			Title: title,
			Href:  p.basePath + "/reference/" + string(lib.Key),
		})
	}

	var out bytes.Buffer
	err := p.tmpl.ExecuteTemplate(&out, "home", struct {
		Theme    refnav.Theme
		BasePath string
		Links    []homeLink
	}{theme, p.basePath, links})
	if err != nil {
		return fmt.Errorf("executing home template: %w", err)
	}
	_, err = out.WriteTo(w)
	return err
}
