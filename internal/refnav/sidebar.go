package refnav

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/refnav/internal/logger"
)

// ErrUnknownMenu is returned when Props.Menu is not registered.
var ErrUnknownMenu = errors.New("unknown menu")

// VersionOption is one entry of the version switcher.
type VersionOption struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Current bool   `json:"current"`
}

// Props are the inputs of one sidebar render.
type Props struct {
	Menu     MenuID
	Library  LibraryKey
	Sections []Entry
	Allowed  AllowList
	Versions []VersionOption
}

// Sidebar is the renderable view model.
type Sidebar struct {
	MenuID     MenuID          `json:"menu_id"`
	Title      string          `json:"title"`
	IconSrc    string          `json:"icon_src"`
	LevelClass string          `json:"level_class"`
	BackHref   string          `json:"back_href"`
	Versions   []VersionOption `json:"versions,omitempty"`
	Blocks     []Block         `json:"blocks"`
}

// Block is either a heading with its groups, or a single top-level link group
// (Header empty).
type Block struct {
	Header string  `json:"header,omitempty"`
	Groups []Group `json:"groups"`
}

// Group is a link that may expand into child links.
type Group struct {
	ID       string         `json:"id"`
	Open     bool           `json:"open"`
	Link     FunctionLink   `json:"link"`
	Children []FunctionLink `json:"children,omitempty"`
}

// Renderer turns Props into sidebar markup. It is immutable and safe for
// concurrent use.
type Renderer struct {
	menus Menus
	log   logger.Logger
	tmpl  *template.Template
}

// NewRenderer parses the sidebar templates.
func NewRenderer(menus Menus, log logger.Logger) (*Renderer, error) {
	tmpl, err := template.New("refnav").Parse(sidebarTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing sidebar template: %w", err)
	}
	return &Renderer{menus: menus, log: log, tmpl: tmpl}, nil
}

// Menu returns the registered menu for id.
func (r *Renderer) Menu(id MenuID) (Menu, bool) {
	m, ok := r.menus[id]
	return m, ok
}

// Build computes the sidebar view model.
func (r *Renderer) Build(p Props, route Route) (*Sidebar, error) {
	menu, ok := r.menus[p.Menu]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMenu, p.Menu)
	}
	if p.Sections == nil {
		r.log.Warn("no common sections imported", logger.String("menu", string(p.Menu)))
	}
	if route.Level == "" {
		route.Level = p.Menu
	}

	groups := ComputeActiveGroups(p.Sections, p.Allowed)

	sb := &Sidebar{
		MenuID:     menu.ID,
		Title:      menu.Title,
		IconSrc:    menuIconSrc(menu, route),
		LevelClass: levelClass(menu.ID, route.Level),
		BackHref:   route.BasePath + "/",
		Versions:   p.Versions,
		Blocks:     make([]Block, 0, len(p.Sections)),
	}

	for _, fn := range p.Sections {
		if !Visible(fn, p.Allowed) {
			continue
		}
		if fn.IsGroup() {
			block := Block{Header: fn.Title}
			for _, item := range fn.Items {
				if !Visible(item, p.Allowed) {
					continue
				}
				block.Groups = append(block.Groups, renderLink(item, p.Library, route, groups, p.Allowed))
			}
			sb.Blocks = append(sb.Blocks, block)
			continue
		}
		sb.Blocks = append(sb.Blocks, Block{
			Groups: []Group{renderLink(fn, p.Library, route, groups, p.Allowed)},
		})
	}

	return sb, nil
}

// renderLink renders e as a group, expanding it according to groups and the
// active id. Children hidden by the allow-list are dropped.
func renderLink(e Entry, library LibraryKey, route Route, groups ActiveGroups, allowed AllowList) Group {
	g := Group{
		ID:   e.ID,
		Open: groups.IsOpen(e.ID, route.ActiveID),
		Link: NewFunctionLink(e, library, route),
	}
	for _, child := range filterVisible(e.Items, allowed) {
		g.Children = append(g.Children, NewFunctionLink(child, library, route))
	}
	return g
}

func menuIconSrc(menu Menu, route Route) string {
	suffix := "-light"
	if route.Theme == ThemeDark {
		suffix = ""
	}
	return route.BasePath + "/img/icons/menu/" + menu.Icon + suffix + ".svg"
}

func levelClass(id, level MenuID) string {
	switch level {
	case id:
		return "menu-level menu-enabled"
	case LevelHome:
		return "menu-level menu-home menu-hidden"
	default:
		return "menu-level menu-offset menu-hidden"
	}
}

// Render writes the sidebar markup for p to w.
func (r *Renderer) Render(w io.Writer, p Props, route Route) error {
	sb, err := r.Build(p, route)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "sidebar", sb)
}

// RenderHTML is Render into a string suitable for embedding in a page.
func (r *Renderer) RenderHTML(p Props, route Route) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, p, route); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
