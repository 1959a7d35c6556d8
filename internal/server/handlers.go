package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/refnav/internal/content"
	"github.com/ziadkadry99/refnav/internal/logger"
	"github.com/ziadkadry99/refnav/internal/refnav"
	"github.com/ziadkadry99/refnav/internal/site"
)

// themeCookie remembers the reader's theme choice.
const themeCookie = "theme"

func (s *Server) theme(r *http.Request) refnav.Theme {
	if q := r.URL.Query().Get("theme"); q != "" {
		return refnav.ParseTheme(q, s.cfg.Theme)
	}
	if c, err := r.Cookie(themeCookie); err == nil {
		return refnav.ParseTheme(c.Value, s.cfg.Theme)
	}
	return s.cfg.Theme
}

// sitePath is the request path without the base path.
func (s *Server) sitePath(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, s.cfg.BasePath)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.pages.RenderHome(&buf, s.theme(r)); err != nil {
		s.log.Error("rendering home", logger.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *Server) handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	key := refnav.LibraryKey(chi.URLParam(r, "lib"))
	lib, err := s.catalog.Library(key)
	if err != nil {
		s.renderError(w, key, err)
		return
	}
	v, slug, err := lib.Locate(s.sitePath(r))
	if err != nil {
		s.renderError(w, key, err)
		return
	}

	var buf bytes.Buffer
	res, err := s.pages.Render(&buf, site.Request{
		Library: key,
		Version: v,
		Slug:    slug,
		Theme:   s.theme(r),
	})
	if err != nil {
		s.renderError(w, key, err)
		return
	}

	s.metrics.PagesRendered.Increment(string(key), res.Version.Label())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// sidebarResponse is the JSON body of /api/sidebar/{lib}.
type sidebarResponse struct {
	Library refnav.LibraryKey `json:"library"`
	Version string            `json:"version"`
	Sidebar *refnav.Sidebar   `json:"sidebar"`
}

// handleSidebar returns the sidebar view model for ?path= (default: the
// library root). ?active= names the active entry by slug or id and defaults
// to the slug in the path.
func (s *Server) handleSidebar(w http.ResponseWriter, r *http.Request) {
	key := refnav.LibraryKey(chi.URLParam(r, "lib"))
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/reference/" + string(key)
	}

	lib, err := s.catalog.Library(key)
	if err != nil {
		s.renderError(w, key, err)
		return
	}
	v, slug, err := lib.Locate(path)
	if err != nil {
		s.renderError(w, key, err)
		return
	}

	active := r.URL.Query().Get("active")
	if active == "" {
		active = slug
	}
	if e, ok := refnav.FindBySlug(lib.Sections, active); ok {
		slug = e.URLSlug()
		active = e.ID
	}

	sb, err := s.renderer.Build(lib.Props(v, slug, s.cfg.BasePath), refnav.Route{
		Path:     lib.RootPath(v),
		BasePath: s.cfg.BasePath,
		ActiveID: active,
		Level:    v.Menu,
		Theme:    s.theme(r),
	})
	if err != nil {
		s.renderError(w, key, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sidebarResponse{Library: key, Version: v.Label(), Sidebar: sb})
}

func (s *Server) notFound(w http.ResponseWriter, lib refnav.LibraryKey) {
	s.metrics.NotFound.Increment(string(lib))
	http.Error(w, "not found", http.StatusNotFound)
}

func (s *Server) renderError(w http.ResponseWriter, lib refnav.LibraryKey, err error) {
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrUnknownLibrary) {
		s.notFound(w, lib)
		return
	}
	s.log.Error("rendering reference", logger.String("library", string(lib)), logger.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
