package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ziadkadry99/refnav/internal/logger"
)

// SearchIndexFile is the name of the search index in the output directory.
const SearchIndexFile = "search-index.json"

// LoadSearchIndex reads the search index written by the generator.
func LoadSearchIndex(dir string) ([]SearchEntry, error) {
	data, err := os.ReadFile(filepath.Join(dir, SearchIndexFile))
	if err != nil {
		return nil, err
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", SearchIndexFile, err)
	}
	return entries, nil
}

// Search returns up to limit entries matching every word of query. Title
// matches rank before path and summary matches.
func Search(entries []SearchEntry, query string, limit int) []SearchEntry {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	var titled, other []SearchEntry
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		haystack := title + " " + strings.ToLower(e.Path) + " " + strings.ToLower(e.Summary)

		inTitle, all := true, true
		for _, w := range words {
			if !strings.Contains(haystack, w) {
				all = false
				break
			}
			if !strings.Contains(title, w) {
				inTitle = false
			}
		}
		switch {
		case !all:
		case inTitle:
			titled = append(titled, e)
		default:
			other = append(other, e)
		}
	}

	results := append(titled, other...)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// PreviewHandler serves a generated site from dir with an /api/search
// endpoint over its search index. A missing index disables search.
func PreviewHandler(dir string, log logger.Logger) http.Handler {
	entries, err := LoadSearchIndex(dir)
	if err != nil {
		log.Warn("search disabled", logger.Error(err))
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if entries == nil {
			writeJSONError(w, http.StatusServiceUnavailable, "search index not available")
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeJSONError(w, http.StatusBadRequest, "q is required")
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > 50 {
			limit = 10
		}

		results := Search(entries, query, limit)
		if results == nil {
			results = []SearchEntry{}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"results": results})
	})

	r.Handle("/*", http.FileServer(http.Dir(dir)))
	return r
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Preview serves the generated site in dir until ctx is cancelled.
func Preview(ctx context.Context, dir string, port int, open bool, log logger.Logger) error {
	url := fmt.Sprintf("http://localhost:%d", port)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           PreviewHandler(dir, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if open {
		go openBrowser(url)
	}
	log.Info("serving site preview", logger.String("url", url), logger.String("dir", dir))

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
