package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/refnav/internal/content"
	"github.com/ziadkadry99/refnav/internal/logger"
	"github.com/ziadkadry99/refnav/internal/progress"
	"github.com/ziadkadry99/refnav/internal/refnav"
)

// Generator writes the static reference site.
type Generator struct {
	Catalog     *content.Catalog
	Pages       *Pages
	OutputDir   string
	Theme       refnav.Theme
	Concurrency int
	Reporter    progress.Reporter
	Log         logger.Logger
}

// job is one page to write.
type job struct {
	library *content.Library
	version *content.Version
	slug    string
	// landing pages are written at the version root.
	landing bool
}

func (j job) target() string {
	if j.landing {
		return j.library.RootPath(j.version)
	}
	return refnav.LinkTarget(j.library.Key, j.version.Segment(), j.slug)
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	jobs := g.plan()
	if len(jobs) == 0 {
		return 0, fmt.Errorf("no reference pages to generate")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := g.writeAssets(); err != nil {
		return 0, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(jobs))
	defer reporter.Finish()

	var (
		mu      sync.Mutex
		entries []SearchEntry
	)

	eg, egCtx := errgroup.WithContext(ctx)
	if g.Concurrency > 0 {
		eg.SetLimit(g.Concurrency)
	}
	for _, j := range jobs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := g.writePage(j)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", j.target(), err)
			}
			reporter.Advance(j.target())
			if !j.landing {
				mu.Lock()
				entries = append(entries, SearchEntry{
					Path:    j.target(),
					Title:   res.Title,
					Library: string(res.Library),
					Version: res.Version.Label(),
					Summary: res.Summary,
				})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, SearchIndexFile)); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	var home bytes.Buffer
	if err := g.Pages.RenderHome(&home, g.Theme); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "index.html"), home.Bytes(), 0o644); err != nil {
		return 0, err
	}

	g.Log.Info("reference site generated",
		logger.String("output", g.OutputDir),
		logger.Int("pages", len(jobs)))
	return len(jobs), nil
}

// plan lists every page: a landing page per library version plus one page
// per linked sidebar entry.
func (g *Generator) plan() []job {
	var jobs []job
	for _, lib := range g.Catalog.Libraries() {
		for _, v := range lib.Versions {
			linked := refnav.Linked(lib.Sections, v.Allowed)
			if len(linked) == 0 {
				g.Log.Warn("library version has no visible entries",
					logger.String("library", string(lib.Key)),
					logger.String("version", v.Label()))
				continue
			}
			jobs = append(jobs, job{library: lib, version: v, landing: true})
			seen := make(map[string]bool, len(linked))
			for _, e := range linked {
				slug := e.URLSlug()
				if seen[slug] {
					continue
				}
				seen[slug] = true
				jobs = append(jobs, job{library: lib, version: v, slug: slug})
			}
		}
	}
	return jobs
}

func (g *Generator) writePage(j job) (*Result, error) {
	var buf bytes.Buffer
	res, err := g.Pages.Render(&buf, Request{
		Library: j.library.Key,
		Version: j.version,
		Slug:    j.slug,
		Theme:   g.Theme,
	})
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(strings.TrimPrefix(j.target(), "/")), "index.html")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Generator) writeAssets() error {
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(StyleSheet), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(Script), 0o644)
}
