package site

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
)

// SearchEntry represents a single searchable reference page.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Library string `json:"library"`
	Version string `json:"version"`
	Summary string `json:"summary"`
}

// summarize returns the first prose line of a markdown page, skipping
// headings, list markers and fenced code.
func summarize(markdown string) string {
	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, "-* ")
		if len(trimmed) > 200 {
			trimmed = trimmed[:200] + "..."
		}
		return trimmed
	}
	return ""
}

// WriteSearchIndex writes the search index as JSON to the given path, sorted
// by path so builds are reproducible.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
