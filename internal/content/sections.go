// Package content loads the reference content: the shared section tree, the
// per-library spec files that decide which entries exist, and markdown pages.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

// LoadSections reads a JSON array of section entries.
func LoadSections(path string) ([]refnav.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sections %s: %w", path, err)
	}
	var sections []refnav.Entry
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("parsing sections %s: %w", path, err)
	}
	return sections, nil
}
