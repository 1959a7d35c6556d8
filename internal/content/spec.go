package content

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

// Spec is a library spec file. Only the parts the reference site needs are
// decoded.
type Spec struct {
	Info      SpecInfo   `yaml:"info"`
	Functions []Function `yaml:"functions"`
}

// SpecInfo describes the library the spec belongs to.
type SpecInfo struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Library string `yaml:"library"`
	Version string `yaml:"version"`
}

// Function is one documented function of a library.
type Function struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Notes       string    `yaml:"notes"`
	Examples    []Example `yaml:"examples"`
}

// Example is a code sample attached to a function.
type Example struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
	Response    string `yaml:"response"`
}

// LoadSpec parses a single spec YAML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec %s: %w", path, err)
	}
	for i, fn := range spec.Functions {
		if fn.ID == "" {
			return nil, fmt.Errorf("spec %s: function %d has no id", path, i)
		}
	}
	return &spec, nil
}

// LoadSpecs loads every file matching the doublestar pattern and merges them
// in lexical path order. Functions with the same id are replaced by later
// files.
func LoadSpecs(pattern string) (*Spec, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("matching spec pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no spec files match %q", pattern)
	}
	sort.Strings(paths)

	merged := &Spec{}
	index := make(map[string]int)
	for _, p := range paths {
		spec, err := LoadSpec(p)
		if err != nil {
			return nil, err
		}
		if merged.Info.ID == "" {
			merged.Info = spec.Info
		}
		for _, fn := range spec.Functions {
			if i, ok := index[fn.ID]; ok {
				merged.Functions[i] = fn
				continue
			}
			index[fn.ID] = len(merged.Functions)
			merged.Functions = append(merged.Functions, fn)
		}
	}
	return merged, nil
}

// AllowList returns the ids of all spec functions as an allow-list.
func (s *Spec) AllowList() refnav.AllowList {
	ids := make([]string, len(s.Functions))
	for i, fn := range s.Functions {
		ids[i] = fn.ID
	}
	return refnav.RestrictedTo(ids...)
}

// Markdown renders the function as a markdown page.
func (f Function) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", f.Title)
	if f.Description != "" {
		b.WriteString(strings.TrimSpace(f.Description))
		b.WriteString("\n\n")
	}
	if f.Notes != "" {
		b.WriteString(strings.TrimSpace(f.Notes))
		b.WriteString("\n\n")
	}
	if len(f.Examples) > 0 {
		b.WriteString("## Examples\n\n")
		for _, ex := range f.Examples {
			fmt.Fprintf(&b, "### %s\n\n", ex.Name)
			if ex.Code != "" {
				b.WriteString(strings.TrimSpace(ex.Code))
				b.WriteString("\n\n")
			}
			if ex.Description != "" {
				b.WriteString(strings.TrimSpace(ex.Description))
				b.WriteString("\n\n")
			}
			if ex.Response != "" {
				b.WriteString("#### Response\n\n")
				b.WriteString(strings.TrimSpace(ex.Response))
				b.WriteString("\n\n")
			}
		}
	}
	return b.String()
}
