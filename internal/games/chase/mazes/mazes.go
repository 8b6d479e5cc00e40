// Package mazes holds the built-in maze layouts and loads custom ones from YAML.
package mazes

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var builtinFS embed.FS

// Definition is one maze file.
type Definition struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Layout      []string `yaml:"layout"`
	Colors      []string `yaml:"adversary_colors"`
}

// Size returns the number of columns and rows of the layout.
func (d Definition) Size() (cols, rows int) {
	for _, row := range d.Layout {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols, len(d.Layout)
}

// Validate checks that the layout is usable.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("mazes: missing id")
	}
	if len(d.Layout) == 0 {
		return fmt.Errorf("mazes: %s: empty layout", d.ID)
	}
	pellets := 0
	for _, row := range d.Layout {
		pellets += strings.Count(row, ".")
	}
	if pellets == 0 {
		return fmt.Errorf("mazes: %s: layout has no pellets", d.ID)
	}
	if strings.Count(strings.Join(d.Layout, ""), "P") > 1 {
		return fmt.Errorf("mazes: %s: more than one player spawn", d.ID)
	}
	return nil
}

// Parse decodes and validates a YAML maze definition.
func Parse(data []byte) (Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("mazes: parse: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Definition{}, err
	}
	return d, nil
}

// LoadFile reads a maze definition from disk.
func LoadFile(p string) (Definition, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Definition{}, fmt.Errorf("mazes: read %s: %w", p, err)
	}
	d, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%w (file %s)", err, p)
	}
	return d, nil
}

// Builtin returns every embedded maze sorted by ID.
func Builtin() ([]Definition, error) {
	entries, err := builtinFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("mazes: list builtin: %w", err)
	}

	var defs []Definition
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := builtinFS.ReadFile(e.Name())
		if err != nil {
			return nil, fmt.Errorf("mazes: read builtin %s: %w", e.Name(), err)
		}
		d, err := Parse(data)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, nil
}

// ByID returns the embedded maze with the given ID.
func ByID(id string) (Definition, error) {
	defs, err := Builtin()
	if err != nil {
		return Definition{}, err
	}
	for _, d := range defs {
		if d.ID == id {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("mazes: unknown maze %q", id)
}

// MustByID is ByID for the embedded mazes, which are known to be valid.
func MustByID(id string) Definition {
	d, err := ByID(id)
	if err != nil {
		panic(err)
	}
	return d
}
