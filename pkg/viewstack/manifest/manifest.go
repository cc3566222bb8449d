// Package manifest loads named view descriptors from TOML or HCL files so
// hosts can declare their views as data instead of code.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/view"
)

// ErrManifest wraps every parse and validation failure.
var ErrManifest = errors.New("invalid view manifest")

// Catalog is a set of descriptors keyed by view name.
type Catalog struct {
	views map[string]*view.Descriptor
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{views: make(map[string]*view.Descriptor)}
}

// Add validates d and stores it under name.
func (c *Catalog) Add(name string, d *view.Descriptor) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: view name is required", ErrManifest)
	}
	if d == nil {
		return fmt.Errorf("%w: view %q: missing descriptor", ErrManifest, name)
	}
	if _, exists := c.views[name]; exists {
		return fmt.Errorf("%w: view %q declared twice", ErrManifest, name)
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: view %q: %w", ErrManifest, name, err)
	}
	c.views[name] = d
	return nil
}

// Get returns the descriptor registered under name.
func (c *Catalog) Get(name string) (*view.Descriptor, bool) {
	d, ok := c.views[name]
	return d, ok
}

// MustGet is Get for names the host knows to be present. It panics otherwise.
func (c *Catalog) MustGet(name string) *view.Descriptor {
	d, ok := c.views[name]
	if !ok {
		panic(fmt.Sprintf("manifest: unknown view %q", name))
	}
	return d
}

// Names returns the registered names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.views))
	for name := range c.views {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered views.
func (c *Catalog) Len() int {
	return len(c.views)
}

// Load reads a manifest file, choosing the format by extension.
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".hcl":
		return LoadHCL(path)
	default:
		return nil, fmt.Errorf("%w: unsupported manifest format %q", ErrManifest, filepath.Ext(path))
	}
}

// entry is the format-neutral shape of one declared view.
type entry struct {
	Path     string
	Order    int
	Focus    string
	Cache    string
	Multiple bool
}

func (e entry) descriptor() (*view.Descriptor, error) {
	var focus view.FocusPolicy
	if err := focus.UnmarshalText([]byte(e.Focus)); err != nil {
		return nil, err
	}
	var cache view.CachePolicy
	if err := cache.UnmarshalText([]byte(e.Cache)); err != nil {
		return nil, err
	}
	opts := []view.Option{
		view.WithFixedOrder(e.Order),
		view.WithFocus(focus),
		view.WithCache(cache),
	}
	if e.Multiple {
		opts = append(opts, view.Multiple())
	}
	return view.NewDescriptor(e.Path, opts...), nil
}

func (c *Catalog) addEntry(name string, s entry) error {
	d, err := s.descriptor()
	if err != nil {
		return fmt.Errorf("%w: view %q: %w", ErrManifest, name, err)
	}
	return c.Add(name, d)
}
