package manifest

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

type tomlView struct {
	Path     string `toml:"path"`
	Order    int    `toml:"order"`
	Focus    string `toml:"focus"`
	Cache    string `toml:"cache"`
	Multiple bool   `toml:"multiple"`
}

type tomlFile struct {
	Views map[string]tomlView `toml:"views"`
}

// DecodeTOML reads a catalog from [views.<name>] tables. Unknown keys are
// rejected.
func DecodeTOML(r io.Reader) (*Catalog, error) {
	var file tomlFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrManifest, strings.Join(keys, ", "))
	}

	names := make([]string, 0, len(file.Views))
	for name := range file.Views {
		names = append(names, name)
	}
	slices.Sort(names)

	c := New()
	for _, name := range names {
		v := file.Views[name]
		if err := c.addEntry(name, entry(v)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadTOML reads a TOML manifest from path.
func LoadTOML(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest %s: %w", path, err)
	}
	defer f.Close()

	c, err := DecodeTOML(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
