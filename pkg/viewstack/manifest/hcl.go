package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type hclView struct {
	Name     string `hcl:"name,label"`
	Path     string `hcl:"path"`
	Order    int    `hcl:"order,optional"`
	Focus    string `hcl:"focus,optional"`
	Cache    string `hcl:"cache,optional"`
	Multiple bool   `hcl:"multiple,optional"`
}

type hclFile struct {
	Views []hclView `hcl:"view,block"`
}

// ParseHCL reads a catalog from view "name" { ... } blocks. filename is
// only used in diagnostics.
func ParseHCL(src []byte, filename string) (*Catalog, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrManifest, diags)
	}
	return decodeHCL(file)
}

// LoadHCL reads an HCL manifest from path.
func LoadHCL(path string) (*Catalog, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrManifest, path, diags)
	}
	return decodeHCL(file)
}

func decodeHCL(file *hcl.File) (*Catalog, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrManifest, diags)
	}

	c := New()
	for _, v := range parsed.Views {
		s := entry{
			Path:     v.Path,
			Order:    v.Order,
			Focus:    v.Focus,
			Cache:    v.Cache,
			Multiple: v.Multiple,
		}
		if err := c.addEntry(v.Name, s); err != nil {
			return nil, err
		}
	}
	return c, nil
}
