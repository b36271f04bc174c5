package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// Catalog is an immutable, ordered set of template descriptors.
type Catalog struct {
	root        string
	descriptors []Descriptor
	index       map[string]int
}

// Load reads <root>/templates.yaml from fsys. Any problem with the resource
// is a *CatalogError: the catalog ships with the binary, so a bad one is a
// packaging defect rather than user error.
func Load(fsys fs.FS, root string) (*Catalog, error) {
	catalogPath := path.Join(root, CatalogFile)

	data, err := fs.ReadFile(fsys, catalogPath)
	if err != nil {
		return nil, &CatalogError{Path: catalogPath, Err: err}
	}

	descriptors, err := parse(data, root)
	if err != nil {
		return nil, &CatalogError{Path: catalogPath, Err: err}
	}

	return New(root, descriptors)
}

// New builds a catalog from descriptors, keeping their order. It is the
// constructor tests use to substitute a fake catalog.
func New(root string, descriptors []Descriptor) (*Catalog, error) {
	c := &Catalog{
		root:        root,
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.ID == "" {
			return nil, &CatalogError{Path: root, Err: errors.New("template with empty id")}
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, &CatalogError{Path: root, Err: fmt.Errorf("duplicate template id %q", d.ID)}
		}
		if d.Path == "" {
			d.Path = path.Join(root, d.ID)
		}
		c.index[d.ID] = len(c.descriptors)
		c.descriptors = append(c.descriptors, d)
	}
	return c, nil
}

// parse decodes the catalog through yaml.Node so the declared order of the
// mapping survives; decoding into a Go map would lose it.
func parse(data []byte, root string) ([]Descriptor, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("catalog is empty")
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: catalog must be a mapping of template id to {name, description}", mapping.Line)
	}
	if len(mapping.Content) == 0 {
		return nil, errors.New("catalog declares no templates")
	}

	seen := make(map[string]bool, len(mapping.Content)/2)
	descriptors := make([]Descriptor, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]

		id := keyNode.Value
		if keyNode.Kind != yaml.ScalarNode || id == "" {
			return nil, fmt.Errorf("line %d: template id must be a non-empty string", keyNode.Line)
		}
		if seen[id] {
			return nil, fmt.Errorf("line %d: duplicate template id %q", keyNode.Line, id)
		}
		seen[id] = true

		var e entry
		if err := valNode.Decode(&e); err != nil {
			return nil, fmt.Errorf("line %d: template %q: %w", valNode.Line, id, err)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("line %d: template %q has no name", valNode.Line, id)
		}

		descriptors = append(descriptors, Descriptor{
			ID:          id,
			Name:        e.Name,
			Description: e.Description,
			Path:        path.Join(root, id),
		})
	}
	return descriptors, nil
}

// Root returns the directory the catalog was loaded from.
func (c *Catalog) Root() string { return c.root }

// Resolve returns the descriptor for id or a *NotFoundError.
func (c *Catalog) Resolve(id string) (Descriptor, error) {
	i, ok := c.index[id]
	if !ok {
		return Descriptor{}, &NotFoundError{ID: id, Available: c.IDs()}
	}
	return c.descriptors[i], nil
}

// List returns the descriptors in declared order. The slice is a copy.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// IDs returns the template ids in declared order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.descriptors))
	for i, d := range c.descriptors {
		ids[i] = d.ID
	}
	return ids
}

// Verify checks that every descriptor's tree exists as a directory in fsys.
func (c *Catalog) Verify(fsys afero.Fs) error {
	var missing []error
	for _, d := range c.descriptors {
		info, err := fsys.Stat(d.Path)
		if err != nil {
			missing = append(missing, fmt.Errorf("template %q: %w", d.ID, err))
			continue
		}
		if !info.IsDir() {
			missing = append(missing, fmt.Errorf("template %q: %s is not a directory", d.ID, d.Path))
		}
	}
	if len(missing) > 0 {
		return &CatalogError{Path: c.root, Err: errors.Join(missing...)}
	}
	return nil
}
