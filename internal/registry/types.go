package registry

// CatalogFile is the name of the catalog resource inside a template root.
const CatalogFile = "templates.yaml"

// Descriptor describes one starter template.
type Descriptor struct {
	ID          string // e.g., "react-typescript"; also the directory name
	Name        string // display label, e.g., "React + TypeScript"
	Description string
	Path        string // slash-separated location of the tree, "<root>/<ID>"
}

// entry is the on-disk shape of one catalog value.
type entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
