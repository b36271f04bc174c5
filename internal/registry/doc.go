// Package registry loads the template catalog. The catalog is a YAML mapping
// from template id to display name and description; each id doubles as the
// directory name of that template's tree next to the catalog file. A Catalog
// is loaded once per process and passed explicitly to its consumers.
package registry
