package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTemplateNotFound indicates a template id that is not in the catalog.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrCatalog indicates a missing or malformed catalog resource.
	ErrCatalog = errors.New("invalid template catalog")
)

// NotFoundError is returned by Resolve for unknown ids.
type NotFoundError struct {
	ID        string
	Available []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("template %q not found", e.ID)
	if len(e.Available) > 0 {
		msg += "; available templates: " + strings.Join(e.Available, ", ")
	}
	return msg
}

// Unwrap lets errors.Is match ErrTemplateNotFound.
func (e *NotFoundError) Unwrap() error { return ErrTemplateNotFound }

// CatalogError is a configuration defect in the catalog resource.
type CatalogError struct {
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("loading template catalog %s: %v", e.Path, e.Err)
}

// Is lets errors.Is match ErrCatalog as well as the wrapped cause.
func (e *CatalogError) Is(target error) bool { return target == ErrCatalog }

func (e *CatalogError) Unwrap() error { return e.Err }
