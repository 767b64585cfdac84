package catalog

import (
	"strings"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// Resolver translates a free-text module name from a request into a
// validated entity descriptor. No caller handles raw name strings beyond
// this boundary. Resolution is a pure lookup with no side effects.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(c *Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve normalizes whitespace and case in the module name and looks it
// up in the catalog. The returned descriptor keeps its stored canonical
// name; normalization never alters it. An unresolvable name yields
// domain.ErrUnknownEntity, which handlers surface as a client error.
func (r *Resolver) Resolve(moduleName string) (*Entity, error) {
	name := strings.TrimSpace(moduleName)
	if name == "" {
		return nil, &domain.UnknownEntityError{Name: moduleName}
	}
	return r.catalog.Lookup(name)
}
