// Package lifecycle implements the generic module lifecycle operations:
// soft delete and the active/inactive status toggle, parameterized by the
// entity resolved from the caller-supplied module name. The service does
// no logging of its own; every failure is returned as a typed error and
// every mutation is a single atomic record update, so no cleanup path
// exists either.
package lifecycle

import (
	"github.com/insurdesk/brokerage-backend/internal/catalog"
)

// entityResolver is the boundary that turns raw module names into
// validated descriptors.
type entityResolver interface {
	Resolve(moduleName string) (*catalog.Entity, error)
}

// Service applies lifecycle operations to any cataloged entity.
type Service struct {
	resolver entityResolver
}

// New creates the lifecycle service.
func New(resolver entityResolver) *Service {
	return &Service{resolver: resolver}
}
