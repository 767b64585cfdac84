// Package catalog is the process-wide registry of lifecycle-managed entity
// types. It is built once at startup from the static schema descriptors and
// is immutable afterwards, so any number of requests may read it without
// locking. Generic lifecycle operations resolve entities here instead of
// reflecting over storage internals at call time: an unknown module name
// fails fast with a typed error.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/insurdesk/brokerage-backend/internal/adapter/postgres/schema"
	"github.com/insurdesk/brokerage-backend/internal/domain"
)

// Capability is a declared property of an entity's schema used to gate
// generic operations.
type Capability string

const (
	CapSoftDelete     Capability = "soft-delete"
	CapStatusToggle   Capability = "status-toggle"
	CapWorkflowStatus Capability = "workflow-status"
)

// Field is one column of an entity, with its capability tags.
type Field struct {
	Name         string
	Capabilities []Capability
}

// Has reports whether the field carries the given capability tag.
func (f Field) Has(c Capability) bool {
	return slices.Contains(f.Capabilities, c)
}

// LifecycleStore is the storage handle the catalog hands out for an entity.
// Implementations must be safe for concurrent use; both operations are
// single atomic row updates.
type LifecycleStore interface {
	SoftDelete(ctx context.Context, id int64) (domain.Record, error)
	ToggleActive(ctx context.Context, id int64) (domain.Record, error)
}

// Entity describes one registered entity type: its identity, field list
// and the storage handle used by generic lifecycle operations.
type Entity struct {
	// CanonicalName is the case-preserving identity used in errors and logs.
	CanonicalName string
	// Table is the storage-facing name; Lookup matches it too.
	Table  string
	Fields []Field
	Store  LifecycleStore
}

// Has reports whether any field of the entity carries the capability.
func (e *Entity) Has(c Capability) bool {
	for _, f := range e.Fields {
		if f.Has(c) {
			return true
		}
	}
	return false
}

// FieldWith returns the first field carrying the capability.
func (e *Entity) FieldWith(c Capability) (Field, bool) {
	for _, f := range e.Fields {
		if f.Has(c) {
			return f, true
		}
	}
	return Field{}, false
}

// FromTable builds an Entity descriptor from a schema table and its
// lifecycle store, tagging capability fields from the table metadata.
func FromTable(t schema.Table, store LifecycleStore) Entity {
	fields := make([]Field, 0, len(t.Columns))
	for _, col := range t.Columns {
		f := Field{Name: col}
		if t.SoftDeletable() && col == t.DeletedColumn {
			f.Capabilities = append(f.Capabilities, CapSoftDelete)
		}
		if col == t.ActiveColumn {
			f.Capabilities = append(f.Capabilities, CapStatusToggle)
		}
		if col == t.WorkflowStatusColumn {
			f.Capabilities = append(f.Capabilities, CapWorkflowStatus)
		}
		fields = append(fields, f)
	}
	return Entity{
		CanonicalName: t.Entity,
		Table:         t.Name,
		Fields:        fields,
		Store:         store,
	}
}

// Catalog maps entity names to descriptors. Register is only safe before
// the catalog is shared; Lookup is safe for unguarded concurrent use once
// registration is complete.
type Catalog struct {
	byName   map[string]*Entity
	entities []*Entity
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byName: make(map[string]*Entity)}
}

// Register adds an entity under its canonical and table names. Registering
// the same entity twice with identical metadata is a no-op; registering a
// different schema under an existing name is a configuration error and the
// caller must treat it as fatal.
func (c *Catalog) Register(e Entity) error {
	if e.CanonicalName == "" || e.Table == "" {
		return fmt.Errorf("catalog: entity needs canonical and table names")
	}
	if e.Store == nil {
		return fmt.Errorf("catalog: entity %s has no storage handle", e.CanonicalName)
	}

	canonKey := strings.ToLower(e.CanonicalName)
	tableKey := strings.ToLower(e.Table)

	if existing, ok := c.byName[canonKey]; ok {
		if sameMetadata(existing, &e) {
			return nil
		}
		return fmt.Errorf("catalog: conflicting registration for %s", existing.CanonicalName)
	}
	if existing, ok := c.byName[tableKey]; ok {
		return fmt.Errorf("catalog: table name %s already registered for %s",
			e.Table, existing.CanonicalName)
	}

	ent := e
	c.byName[canonKey] = &ent
	c.byName[tableKey] = &ent
	c.entities = append(c.entities, &ent)
	return nil
}

// Lookup finds an entity by canonical or table name, case-insensitively.
func (c *Catalog) Lookup(name string) (*Entity, error) {
	if e, ok := c.byName[strings.ToLower(name)]; ok {
		return e, nil
	}
	return nil, &domain.UnknownEntityError{Name: name}
}

// Entities returns every registered entity, in registration order.
func (c *Catalog) Entities() []*Entity {
	out := make([]*Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

func sameMetadata(a, b *Entity) bool {
	if a.CanonicalName != b.CanonicalName || a.Table != b.Table || len(a.Fields) != len(b.Fields) {
		return false
	}
	for i := range a.Fields {
		if a.Fields[i].Name != b.Fields[i].Name {
			return false
		}
		if !slices.Equal(a.Fields[i].Capabilities, b.Fields[i].Capabilities) {
			return false
		}
	}
	return true
}
