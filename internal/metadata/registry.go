package metadata

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry holds the role catalogs. It is written once at startup and safe
// for unlimited concurrent readers afterwards.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

func NewRegistry() *Registry {
	return &Registry{catalogs: make(map[string]*Catalog)}
}

// DefaultRegistry returns a registry preloaded with the built-in role
// catalogs. Built-ins are validated at authoring time, so a failure here is a
// programming defect and panics.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	if err := reg.Load(BuiltinCatalogs()); err != nil {
		panic(fmt.Sprintf("builtin catalogs are invalid: %v", err))
	}
	return reg
}

// Load validates and replaces all catalogs in the registry.
func (r *Registry) Load(catalogs []*Catalog) error {
	for _, c := range catalogs {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalogs = make(map[string]*Catalog, len(catalogs))
	for _, c := range catalogs {
		r.catalogs[c.Role] = c
	}
	return nil
}

// Register validates and adds (or replaces) a single catalog.
func (r *Registry) Register(c *Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalogs[c.Role] = c
	return nil
}

// GetCatalog returns the catalog for the exact role, or nil.
func (r *Registry) GetCatalog(role string) *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalogs[role]
}

// CatalogForRole returns the catalog for the role, falling back to the base
// user catalog for unknown roles. Unknown roles are a policy fallback, not an
// error.
func (r *Registry) CatalogForRole(role string) *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.catalogs[role]; ok {
		return c
	}
	if c, ok := r.catalogs[RoleUser]; ok {
		zap.L().Debug("unknown role, falling back to user catalog", zap.String("role", role))
		return c
	}
	return nil
}

// FieldsForRole returns the role's fields flattened in catalog order,
// applying the unknown-role fallback.
func (r *Registry) FieldsForRole(role string) []Field {
	c := r.CatalogForRole(role)
	if c == nil {
		return nil
	}
	return c.Fields()
}

// SectionsForRole returns the role's sections in display order, applying the
// unknown-role fallback.
func (r *Registry) SectionsForRole(role string) []Section {
	c := r.CatalogForRole(role)
	if c == nil {
		return nil
	}
	return c.Sections
}

// Roles returns the registered role names, sorted.
func (r *Registry) Roles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	roles := make([]string, 0, len(r.catalogs))
	for role := range r.catalogs {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
