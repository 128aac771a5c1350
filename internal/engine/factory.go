package engine

import (
	"fmt"

	"wedform/internal/metadata"
)

// Form is the complete definition for one role's registration: the sections
// to render, the aggregate schema to validate against, and the handler to
// invoke once a submission passes validation. Forms are derived data, rebuilt
// from the registry on every CreateForm call and never persisted.
type Form struct {
	ID          string             `json:"id"`
	Role        string             `json:"role"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Sections    []metadata.Section `json:"sections"`
	Schema      *Schema            `json:"-"`
	Submit      SubmitFunc         `json:"-"`
}

// FieldByID returns a pointer to the form field with the given id, or nil.
func (f *Form) FieldByID(id string) *metadata.Field {
	for i := range f.Sections {
		if fld := f.Sections[i].FieldByID(id); fld != nil {
			return fld
		}
	}
	return nil
}

// Factory builds forms from an injected registry. Substitute registries keep
// the factory testable without touching the built-in catalogs.
type Factory struct {
	reg    *metadata.Registry
	submit SubmitFunc
}

type FactoryOption func(*Factory)

// WithSubmitHandler replaces the default submission handler on every form the
// factory creates.
func WithSubmitHandler(fn SubmitFunc) FactoryOption {
	return func(f *Factory) { f.submit = fn }
}

func NewFactory(reg *metadata.Registry, opts ...FactoryOption) *Factory {
	f := &Factory{reg: reg, submit: defaultSubmitHandler}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateForm assembles the form for a role. Unknown roles get the base user
// form; that fallback is policy, not an error. An error here means the
// registry holds a defective catalog.
func (f *Factory) CreateForm(role string) (*Form, error) {
	cat := f.reg.CatalogForRole(role)
	if cat == nil {
		return nil, fmt.Errorf("no catalog registered for role %s and no user fallback", role)
	}

	schema, err := BuildSchema(cat)
	if err != nil {
		return nil, err
	}

	return &Form{
		ID:          cat.Role + "_registration",
		Role:        cat.Role,
		Title:       cat.Title,
		Description: cat.Description,
		Sections:    cat.Sections,
		Schema:      schema,
		Submit:      f.submit,
	}, nil
}
