package metadata

import "fmt"

// Catalog is the complete static definition for one role: its sections (which
// carry the fields in display order) and the cross-field rules that apply to
// the whole submission.
type Catalog struct {
	Role        string           `json:"role"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Sections    []Section        `json:"sections"`
	Rules       []CrossFieldRule `json:"rules,omitempty"`
}

// Fields returns every field in the catalog, flattened in section order.
func (c *Catalog) Fields() []Field {
	var fields []Field
	for _, s := range c.Sections {
		fields = append(fields, s.Fields...)
	}
	return fields
}

// FieldByID returns a pointer to the field with the given id, or nil.
func (c *Catalog) FieldByID(id string) *Field {
	for i := range c.Sections {
		if f := c.Sections[i].FieldByID(id); f != nil {
			return f
		}
	}
	return nil
}

// HasField returns true if the catalog declares a field with the given id.
func (c *Catalog) HasField(id string) bool {
	return c.FieldByID(id) != nil
}

// SectionByTitle returns a pointer to the first section with the given title,
// or nil.
func (c *Catalog) SectionByTitle(title string) *Section {
	for i := range c.Sections {
		if c.Sections[i].Title == title {
			return &c.Sections[i]
		}
	}
	return nil
}

// Validate checks the catalog's structural invariants. These are construction
// defects, not validation failures: a broken catalog must fail loudly before
// any form is built from it.
func (c *Catalog) Validate() error {
	if c.Role == "" {
		return fmt.Errorf("catalog has no role")
	}

	seen := make(map[string]bool)
	for _, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("catalog %s: section %q has no id", c.Role, s.Title)
		}
		for _, f := range s.Fields {
			if f.ID == "" {
				return fmt.Errorf("catalog %s: section %s has a field with no id", c.Role, s.ID)
			}
			if seen[f.ID] {
				return fmt.Errorf("catalog %s: duplicate field id %s", c.Role, f.ID)
			}
			seen[f.ID] = true

			if f.NeedsOptions() && len(f.Options) == 0 {
				return fmt.Errorf("catalog %s: field %s (%s) declares no options", c.Role, f.ID, f.Kind)
			}
		}
	}

	// Conditionals and cross-field rules look fields up by id at evaluation
	// time, so dangling references are caught here.
	for _, s := range c.Sections {
		if s.Conditional != nil && !seen[s.Conditional.Field] {
			return fmt.Errorf("catalog %s: section %s condition references unknown field %s",
				c.Role, s.ID, s.Conditional.Field)
		}
		for _, f := range s.Fields {
			if f.Conditional != nil && !seen[f.Conditional.Field] {
				return fmt.Errorf("catalog %s: field %s condition references unknown field %s",
					c.Role, f.ID, f.Conditional.Field)
			}
		}
	}
	for _, r := range c.Rules {
		if r.Field != "" && !seen[r.Field] {
			return fmt.Errorf("catalog %s: rule references unknown field %s", c.Role, r.Field)
		}
		if r.Expression == "" {
			return fmt.Errorf("catalog %s: cross-field rule for %s has no expression", c.Role, r.Field)
		}
	}

	return nil
}
