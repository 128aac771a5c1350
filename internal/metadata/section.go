package metadata

// Section is a named, ordered group of fields. A section may itself be gated
// by a condition; grouping is static and conditions are evaluated elsewhere,
// so a section that renders empty is still part of the form.
type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Fields      []Field    `json:"fields"`
	Conditional *Condition `json:"conditional,omitempty"`
}

// FieldByID returns a pointer to the field with the given id, or nil.
func (s *Section) FieldByID(id string) *Field {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i]
		}
	}
	return nil
}

// FieldIDs returns all field ids in display order.
func (s *Section) FieldIDs() []string {
	ids := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		ids[i] = f.ID
	}
	return ids
}
