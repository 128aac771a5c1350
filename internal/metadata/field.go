package metadata

// Field kinds understood by the rendering layer.
const (
	KindText        = "text"
	KindEmail       = "email"
	KindPassword    = "password"
	KindSelect      = "select"
	KindMultiSelect = "multiselect"
	KindTextarea    = "textarea"
	KindNumber      = "number"
	KindDate        = "date"
	KindFile        = "file"
	KindCheckbox    = "checkbox"
	KindRadio       = "radio"
)

// Option is one selectable (value, label) pair for select, multiselect and
// radio fields.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Condition gates a field or section on the live value of a sibling field.
// Operator is one of: equals, not_equals, contains, greater_than, less_than.
type Condition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

type Field struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Label       string     `json:"label"`
	Placeholder string     `json:"placeholder,omitempty"`
	HelpText    string     `json:"help_text,omitempty"`
	Required    bool       `json:"required,omitempty"`
	Rule        *Rule      `json:"rule,omitempty"`
	Options     []Option   `json:"options,omitempty"`
	Conditional *Condition `json:"conditional,omitempty"`
	Default     any        `json:"default,omitempty"`
}

// NeedsOptions returns true if the field kind renders from an option list.
// Such fields must declare at least one option.
func (f Field) NeedsOptions() bool {
	switch f.Kind {
	case KindSelect, KindMultiSelect, KindRadio:
		return true
	}
	return false
}

// OptionValues returns the declared option values in order.
func (f Field) OptionValues() []string {
	values := make([]string, len(f.Options))
	for i, o := range f.Options {
		values[i] = o.Value
	}
	return values
}
