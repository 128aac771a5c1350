package engine

// GeneralKey is the errors-map key for failures that cannot be attributed to
// a specific field. The UI renders it as a form-level banner.
const GeneralKey = "general"

// ErrorDetail is a single rule violation.
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

// Result is the outcome of validating a section or a whole payload. Errors is
// keyed by field id; it is never nil so callers can always range over it.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// FieldResult is the outcome of validating a single field value.
type FieldResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func newResult() Result {
	return Result{Valid: true, Errors: map[string]string{}}
}

// addError records the first violation for a field; later violations for the
// same field are dropped.
func (r *Result) addError(field, message string) {
	if field == "" {
		field = GeneralKey
	}
	if _, exists := r.Errors[field]; exists {
		return
	}
	r.Valid = false
	r.Errors[field] = message
}
