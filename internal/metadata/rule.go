package metadata

// Rule operators. Field rules apply to a single present value; absent values
// are the domain of the Required flag.
const (
	OpMin       = "min"
	OpMax       = "max"
	OpMinLength = "min_length"
	OpMaxLength = "max_length"
	OpPattern   = "pattern"
	OpEmail     = "email"
	OpURL       = "url"
	OpIn        = "in"
	OpNonEmpty  = "non_empty"
)

// Rule is a single-field validation constraint. Value carries the operator
// threshold (number, pattern string, or allowed-value list for "in").
type Rule struct {
	Operator string `json:"operator"`
	Value    any    `json:"value,omitempty"`
	Message  string `json:"message,omitempty"`
}

// CrossFieldRule is an expression rule spanning multiple payload fields.
// The expression is evaluated over an env containing "payload"; a true result
// means the rule is violated. The error attaches to Field.
type CrossFieldRule struct {
	Field      string `json:"field"`
	Expression string `json:"expression"`
	Message    string `json:"message,omitempty"`
}
