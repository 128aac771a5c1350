package engine

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"wedform/internal/metadata"
)

// schemaField pairs a field with the conditional of the section it lives in,
// so activity can be decided from the payload alone.
type schemaField struct {
	field       metadata.Field
	sectionCond *metadata.Condition
}

// compiledRule is a cross-field rule with its expression compiled once at
// schema build time, keeping the shared catalog free of mutation.
type compiledRule struct {
	def  metadata.CrossFieldRule
	prog *vm.Program
}

// Schema is the aggregate validation rule for one role's submission payload.
// Rules compose by intersection: the payload is valid iff every active field
// rule and every cross-field rule passes.
type Schema struct {
	role   string
	fields []schemaField
	rules  []compiledRule
}

// BuildSchema compiles a catalog into its aggregate schema. A cross-field
// expression that does not compile is a construction defect and fails here,
// never at validation time.
func BuildSchema(cat *metadata.Catalog) (*Schema, error) {
	s := &Schema{role: cat.Role}

	for _, section := range cat.Sections {
		for _, f := range section.Fields {
			s.fields = append(s.fields, schemaField{field: f, sectionCond: section.Conditional})
		}
	}

	for _, r := range cat.Rules {
		prog, err := CompileExpression(r.Expression)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: rule for %s: %w", cat.Role, r.Field, err)
		}
		s.rules = append(s.rules, compiledRule{def: r, prog: prog})
	}

	return s, nil
}

// Role returns the role the schema was built for.
func (s *Schema) Role() string {
	return s.role
}

// Validate evaluates the whole payload against the schema and returns a
// structured result. It never panics: an evaluation panic from a malformed
// rule is reported under the general key instead of reaching the caller.
func (s *Schema) Validate(payload map[string]any) (result Result) {
	result = newResult()
	defer func() {
		if r := recover(); r != nil {
			result.addError(GeneralKey, "Validation failed")
		}
	}()

	for _, sf := range s.fields {
		// Inactive fields are neither shown nor validated.
		if !EvaluateCondition(sf.sectionCond, payload) || !EvaluateCondition(sf.field.Conditional, payload) {
			continue
		}

		value, exists := payload[sf.field.ID]
		if sf.field.Required && (!exists || isEmpty(value)) {
			result.addError(sf.field.ID, requiredMessage(sf.field))
			continue
		}
		if !exists || value == nil {
			continue
		}
		if detail := EvaluateRule(sf.field.ID, sf.field.Rule, value); detail != nil {
			result.addError(detail.Field, detail.Message)
		}
	}

	env := map[string]any{"payload": payload}
	for _, cr := range s.rules {
		if detail := evaluateCompiledRule(cr, env); detail != nil {
			result.addError(detail.Field, detail.Message)
		}
	}

	return result
}

// CompileExpression compiles a cross-field rule expression. The expression
// must evaluate to a boolean, where true means the rule is violated.
func CompileExpression(expression string) (*vm.Program, error) {
	prog, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile expression: %w", err)
	}
	return prog, nil
}

func evaluateCompiledRule(cr compiledRule, env map[string]any) *ErrorDetail {
	result, err := expr.Run(cr.prog, env)
	if err != nil {
		return &ErrorDetail{Field: cr.def.Field, Rule: "expression", Message: "Validation failed"}
	}

	violated, ok := result.(bool)
	if !ok || !violated {
		return nil
	}

	msg := cr.def.Message
	if msg == "" {
		msg = "Expression rule violated"
	}
	return &ErrorDetail{Field: cr.def.Field, Rule: "expression", Message: msg}
}

func requiredMessage(f metadata.Field) string {
	label := f.Label
	if label == "" {
		label = f.ID
	}
	return fmt.Sprintf("%s is required", label)
}
