package engine

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"wedform/internal/metadata"
)

// formatChecker backs the email and url operators. Validation is stateless,
// so one shared instance serves all rule evaluations.
var formatChecker = validator.New()

// EvaluateRule evaluates a single field rule against a present value.
// Returns nil if the rule passes, or an ErrorDetail if it fails. Absent
// values are not checked here; that is what the Required flag is for.
func EvaluateRule(fieldID string, rule *metadata.Rule, value any) *ErrorDetail {
	if rule == nil || value == nil {
		return nil
	}

	op := rule.Operator
	msg := rule.Message
	if msg == "" {
		msg = fmt.Sprintf("field %s failed %s validation", fieldID, op)
	}
	fail := &ErrorDetail{Field: fieldID, Rule: op, Message: msg}

	switch op {
	case metadata.OpMin:
		num, ok := toFloat64(value)
		if !ok {
			return nil
		}
		threshold, ok := toFloat64(rule.Value)
		if !ok {
			return nil
		}
		if num < threshold {
			return fail
		}

	case metadata.OpMax:
		num, ok := toFloat64(value)
		if !ok {
			return nil
		}
		threshold, ok := toFloat64(rule.Value)
		if !ok {
			return nil
		}
		if num > threshold {
			return fail
		}

	case metadata.OpMinLength:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		threshold, ok := toFloat64(rule.Value)
		if !ok {
			return nil
		}
		if len([]rune(s)) < int(threshold) {
			return fail
		}

	case metadata.OpMaxLength:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		threshold, ok := toFloat64(rule.Value)
		if !ok {
			return nil
		}
		if len([]rune(s)) > int(threshold) {
			return fail
		}

	case metadata.OpPattern:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		pattern, ok := rule.Value.(string)
		if !ok {
			return nil
		}
		matched, err := regexp.MatchString(pattern, s)
		if err != nil || !matched {
			return fail
		}

	case metadata.OpEmail:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if formatChecker.Var(s, "email") != nil {
			return fail
		}

	case metadata.OpURL:
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if formatChecker.Var(s, "url") != nil {
			return fail
		}

	case metadata.OpIn:
		if !inList(value, rule.Value) {
			return fail
		}

	case metadata.OpNonEmpty:
		switch v := value.(type) {
		case []any:
			if len(v) == 0 {
				return fail
			}
		case []string:
			if len(v) == 0 {
				return fail
			}
		}
	}

	return nil
}

func inList(value, allowed any) bool {
	switch list := allowed.(type) {
	case []any:
		for _, item := range list {
			if looseEqual(value, item) {
				return true
			}
		}
	case []string:
		for _, item := range list {
			if looseEqual(value, item) {
				return true
			}
		}
	}
	return false
}

// isEmpty reports whether a payload value counts as missing for the Required
// check. False booleans and zero numbers are present values.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

// toFloat64 converts numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
