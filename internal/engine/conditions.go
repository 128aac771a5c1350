package engine

import (
	"reflect"
	"strings"

	"wedform/internal/metadata"
)

// EvaluateCondition reports whether the payload satisfies the condition. A
// nil condition is always satisfied. Conditions that cannot be evaluated
// against the payload (absent value, non-numeric comparison) are unsatisfied,
// which keeps gated fields hidden until their controlling field is filled in.
func EvaluateCondition(cond *metadata.Condition, payload map[string]any) bool {
	if cond == nil {
		return true
	}

	val, exists := payload[cond.Field]

	switch cond.Operator {
	case "equals":
		return exists && looseEqual(val, cond.Value)
	case "not_equals":
		return exists && !looseEqual(val, cond.Value)
	case "contains":
		return exists && containsValue(val, cond.Value)
	case "greater_than":
		a, aok := toFloat64(val)
		b, bok := toFloat64(cond.Value)
		return aok && bok && a > b
	case "less_than":
		a, aok := toFloat64(val)
		b, bok := toFloat64(cond.Value)
		return aok && bok && a < b
	}
	return false
}

// looseEqual compares values the way JSON payloads deliver them: numbers are
// compared numerically regardless of concrete type, everything else
// structurally. DeepEqual keeps uncomparable payload values (slices) from
// panicking.
func looseEqual(a, b any) bool {
	if af, aok := toFloat64(a); aok {
		bf, bok := toFloat64(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func containsValue(haystack, needle any) bool {
	switch h := haystack.(type) {
	case string:
		n, ok := needle.(string)
		return ok && strings.Contains(h, n)
	case []any:
		for _, item := range h {
			if looseEqual(item, needle) {
				return true
			}
		}
	case []string:
		for _, item := range h {
			if looseEqual(item, needle) {
				return true
			}
		}
	}
	return false
}
