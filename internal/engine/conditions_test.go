package engine

import (
	"testing"

	"wedform/internal/metadata"
)

func TestEvaluateCondition_Equals(t *testing.T) {
	cond := &metadata.Condition{Field: "pricingModel", Operator: "equals", Value: "hourly"}

	if !EvaluateCondition(cond, map[string]any{"pricingModel": "hourly"}) {
		t.Fatal("expected satisfied for matching value")
	}
	if EvaluateCondition(cond, map[string]any{"pricingModel": "package"}) {
		t.Fatal("expected unsatisfied for different value")
	}
	if EvaluateCondition(cond, map[string]any{}) {
		t.Fatal("expected unsatisfied when controlling field is absent")
	}
}

func TestEvaluateCondition_EqualsBool(t *testing.T) {
	cond := &metadata.Condition{Field: "certified", Operator: "equals", Value: true}
	if !EvaluateCondition(cond, map[string]any{"certified": true}) {
		t.Fatal("expected satisfied for true")
	}
	if EvaluateCondition(cond, map[string]any{"certified": false}) {
		t.Fatal("expected unsatisfied for false")
	}
}

func TestEvaluateCondition_NotEquals(t *testing.T) {
	cond := &metadata.Condition{Field: "gender", Operator: "not_equals", Value: "male"}
	if !EvaluateCondition(cond, map[string]any{"gender": "female"}) {
		t.Fatal("expected satisfied for different value")
	}
	if EvaluateCondition(cond, map[string]any{"gender": "male"}) {
		t.Fatal("expected unsatisfied for equal value")
	}
}

func TestEvaluateCondition_Contains(t *testing.T) {
	cond := &metadata.Condition{Field: "specialties", Operator: "contains", Value: "luxury"}
	if !EvaluateCondition(cond, map[string]any{"specialties": []any{"budget", "luxury"}}) {
		t.Fatal("expected satisfied when list contains value")
	}
	if EvaluateCondition(cond, map[string]any{"specialties": []any{"budget"}}) {
		t.Fatal("expected unsatisfied when list lacks value")
	}

	strCond := &metadata.Condition{Field: "city", Operator: "contains", Value: "York"}
	if !EvaluateCondition(strCond, map[string]any{"city": "New York"}) {
		t.Fatal("expected satisfied for substring")
	}
}

func TestEvaluateCondition_NumericComparisons(t *testing.T) {
	gt := &metadata.Condition{Field: "experience", Operator: "greater_than", Value: 5}
	if !EvaluateCondition(gt, map[string]any{"experience": float64(10)}) {
		t.Fatal("expected 10 > 5")
	}
	if EvaluateCondition(gt, map[string]any{"experience": 5}) {
		t.Fatal("expected 5 > 5 to be unsatisfied")
	}

	lt := &metadata.Condition{Field: "teamSize", Operator: "less_than", Value: 3}
	if !EvaluateCondition(lt, map[string]any{"teamSize": 2}) {
		t.Fatal("expected 2 < 3")
	}
	if EvaluateCondition(lt, map[string]any{"teamSize": "two"}) {
		t.Fatal("non-numeric comparison must be unsatisfied")
	}
}

func TestEvaluateCondition_NilAndUnknownOperator(t *testing.T) {
	if !EvaluateCondition(nil, map[string]any{}) {
		t.Fatal("nil condition is always satisfied")
	}
	cond := &metadata.Condition{Field: "x", Operator: "matches", Value: "y"}
	if EvaluateCondition(cond, map[string]any{"x": "y"}) {
		t.Fatal("unknown operator must be unsatisfied")
	}
}

func TestEvaluateCondition_NumericEqualityAcrossTypes(t *testing.T) {
	// JSON payloads deliver numbers as float64; conditions may be authored
	// with ints.
	cond := &metadata.Condition{Field: "teamSize", Operator: "equals", Value: 3}
	if !EvaluateCondition(cond, map[string]any{"teamSize": float64(3)}) {
		t.Fatal("expected int/float equality")
	}
}
