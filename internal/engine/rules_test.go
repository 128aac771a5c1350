package engine

import (
	"testing"

	"wedform/internal/metadata"
)

func TestEvaluateRule_Min(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpMin, Value: 0, Message: "Experience cannot be negative"}

	detail := EvaluateRule("experience", rule, -1)
	if detail == nil {
		t.Fatal("expected error for experience=-1")
	}
	if detail.Field != "experience" || detail.Rule != "min" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if detail.Message != "Experience cannot be negative" {
		t.Fatalf("unexpected message: %s", detail.Message)
	}

	if detail := EvaluateRule("experience", rule, 0); detail != nil {
		t.Fatalf("expected pass for experience=0, got %v", detail)
	}
	if detail := EvaluateRule("experience", rule, float64(3)); detail != nil {
		t.Fatalf("expected pass for experience=3, got %v", detail)
	}
}

func TestEvaluateRule_Max(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpMax, Value: 100, Message: "Too many"}
	if EvaluateRule("guests", rule, 150) == nil {
		t.Fatal("expected error for 150")
	}
	if detail := EvaluateRule("guests", rule, 50); detail != nil {
		t.Fatalf("expected pass for 50, got %v", detail)
	}
}

func TestEvaluateRule_MinLength(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpMinLength, Value: 2, Message: "Name must be at least 2 characters"}
	if EvaluateRule("name", rule, "J") == nil {
		t.Fatal("expected error for one-character name")
	}
	if detail := EvaluateRule("name", rule, "Jo"); detail != nil {
		t.Fatalf("expected pass for two-character name, got %v", detail)
	}
}

func TestEvaluateRule_MaxLength(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpMaxLength, Value: 5, Message: "Too long"}
	if EvaluateRule("code", rule, "TOOLONG") == nil {
		t.Fatal("expected error for long value")
	}
	if detail := EvaluateRule("code", rule, "ABC"); detail != nil {
		t.Fatalf("expected pass, got %v", detail)
	}
}

func TestEvaluateRule_Pattern(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpPattern, Value: `^\+?[0-9()\-\s]{7,20}$`, Message: "Please enter a valid phone number"}
	if EvaluateRule("phone", rule, "abc") == nil {
		t.Fatal("expected error for invalid phone")
	}
	if detail := EvaluateRule("phone", rule, "+1 555 000 0000"); detail != nil {
		t.Fatalf("expected pass, got %v", detail)
	}
}

func TestEvaluateRule_Email(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpEmail, Message: "Please enter a valid email address"}
	if EvaluateRule("email", rule, "not-an-email") == nil {
		t.Fatal("expected error for invalid email")
	}
	if detail := EvaluateRule("email", rule, "couple@example.com"); detail != nil {
		t.Fatalf("expected pass, got %v", detail)
	}
}

func TestEvaluateRule_URL(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpURL, Message: "Please enter a valid URL"}
	if EvaluateRule("website", rule, "not a url") == nil {
		t.Fatal("expected error for invalid url")
	}
	if detail := EvaluateRule("website", rule, "https://example.com"); detail != nil {
		t.Fatalf("expected pass, got %v", detail)
	}
}

func TestEvaluateRule_In(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpIn, Value: []any{"hourly", "package", "custom"}, Message: "Select a valid pricing model"}
	if EvaluateRule("pricingModel", rule, "freeform") == nil {
		t.Fatal("expected error for value outside enumeration")
	}
	if detail := EvaluateRule("pricingModel", rule, "hourly"); detail != nil {
		t.Fatalf("expected pass, got %v", detail)
	}
}

func TestEvaluateRule_NonEmpty(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpNonEmpty, Message: "Select at least one service"}
	if EvaluateRule("servicesOffered", rule, []any{}) == nil {
		t.Fatal("expected error for empty list")
	}
	if detail := EvaluateRule("servicesOffered", rule, []any{"full_day"}); detail != nil {
		t.Fatalf("expected pass, got %v", detail)
	}
	if detail := EvaluateRule("servicesOffered", rule, []string{"full_day"}); detail != nil {
		t.Fatalf("expected pass for []string, got %v", detail)
	}
}

func TestEvaluateRule_NilValueAndNilRule(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpMinLength, Value: 2}
	if detail := EvaluateRule("name", rule, nil); detail != nil {
		t.Fatalf("absent values are not rule-checked, got %v", detail)
	}
	if detail := EvaluateRule("name", nil, "anything"); detail != nil {
		t.Fatalf("nil rule always passes, got %v", detail)
	}
}

func TestEvaluateRule_DefaultMessage(t *testing.T) {
	rule := &metadata.Rule{Operator: metadata.OpMinLength, Value: 5}
	detail := EvaluateRule("bio", rule, "ab")
	if detail == nil {
		t.Fatal("expected error")
	}
	if detail.Message != "field bio failed min_length validation" {
		t.Fatalf("unexpected default message: %s", detail.Message)
	}
}
