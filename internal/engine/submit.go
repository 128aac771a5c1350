package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitFunc handles a payload that has already passed validation. The real
// handler (account creation, persistence) lives outside this module; the
// default stub just acknowledges receipt.
type SubmitFunc func(ctx context.Context, role string, payload map[string]any) (*Receipt, error)

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	ReceivedAt time.Time `json:"received_at"`
}

func defaultSubmitHandler(_ context.Context, role string, _ map[string]any) (*Receipt, error) {
	return &Receipt{
		ID:         uuid.NewString(),
		Role:       role,
		ReceivedAt: time.Now().UTC(),
	}, nil
}

// Submit validates the payload against the form and, only on success, invokes
// the form's submit handler. Validation failures come back in the Result with
// a nil receipt; the error return is reserved for the handler itself.
func Submit(ctx context.Context, form *Form, payload map[string]any) (Result, *Receipt, error) {
	result := ValidateForm(form, payload)
	if !result.Valid {
		zap.L().Debug("submission rejected",
			zap.String("form", form.ID), zap.Int("errors", len(result.Errors)))
		return result, nil, nil
	}

	receipt, err := form.Submit(ctx, form.Role, payload)
	if err != nil {
		return result, nil, err
	}
	return result, receipt, nil
}
