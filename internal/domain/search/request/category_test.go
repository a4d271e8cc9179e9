package request

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
)

func TestNewCategory_AllOptional(t *testing.T) {
	req, err := NewCategory(map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Query() != "" || req.ParentID() != "" {
		t.Errorf("expected empty filters, got query=%q parent_id=%q", req.Query(), req.ParentID())
	}
	if req.Limit() != CategoryDefaultLimit {
		t.Errorf("expected limit %d, got %d", CategoryDefaultLimit, req.Limit())
	}
}

func TestNewCategory_WithFilters(t *testing.T) {
	req, err := NewCategory(map[string]any{
		"query":     "electronics",
		"parent_id": "3944",
		"limit":     float64(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Query() != "electronics" {
		t.Errorf("expected query %q, got %q", "electronics", req.Query())
	}
	if req.ParentID() != "3944" {
		t.Errorf("expected parent_id %q, got %q", "3944", req.ParentID())
	}
	if req.Limit() != 5 {
		t.Errorf("expected limit 5, got %d", req.Limit())
	}
}

func TestNewCategory_LimitClampsToMax(t *testing.T) {
	req, err := NewCategory(map[string]any{"limit": float64(200)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Limit() != CategoryMaxLimit {
		t.Errorf("expected limit %d, got %d", CategoryMaxLimit, req.Limit())
	}
}

func TestNewCategory_NonPositiveLimitRejected(t *testing.T) {
	_, err := NewCategory(map[string]any{"limit": float64(-3)})
	if err == nil {
		t.Fatal("expected error for negative limit")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != "limit" || verr.Reason != domain.ReasonOutOfRange {
		t.Errorf("unexpected validation error: %+v", verr)
	}
}

func TestNewCategory_InvalidParentType(t *testing.T) {
	_, err := NewCategory(map[string]any{"parent_id": float64(3944)})
	if err == nil {
		t.Fatal("expected error for numeric parent_id")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != "parent_id" || verr.Reason != domain.ReasonInvalidType {
		t.Errorf("unexpected validation error: %+v", verr)
	}
}
