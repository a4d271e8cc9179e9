package store

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

type mockCatalog struct {
	stores  []domain.Store
	err     error
	called  bool
	lastReq request.Store
}

func (m *mockCatalog) SearchStores(_ context.Context, req request.Store) ([]domain.Store, error) {
	m.called = true
	m.lastReq = req
	return m.stores, m.err
}

func TestSearch_Success(t *testing.T) {
	catalog := &mockCatalog{
		stores: []domain.Store{
			{ID: 100, Name: "Walmart Supercenter", City: "Beverly Hills"},
			{ID: 101, Name: "Walmart Neighborhood Market", City: "Los Angeles"},
		},
	}
	svc := New(catalog, zap.NewNop())

	env := svc.Search(context.Background(), map[string]any{"location": "90210"})
	if env.IsFailure() {
		t.Fatalf("unexpected failure: %+v", env.Error)
	}
	if env.Metadata.Count != 2 {
		t.Errorf("expected count 2, got %d", env.Metadata.Count)
	}
	if env.Metadata.HasMore {
		t.Error("store results are not paginated, has_more must be false")
	}
}

func TestSearch_RadiusClampedBeforeUpstream(t *testing.T) {
	catalog := &mockCatalog{}
	svc := New(catalog, zap.NewNop())

	env := svc.Search(context.Background(), map[string]any{"location": "90210", "radius": float64(-5)})
	if env.IsFailure() {
		t.Fatalf("unexpected failure: %+v", env.Error)
	}
	if catalog.lastReq.Radius() != request.StoreMinRadius {
		t.Errorf("expected radius %d, got %v", request.StoreMinRadius, catalog.lastReq.Radius())
	}
}

func TestSearch_ValidationFailureSkipsUpstream(t *testing.T) {
	catalog := &mockCatalog{}
	svc := New(catalog, zap.NewNop())

	env := svc.Search(context.Background(), map[string]any{})
	if !env.IsFailure() {
		t.Fatal("expected failure envelope")
	}
	if env.Error.Kind != domain.KindInvalidArguments {
		t.Errorf("expected kind %q, got %q", domain.KindInvalidArguments, env.Error.Kind)
	}
	if catalog.called {
		t.Error("upstream must not be called when validation fails")
	}
}

func TestSearch_NetworkErrorMapped(t *testing.T) {
	catalog := &mockCatalog{err: domain.ErrNetwork}
	svc := New(catalog, zap.NewNop())

	env := svc.Search(context.Background(), map[string]any{"location": "90210"})
	if !env.IsFailure() {
		t.Fatal("expected failure envelope")
	}
	if env.Error.Kind != domain.KindNetworkError {
		t.Errorf("expected kind %q, got %q", domain.KindNetworkError, env.Error.Kind)
	}
}
