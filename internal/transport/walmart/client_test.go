package walmart

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&Config{BaseURL: srv.URL, APIKey: "test-key"})
}

func mustProduct(t *testing.T, args map[string]any) request.Product {
	t.Helper()
	req, err := request.NewProduct(args)
	if err != nil {
		t.Fatalf("build product request: %v", err)
	}
	return req
}

func TestSearchProducts_RequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotHeaders http.Header

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotHeaders = r.Header
		_, _ = w.Write([]byte(`{"totalResults":1,"items":[{"itemId":42,"name":"milk","salePrice":3.49,"stock":"Available","customerRating":"4.5"}]}`))
	})

	req := mustProduct(t, map[string]any{
		"query":       "milk",
		"limit":       float64(5),
		"min_price":   float64(1),
		"in_stock":    true,
		"category_id": "976759",
	})
	page, err := client.SearchProducts(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/items/search" {
		t.Errorf("expected path /items/search, got %s", gotPath)
	}
	if gotQuery["query"][0] != "milk" || gotQuery["limit"][0] != "5" {
		t.Errorf("unexpected query params: %v", gotQuery)
	}
	if gotQuery["minPrice"][0] != "1" || gotQuery["inStock"][0] != "true" || gotQuery["categoryId"][0] != "976759" {
		t.Errorf("unexpected filter params: %v", gotQuery)
	}
	if _, ok := gotQuery["sort"]; ok {
		t.Error("sort must be omitted for the default order")
	}

	if gotHeaders.Get("WM_SEC.ACCESS_TOKEN") != "test-key" {
		t.Error("expected credential header on the request")
	}
	if gotHeaders.Get("WM_QOS.CORRELATION_ID") == "" {
		t.Error("expected a correlation ID header")
	}
	if gotHeaders.Get("Accept") != "application/json" {
		t.Errorf("expected Accept application/json, got %q", gotHeaders.Get("Accept"))
	}

	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	item := page.Items[0]
	if item.ID != "42" || item.Name != "milk" || item.Price != 3.49 || item.Rating != 4.5 {
		t.Errorf("unexpected item mapping: %+v", item)
	}
}

func TestSearchProducts_SortSentWhenNonDefault(t *testing.T) {
	var gotSort string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSort = r.URL.Query().Get("sort")
		_, _ = w.Write([]byte(`{"totalResults":0,"items":[]}`))
	})

	req := mustProduct(t, map[string]any{"query": "milk", "sort": "price_low"})
	if _, err := client.SearchProducts(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSort != "price_low" {
		t.Errorf("expected sort price_low, got %q", gotSort)
	}
}

func TestSearchProducts_UpstreamStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limit exceeded"}`))
	})

	_, err := client.SearchProducts(context.Background(), mustProduct(t, map[string]any{"query": "milk"}))
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
	var serr *domain.UpstreamStatusError
	if !errors.As(err, &serr) {
		t.Fatalf("expected UpstreamStatusError, got %T", err)
	}
	if serr.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", serr.Status)
	}
	if !strings.Contains(serr.Detail, "rate limit") {
		t.Errorf("expected detail from the error body, got %q", serr.Detail)
	}
}

func TestSearchProducts_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalResults": "not a number"`))
	})

	_, err := client.SearchProducts(context.Background(), mustProduct(t, map[string]any{"query": "milk"}))
	if err == nil {
		t.Fatal("expected error for truncated body")
	}
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestSearchProducts_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := New(&Config{BaseURL: srv.URL, APIKey: "test-key"})

	_, err := client.SearchProducts(context.Background(), mustProduct(t, map[string]any{"query": "milk"}))
	if err == nil {
		t.Fatal("expected error for refused connection")
	}
	if !errors.Is(err, domain.ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

func TestGet_MissingCredentialSkipsRequest(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()
	client := New(&Config{BaseURL: srv.URL, APIKey: ""})

	_, err := client.SearchProducts(context.Background(), mustProduct(t, map[string]any{"query": "milk"}))
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
	if hits != 0 {
		t.Errorf("expected no upstream request without a credential, got %d", hits)
	}
}

func TestSearchStores_Mapping(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"no":100,"name":"Walmart Supercenter","streetAddress":"1 Main St","city":"Beverly Hills","stateProvCode":"CA","zip":"90210","phoneNumber":"555-0100","distance":2.4,"coordinates":{"latitude":34.09,"longitude":-118.41}}]`))
	})

	req, err := request.NewStore(map[string]any{"location": "90210", "radius": float64(10)})
	if err != nil {
		t.Fatalf("build store request: %v", err)
	}
	stores, err := client.SearchStores(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["location"][0] != "90210" || gotQuery["radius"][0] != "10" {
		t.Errorf("unexpected query params: %v", gotQuery)
	}
	if len(stores) != 1 {
		t.Fatalf("expected 1 store, got %d", len(stores))
	}
	s := stores[0]
	if s.ID != 100 || s.City != "Beverly Hills" || s.Distance != 2.4 || s.Latitude != 34.09 {
		t.Errorf("unexpected store mapping: %+v", s)
	}
}

func TestSearchCategories_TopLevelPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"categories":[{"id":3944,"name":"Electronics"}]}`))
	})

	req, err := request.NewCategory(map[string]any{})
	if err != nil {
		t.Fatalf("build category request: %v", err)
	}
	categories, err := client.SearchCategories(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/items/categories" {
		t.Errorf("expected path /items/categories, got %s", gotPath)
	}
	if len(categories) != 1 || categories[0].ID != "3944" {
		t.Errorf("unexpected categories: %+v", categories)
	}
}

func TestSearchCategories_ParentPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"categories":[]}`))
	})

	req, err := request.NewCategory(map[string]any{"parent_id": "3944"})
	if err != nil {
		t.Fatalf("build category request: %v", err)
	}
	if _, err := client.SearchCategories(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/items/categories/3944" {
		t.Errorf("expected subcategory path, got %s", gotPath)
	}
}

func TestHealthCheck(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categories":[]}`))
	})
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if err := failing.HealthCheck(context.Background()); err == nil {
		t.Error("expected error for failing probe")
	}
}
