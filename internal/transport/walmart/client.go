// Package walmart implements the upstream catalog API client.
package walmart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/sort"
	"github.com/kailas-cloud/walmart-mcp/internal/metrics"
)

// Endpoint labels for metrics and logging.
const (
	endpointProducts   = "products"
	endpointStores     = "stores"
	endpointCategories = "categories"
)

// Client issues single-attempt HTTP requests against the catalog API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// Config holds the catalog API client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New creates a catalog API client.
func New(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool { return c.apiKey != "" }

// productSearchResponse mirrors the minimal item search payload shape.
type productSearchResponse struct {
	TotalResults int `json:"totalResults"`
	Items        []struct {
		ItemID         json.Number `json:"itemId"`
		Name           string      `json:"name"`
		SalePrice      float64     `json:"salePrice"`
		Stock          string      `json:"stock"`
		CustomerRating string      `json:"customerRating"`
		ThumbnailImage string      `json:"thumbnailImage"`
		CategoryPath   string      `json:"categoryPath"`
		ProductURL     string      `json:"productUrl"`
	} `json:"items"`
}

// SearchProducts runs an item search with the validated request's filters.
func (c *Client) SearchProducts(ctx context.Context, req request.Product) (domain.ProductPage, error) {
	params := url.Values{}
	params.Set("query", req.Query())
	params.Set("limit", strconv.Itoa(req.Limit()))
	params.Set("offset", strconv.Itoa(req.Offset()))
	// relevance is the upstream default and is omitted
	if req.Sort() != sort.Relevance {
		params.Set("sort", string(req.Sort()))
	}
	if v := req.MinPrice(); v != nil {
		params.Set("minPrice", strconv.FormatFloat(*v, 'f', -1, 64))
	}
	if v := req.MaxPrice(); v != nil {
		params.Set("maxPrice", strconv.FormatFloat(*v, 'f', -1, 64))
	}
	if v := req.InStock(); v != nil {
		params.Set("inStock", strconv.FormatBool(*v))
	}
	if req.CategoryID() != "" {
		params.Set("categoryId", req.CategoryID())
	}

	var payload productSearchResponse
	if err := c.get(ctx, endpointProducts, "/items/search", params, &payload); err != nil {
		return domain.ProductPage{}, err
	}

	items := make([]domain.Product, len(payload.Items))
	for i, it := range payload.Items {
		rating, _ := strconv.ParseFloat(it.CustomerRating, 64)
		items[i] = domain.Product{
			ID:           it.ItemID.String(),
			Name:         it.Name,
			Price:        it.SalePrice,
			Availability: it.Stock,
			Rating:       rating,
			Thumbnail:    it.ThumbnailImage,
			CategoryPath: it.CategoryPath,
			URL:          it.ProductURL,
		}
	}
	return domain.ProductPage{Items: items, Total: payload.TotalResults}, nil
}

// storeSearchResponse mirrors the minimal store locator payload shape.
// The locator endpoint may return either a bare array or a wrapped list.
type storeEntry struct {
	No            int     `json:"no"`
	Name          string  `json:"name"`
	StreetAddress string  `json:"streetAddress"`
	City          string  `json:"city"`
	StateProvCode string  `json:"stateProvCode"`
	Zip           string  `json:"zip"`
	PhoneNumber   string  `json:"phoneNumber"`
	Distance      float64 `json:"distance"`
	Coordinates   struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
}

// SearchStores looks up stores near the validated request's location.
func (c *Client) SearchStores(ctx context.Context, req request.Store) ([]domain.Store, error) {
	params := url.Values{}
	params.Set("location", req.Location())
	params.Set("radius", strconv.FormatFloat(req.Radius(), 'f', -1, 64))
	params.Set("limit", strconv.Itoa(req.Limit()))

	var entries []storeEntry
	if err := c.get(ctx, endpointStores, "/stores", params, &entries); err != nil {
		return nil, err
	}

	stores := make([]domain.Store, len(entries))
	for i, e := range entries {
		stores[i] = domain.Store{
			ID:        e.No,
			Name:      e.Name,
			Address:   e.StreetAddress,
			City:      e.City,
			State:     e.StateProvCode,
			Zip:       e.Zip,
			Phone:     e.PhoneNumber,
			Distance:  e.Distance,
			Latitude:  e.Coordinates.Latitude,
			Longitude: e.Coordinates.Longitude,
		}
	}
	return stores, nil
}

// categorySearchResponse mirrors the minimal taxonomy payload shape.
type categorySearchResponse struct {
	Categories []struct {
		ID       json.Number `json:"id"`
		Name     string      `json:"name"`
		ParentID json.Number `json:"parentId"`
		Path     string      `json:"path"`
	} `json:"categories"`
}

// SearchCategories browses the category taxonomy. A parent ID switches to
// the subcategory endpoint, matching the upstream API layout.
func (c *Client) SearchCategories(ctx context.Context, req request.Category) ([]domain.Category, error) {
	path := "/items/categories"
	if req.ParentID() != "" {
		path += "/" + url.PathEscape(req.ParentID())
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(req.Limit()))
	if req.Query() != "" {
		params.Set("query", req.Query())
	}

	var payload categorySearchResponse
	if err := c.get(ctx, endpointCategories, path, params, &payload); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, len(payload.Categories))
	for i, cat := range payload.Categories {
		categories[i] = domain.Category{
			ID:       cat.ID.String(),
			Name:     cat.Name,
			ParentID: cat.ParentID.String(),
			Path:     cat.Path,
		}
	}
	return categories, nil
}

// HealthCheck verifies API availability via a one-item taxonomy fetch.
func (c *Client) HealthCheck(ctx context.Context) error {
	params := url.Values{}
	params.Set("limit", "1")
	var payload categorySearchResponse
	if err := c.get(ctx, endpointCategories, "/items/categories", params, &payload); err != nil {
		return fmt.Errorf("taxonomy probe: %w", err)
	}
	return nil
}

// get performs one bounded GET against the catalog API and decodes the JSON
// body into out. Failures are translated into domain sentinels; the raw
// upstream body never leaves this layer.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "no_credential").Inc()
		return domain.ErrMissingCredential
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("WM_SEC.ACCESS_TOKEN", c.apiKey)
	httpReq.Header.Set("WM_QOS.CORRELATION_ID", uuid.NewString())

	start := time.Now()

	resp, err := c.http.Do(httpReq)

	duration := time.Since(start)

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Warn("upstream request failed",
			zap.String("endpoint", endpoint),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s", domain.ErrNetwork, endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: read body", domain.ErrNetwork)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream error response",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return domain.NewUpstreamStatus(resp.StatusCode, extractDetail(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s body: %v", domain.ErrMalformedResponse, endpoint, err)
	}

	c.logger.Debug("upstream request ok",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
	)
	return nil
}

// extractDetail extracts a short error description from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) != nil {
		return ""
	}
	switch {
	case parsed.Message != "":
		return parsed.Message
	case parsed.Error != "":
		return parsed.Error
	default:
		return parsed.Detail
	}
}
