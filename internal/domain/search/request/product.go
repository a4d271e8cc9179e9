package request

import (
	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/sort"
)

// Product search parameter bounds.
const (
	ProductDefaultLimit = 10
	ProductMaxLimit     = 50
)

// Product is a validated product search request.
type Product struct {
	query      string
	limit      int
	offset     int
	sortOrder  sort.Order
	minPrice   *float64
	maxPrice   *float64
	inStock    *bool
	categoryID string
}

// NewProduct validates and normalizes raw product search arguments.
// Defaults: limit=10, offset=0, sort=relevance. Limit above 50 clamps down,
// negative offset and prices clamp to 0; an explicit non-positive limit,
// an unknown sort, a type mismatch, or min_price > max_price are rejected.
func NewProduct(args map[string]any) (Product, error) {
	query, present, err := stringArg(args, "query")
	if err != nil {
		return Product{}, err
	}
	if !present || query == "" {
		return Product{}, domain.NewValidationError("query", domain.ReasonRequired)
	}

	limit, err := limitArg(args, ProductDefaultLimit, ProductMaxLimit)
	if err != nil {
		return Product{}, err
	}

	offset, _, err := intArg(args, "offset")
	if err != nil {
		return Product{}, err
	}
	if offset < 0 {
		offset = 0
	}

	order := sort.Relevance
	if s, present, err := stringArg(args, "sort"); err != nil {
		return Product{}, err
	} else if present {
		order = sort.Order(s)
		if !order.IsValid() {
			return Product{}, domain.NewValidationError("sort", domain.ReasonInvalidEnum)
		}
	}

	minPrice, err := priceArg(args, "min_price")
	if err != nil {
		return Product{}, err
	}
	maxPrice, err := priceArg(args, "max_price")
	if err != nil {
		return Product{}, err
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return Product{}, domain.NewValidationError("price_range", domain.ReasonMinExceedsMax)
	}

	var inStock *bool
	if b, present, err := boolArg(args, "in_stock"); err != nil {
		return Product{}, err
	} else if present {
		inStock = &b
	}

	categoryID, _, err := stringArg(args, "category_id")
	if err != nil {
		return Product{}, err
	}

	return Product{
		query:      query,
		limit:      limit,
		offset:     offset,
		sortOrder:  order,
		minPrice:   minPrice,
		maxPrice:   maxPrice,
		inStock:    inStock,
		categoryID: categoryID,
	}, nil
}

// priceArg parses an optional price filter, clamping negatives to 0.
func priceArg(args map[string]any, key string) (*float64, error) {
	f, present, err := floatArg(args, key)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	if f < 0 {
		f = 0
	}
	return &f, nil
}

// Query returns the product search query.
func (p *Product) Query() string { return p.query }

// Limit returns the maximum results to return.
func (p *Product) Limit() int { return p.limit }

// Offset returns the zero-based pagination offset.
func (p *Product) Offset() int { return p.offset }

// Sort returns the result sort order.
func (p *Product) Sort() sort.Order { return p.sortOrder }

// MinPrice returns the minimum price filter (nil when unset).
func (p *Product) MinPrice() *float64 { return p.minPrice }

// MaxPrice returns the maximum price filter (nil when unset).
func (p *Product) MaxPrice() *float64 { return p.maxPrice }

// InStock returns the in-stock filter (nil when unset).
func (p *Product) InStock() *bool { return p.inStock }

// CategoryID returns the category filter ("" when unset).
func (p *Product) CategoryID() string { return p.categoryID }
