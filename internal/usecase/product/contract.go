package product

import (
	"context"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

// Catalog defines the upstream contract for product search.
type Catalog interface {
	SearchProducts(ctx context.Context, req request.Product) (domain.ProductPage, error)
}
