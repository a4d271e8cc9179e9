package category

import (
	"context"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

// Catalog defines the upstream contract for category search.
type Catalog interface {
	SearchCategories(ctx context.Context, req request.Category) ([]domain.Category, error)
}
