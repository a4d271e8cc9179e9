package store

import (
	"context"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

// Catalog defines the upstream contract for store search.
type Catalog interface {
	SearchStores(ctx context.Context, req request.Store) ([]domain.Store, error)
}
