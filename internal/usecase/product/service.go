package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

// Service handles product search invocations.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
}

// New creates a product search service.
func New(catalog Catalog, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, logger: logger}
}

// Search validates raw tool arguments, runs a single upstream call, and
// wraps the outcome into an envelope. Every code path returns an envelope;
// the upstream is never touched when validation fails.
func (s *Service) Search(ctx context.Context, args map[string]any) domain.Envelope {
	req, err := request.NewProduct(args)
	if err != nil {
		s.logger.Warn("product search rejected", zap.Error(err))
		return domain.FromError(err)
	}

	page, err := s.catalog.SearchProducts(ctx, req)
	if err != nil {
		s.logger.Warn("product search failed",
			zap.String("query", req.Query()),
			zap.Error(err),
		)
		return domain.FromError(err)
	}

	s.logger.Info("product search ok",
		zap.String("query", req.Query()),
		zap.Int("count", len(page.Items)),
		zap.Int("total", page.Total),
	)
	return domain.Success(page.Items, domain.Metadata{
		Count:   len(page.Items),
		Offset:  req.Offset(),
		HasMore: req.Offset()+len(page.Items) < page.Total,
	})
}
