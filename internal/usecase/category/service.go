package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

// Service handles category search invocations.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
}

// New creates a category search service.
func New(catalog Catalog, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, logger: logger}
}

// Search validates raw tool arguments and wraps the taxonomy outcome into an
// envelope.
func (s *Service) Search(ctx context.Context, args map[string]any) domain.Envelope {
	req, err := request.NewCategory(args)
	if err != nil {
		s.logger.Warn("category search rejected", zap.Error(err))
		return domain.FromError(err)
	}

	categories, err := s.catalog.SearchCategories(ctx, req)
	if err != nil {
		s.logger.Warn("category search failed",
			zap.String("parent_id", req.ParentID()),
			zap.Error(err),
		)
		return domain.FromError(err)
	}

	s.logger.Info("category search ok",
		zap.String("parent_id", req.ParentID()),
		zap.Int("count", len(categories)),
	)
	return domain.Success(categories, domain.Metadata{Count: len(categories)})
}
