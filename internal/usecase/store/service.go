package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/walmart-mcp/internal/domain"
	"github.com/kailas-cloud/walmart-mcp/internal/domain/search/request"
)

// Service handles store search invocations.
type Service struct {
	catalog Catalog
	logger  *zap.Logger
}

// New creates a store search service.
func New(catalog Catalog, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, logger: logger}
}

// Search validates raw tool arguments and wraps the locator outcome into an
// envelope. The locator has no pagination cursor, so has_more is always false.
func (s *Service) Search(ctx context.Context, args map[string]any) domain.Envelope {
	req, err := request.NewStore(args)
	if err != nil {
		s.logger.Warn("store search rejected", zap.Error(err))
		return domain.FromError(err)
	}

	stores, err := s.catalog.SearchStores(ctx, req)
	if err != nil {
		s.logger.Warn("store search failed",
			zap.String("location", req.Location()),
			zap.Error(err),
		)
		return domain.FromError(err)
	}

	s.logger.Info("store search ok",
		zap.String("location", req.Location()),
		zap.Int("count", len(stores)),
	)
	return domain.Success(stores, domain.Metadata{Count: len(stores)})
}
