package service

import (
	"context"

	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/pkg/search"
)

type ISearchService interface {
	// Search never fails the caller: a backing-store fault is logged and
	// surfaces as an empty result set.
	Search(ctx context.Context, query string, limit int) []search.Result
	MinRelevance() float64
}

type searchService struct {
	engine *search.Engine
	log    logger.ILogger
}

func NewSearchService(engine *search.Engine, log logger.ILogger) ISearchService {
	return &searchService{
		engine: engine,
		log:    log,
	}
}

func (s *searchService) Search(ctx context.Context, query string, limit int) []search.Result {
	results, err := s.engine.Search(ctx, query, limit)
	if err != nil {
		s.log.Error("search", "search fault contained", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return nil
	}
	return results
}

func (s *searchService) MinRelevance() float64 {
	return s.engine.MinRelevance()
}
