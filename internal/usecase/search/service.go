// Package search wraps the search engine with request validation and telemetry.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/laundromatzat/foliodex/internal/domain"
	"github.com/laundromatzat/foliodex/internal/domain/project"
	"github.com/laundromatzat/foliodex/internal/domain/search/query"
	"github.com/laundromatzat/foliodex/internal/logger"
	"github.com/laundromatzat/foliodex/internal/metrics"
)

// Service handles search requests against the catalog engine.
type Service struct {
	engine         Engine
	maxQueryLength int
}

// New creates a search service.
func New(engine Engine, maxQueryLength int) *Service {
	return &Service{engine: engine, maxQueryLength: maxQueryLength}
}

// Search runs a query through the engine and records telemetry.
// Source labels where the request came from ("api" or "assistant").
func (s *Service) Search(ctx context.Context, source, q string, opts query.Options) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.maxQueryLength > 0 && len(q) > s.maxQueryLength {
		return nil, fmt.Errorf("%w: query exceeds %d bytes", domain.ErrInvalidRequest, s.maxQueryLength)
	}

	start := time.Now()
	results := s.engine.Search(q, opts)
	elapsed := time.Since(start)

	metrics.SearchesTotal.WithLabelValues(source).Inc()
	metrics.SearchDuration.Observe(elapsed.Seconds())
	metrics.SearchResults.Observe(float64(len(results)))

	logger.FromContext(ctx).Debug("search executed",
		zap.String("source", source),
		zap.Int("query_len", len(q)),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", elapsed),
	)

	return results, nil
}

// Size returns the number of indexed projects.
func (s *Service) Size() int {
	return s.engine.Size()
}
