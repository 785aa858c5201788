package services

import (
	"context"
	"fmt"

	"vismify/internal/domain"
	"vismify/internal/metrics"
)

// ToolSource provides the full catalog in display order.
type ToolSource interface {
	ListTools(ctx context.Context) ([]domain.Tool, error)
}

type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Tool, bool, error)
	Set(ctx context.Context, tools []domain.Tool) error
	Invalidate(ctx context.Context) error
}

type CategoryCount struct {
	Category domain.CategoryInfo
	Count    int
}

type CatalogResult struct {
	Query      domain.CatalogQuery
	Tools      []domain.Tool
	Total      int
	Categories []CategoryCount
}

type CatalogService struct {
	source ToolSource
	cache  CatalogCache
}

// NewCatalogService reads through cache when it is non-nil.
func NewCatalogService(source ToolSource, cache CatalogCache) *CatalogService {
	return &CatalogService{
		source: source,
		cache:  cache,
	}
}

// Search applies q to the catalog. It only fails when the catalog itself
// cannot be loaded; any query input is accepted.
func (s *CatalogService) Search(ctx context.Context, q domain.CatalogQuery) (*CatalogResult, error) {
	tools, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := q.Apply(tools)
	return &CatalogResult{
		Query:      q,
		Tools:      matched,
		Total:      len(matched),
		Categories: countCategories(tools),
	}, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]CategoryCount, error) {
	tools, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return countCategories(tools), nil
}

// Refresh reloads the catalog from its source and replaces the cached copy.
func (s *CatalogService) Refresh(ctx context.Context) (int, error) {
	tools, err := s.source.ListTools(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, tools); err != nil {
			return 0, fmt.Errorf("cache catalog: %w", err)
		}
	}
	return len(tools), nil
}

func (s *CatalogService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx)
}

func (s *CatalogService) load(ctx context.Context) ([]domain.Tool, error) {
	if s.cache != nil {
		tools, ok, err := s.cache.Get(ctx)
		if err == nil && ok {
			metrics.CatalogCacheHits.WithLabelValues("hit").Inc()
			return tools, nil
		}
		metrics.CatalogCacheHits.WithLabelValues("miss").Inc()
	}

	tools, err := s.source.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, tools)
	}
	return tools, nil
}

func countCategories(tools []domain.Tool) []CategoryCount {
	counts := domain.CategoryCounts(tools)
	out := make([]CategoryCount, 0, len(domain.Categories))
	for _, info := range domain.Categories {
		out = append(out, CategoryCount{Category: info, Count: counts[info.ID]})
	}
	return out
}
