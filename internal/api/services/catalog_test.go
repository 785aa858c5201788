package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vismify/internal/content"
	"vismify/internal/domain"
	r "vismify/internal/redis"
	"vismify/internal/testutil"
)

type countingSource struct {
	tools []domain.Tool
	calls int
	err   error
}

func (s *countingSource) ListTools(ctx context.Context) ([]domain.Tool, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.tools, nil
}

func siteTools(t *testing.T) []domain.Tool {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)
	return site.Tools
}

func TestCatalogService_Search(t *testing.T) {
	ctx := context.Background()
	service := NewCatalogService(&countingSource{tools: siteTools(t)}, nil)

	t.Run("defaults return the whole catalog", func(t *testing.T) {
		result, err := service.Search(ctx, domain.DefaultCatalogQuery())
		require.NoError(t, err)
		assert.Equal(t, 8, result.Total)
		assert.Equal(t, 1, result.Tools[0].ID)
	})

	t.Run("prayer category", func(t *testing.T) {
		result, err := service.Search(ctx, domain.CatalogQuery{Category: domain.CategoryPrayer})
		require.NoError(t, err)
		require.Equal(t, 3, result.Total)
		assert.Equal(t, "AI Prayer Times", result.Tools[0].Title)
	})

	t.Run("zakat search", func(t *testing.T) {
		result, err := service.Search(ctx, domain.CatalogQuery{Category: domain.CategoryAll, Search: "ZAKAT"})
		require.NoError(t, err)
		require.Equal(t, 1, result.Total)
		assert.Equal(t, 4, result.Tools[0].ID)
	})

	t.Run("category counts cover the whole catalog", func(t *testing.T) {
		result, err := service.Search(ctx, domain.CatalogQuery{Category: domain.CategoryFinance})
		require.NoError(t, err)
		require.Len(t, result.Categories, len(domain.Categories))
		assert.Equal(t, domain.CategoryAll, result.Categories[0].Category.ID)
		assert.Equal(t, 8, result.Categories[0].Count)
		assert.Equal(t, 3, result.Categories[1].Count)
	})
}

func TestCatalogService_SourceError(t *testing.T) {
	service := NewCatalogService(&countingSource{err: errors.New("connection refused")}, nil)

	_, err := service.Search(context.Background(), domain.DefaultCatalogQuery())
	assert.Error(t, err)

	_, err = service.Categories(context.Background())
	assert.Error(t, err)
}

func TestCatalogService_ReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{tools: siteTools(t)}
	cache := r.NewCatalogCache(testutil.NewRedis(t), time.Minute)
	service := NewCatalogService(source, cache)

	_, err := service.Search(ctx, domain.DefaultCatalogQuery())
	require.NoError(t, err)
	_, err = service.Search(ctx, domain.CatalogQuery{Sort: domain.SortRating})
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	require.NoError(t, service.Invalidate(ctx))
	_, err = service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestCatalogService_Refresh(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{tools: siteTools(t)[:2]}
	cache := r.NewCatalogCache(testutil.NewRedis(t), time.Minute)
	service := NewCatalogService(source, cache)

	n, err := service.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cached, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, cached, 2)

	source.err = errors.New("boom")
	_, err = service.Refresh(ctx)
	assert.Error(t, err)
}
