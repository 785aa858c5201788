package dto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"vismify/internal/domain"
)

func TestSearchParams_ToQuery(t *testing.T) {
	t.Run("empty uses defaults", func(t *testing.T) {
		assert.Equal(t, domain.DefaultCatalogQuery(), SearchParams{}.ToQuery())
	})

	t.Run("values pass through", func(t *testing.T) {
		values := url.Values{
			"category":   {"prayer"},
			"q":          {"Qibla"},
			"sort":       {"rating"},
			"min_rating": {"4.5"},
			"tier":       {"premium"},
		}
		q := SearchParamsFromValues(values).ToQuery()
		assert.Equal(t, domain.CategoryPrayer, q.Category)
		assert.Equal(t, "Qibla", q.Search)
		assert.Equal(t, domain.SortRating, q.Sort)
		assert.Equal(t, 4.5, q.MinRating)
		assert.Equal(t, domain.TierPremium, q.Tier)
	})

	t.Run("bad rating is ignored", func(t *testing.T) {
		for _, v := range []string{"abc", "-1", "9"} {
			q := SearchParamsFromValues(url.Values{"min_rating": {v}}).ToQuery()
			assert.Zero(t, q.MinRating, v)
		}
	})
}

func TestToolFromDomain_NilFeatures(t *testing.T) {
	tool := ToolFromDomain(domain.Tool{ID: 1, Category: domain.CategoryFinance})
	assert.NotNil(t, tool.Features)
	assert.Equal(t, "finance", tool.Category)
}
