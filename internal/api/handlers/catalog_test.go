package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vismify/internal/api/dto"
	"vismify/internal/api/services"
)

func getTools(t *testing.T, handler *CatalogHandler, rawQuery string) (*httptest.ResponseRecorder, dto.CatalogResponse) {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/tools?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetTools(c))

	var resp dto.CatalogResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func toolIDs(tools []dto.Tool) []int {
	out := make([]int, len(tools))
	for i, tool := range tools {
		out[i] = tool.ID
	}
	return out
}

func TestCatalogHandler_GetTools(t *testing.T) {
	handler := NewCatalogHandler(newTestCatalog(t), nil)

	t.Run("defaults return the whole catalog", func(t *testing.T) {
		rec, resp := getTools(t, handler, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 8, resp.Total)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, toolIDs(resp.Tools))
		assert.Equal(t, "all", resp.Category)
		assert.Equal(t, "popular", resp.Sort)
		assert.Len(t, resp.Categories, 5)
	})

	t.Run("category and sort", func(t *testing.T) {
		_, resp := getTools(t, handler, "category=learning&sort=rating")
		assert.Equal(t, []int{3, 5, 7}, toolIDs(resp.Tools))
	})

	t.Run("free text search", func(t *testing.T) {
		_, resp := getTools(t, handler, "q=ZAKAT")
		require.Len(t, resp.Tools, 1)
		assert.Equal(t, "Smart Zakat Calculator", resp.Tools[0].Title)
		assert.Equal(t, []string{"Multi-Madhab", "Investment Tracking", "Auto Reminders"}, resp.Tools[0].Features)
	})

	t.Run("users sort keeps the display-count quirk", func(t *testing.T) {
		_, resp := getTools(t, handler, "sort=users")
		assert.Equal(t, []int{3, 1, 6, 2, 8, 4, 7, 5}, toolIDs(resp.Tools))
	})

	t.Run("unknown category is empty, not an error", func(t *testing.T) {
		rec, resp := getTools(t, handler, "category=worship")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, resp.Tools)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("unknown sort keeps catalog order", func(t *testing.T) {
		_, resp := getTools(t, handler, "sort=trending")
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, toolIDs(resp.Tools))
	})

	t.Run("tier and rating filters", func(t *testing.T) {
		_, resp := getTools(t, handler, "tier=free&min_rating=4.8")
		assert.Equal(t, []int{3, 6}, toolIDs(resp.Tools))
		assert.Equal(t, 4.8, resp.MinRating)
	})

	t.Run("unavailable source returns 503", func(t *testing.T) {
		broken := NewCatalogHandler(services.NewCatalogService(failingSource{}, nil), nil)
		rec, _ := getTools(t, broken, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestCatalogHandler_GetCategories(t *testing.T) {
	handler := NewCatalogHandler(newTestCatalog(t), nil)
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 5)

	counts := map[string]int{}
	for _, cat := range resp {
		counts[cat.ID] = cat.Count
	}
	assert.Equal(t, "all", resp[0].ID)
	assert.Equal(t, map[string]int{"all": 8, "prayer": 3, "learning": 3, "finance": 1, "community": 1}, counts)
}
