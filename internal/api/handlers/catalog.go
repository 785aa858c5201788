package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vismify/internal/api/dto"
	"vismify/internal/api/services"
	"vismify/internal/metrics"
)

type CatalogHandler struct {
	catalog *services.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog *services.CatalogService, log *zap.Logger) *CatalogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogHandler{
		catalog: catalog,
		log:     log,
	}
}

// GetTools godoc
// @Summary Search the tool catalog
// @Description Filter by category and free text, then sort. Unknown categories match nothing and unknown sort keys keep catalog order.
// @Tags catalog
// @Produce json
// @Param category query string false "Category id or all" default(all)
// @Param q query string false "Case-insensitive search over title and description"
// @Param sort query string false "popular, rating, users or newest" default(popular)
// @Param min_rating query number false "Minimum rating, 0 to 5"
// @Param tier query string false "all, premium or free" default(all)
// @Success 200 {object} dto.CatalogResponse
// @Failure 503 {object} map[string]string
// @Router /api/tools [get]
func (h *CatalogHandler) GetTools(c echo.Context) error {
	params := dto.SearchParamsFromValues(c.QueryParams())
	query := params.ToQuery()

	result, err := h.catalog.Search(c.Request().Context(), query)
	if err != nil {
		h.log.Error("catalog search failed", zap.Error(err))
		return ErrServiceUnavailable(c, "catalog unavailable")
	}
	metrics.CatalogSearches.WithLabelValues(string(query.Sort), "http").Inc()

	return c.JSON(http.StatusOK, dto.CatalogFromDomain(result))
}

// GetCategories godoc
// @Summary List catalog categories
// @Description Every category in display order with the number of tools it holds.
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.Category
// @Failure 503 {object} map[string]string
// @Router /api/categories [get]
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	counts, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		h.log.Error("catalog categories failed", zap.Error(err))
		return ErrServiceUnavailable(c, "catalog unavailable")
	}

	return c.JSON(http.StatusOK, dto.CategoriesFromDomain(counts))
}
