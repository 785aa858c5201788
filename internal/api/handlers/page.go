package handlers

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vismify/internal/api/dto"
	"vismify/internal/api/services"
	"vismify/internal/domain"
	"vismify/internal/metrics"
	"vismify/internal/web"
)

type PageHandler struct {
	site        *domain.SiteContent
	catalog     *services.CatalogService
	theme       *services.ThemeService
	baseURL     string
	defaultLang string
	log         *zap.Logger
}

func NewPageHandler(site *domain.SiteContent, catalog *services.CatalogService, theme *services.ThemeService, baseURL, defaultLang string, log *zap.Logger) *PageHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PageHandler{
		site:        site,
		catalog:     catalog,
		theme:       theme,
		baseURL:     baseURL,
		defaultLang: defaultLang,
		log:         log,
	}
}

// Landing renders the full page. The tools section reflects the same
// query parameters as GET /api/tools.
func (h *PageHandler) Landing(c echo.Context) error {
	values := c.QueryParams()
	query := dto.SearchParamsFromValues(values).ToQuery()

	result, err := h.catalog.Search(c.Request().Context(), query)
	if err != nil {
		h.log.Error("catalog search failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable")
	}
	metrics.CatalogSearches.WithLabelValues(string(query.Sort), "page").Inc()

	lang := values.Get("lang")
	if lang == "" {
		lang = h.defaultLang
	}

	page := web.Page{
		Site:       h.site,
		BaseURL:    h.baseURL,
		Theme:      h.theme.Resolve(CurrentTheme(c)),
		Language:   h.site.Language(lang),
		Catalog:    result,
		View:       web.ParseView(values.Get("view")),
		Newsletter: values.Get("newsletter"),
	}

	var buf bytes.Buffer
	if err := web.Render(&buf, page); err != nil {
		h.log.Error("render landing page failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
