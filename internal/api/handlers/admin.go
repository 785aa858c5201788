package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vismify/internal/api/dto"
	"vismify/internal/api/services"
)

type AdminHandler struct {
	auth       *services.AdminAuthService
	newsletter *services.NewsletterService
	catalog    *services.CatalogService
	log        *zap.Logger
}

func NewAdminHandler(auth *services.AdminAuthService, newsletter *services.NewsletterService, catalog *services.CatalogService, log *zap.Logger) *AdminHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminHandler{
		auth:       auth,
		newsletter: newsletter,
		catalog:    catalog,
		log:        log,
	}
}

type TokenRequest struct {
	Password string `json:"password" validate:"required" example:"password"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RefreshResponse struct {
	Tools int `json:"tools"`
}

// IssueToken godoc
// @Summary Issue an admin token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/admin/token [post]
func (h *AdminHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	token, expiresAt, err := h.auth.IssueToken(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return ErrUnauthorizedWithMessage(c, "invalid credentials")
		case errors.Is(err, services.ErrAdminDisabled):
			return ErrServiceUnavailable(c, "admin access disabled")
		default:
			h.log.Error("issue admin token failed", zap.Error(err))
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token, ExpiresAt: expiresAt})
}

// ListSubscribers godoc
// @Summary List newsletter subscribers
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.Subscriber
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/subscribers [get]
func (h *AdminHandler) ListSubscribers(c echo.Context) error {
	subs, err := h.newsletter.List(c.Request().Context())
	if err != nil {
		h.log.Error("list subscribers failed", zap.Error(err))
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.SubscribersFromDomain(subs))
}

// RefreshCatalog godoc
// @Summary Reload the catalog
// @Description Drops the cached catalog and reloads it from its source.
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/admin/catalog/refresh [post]
func (h *AdminHandler) RefreshCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.catalog.Invalidate(ctx); err != nil {
		h.log.Warn("catalog invalidate failed", zap.Error(err))
	}

	n, err := h.catalog.Refresh(ctx)
	if err != nil {
		h.log.Error("catalog refresh failed", zap.Error(err))
		return ErrServiceUnavailable(c, "catalog unavailable")
	}

	h.log.Info("catalog refreshed", zap.Int("tools", n))
	return c.JSON(http.StatusOK, RefreshResponse{Tools: n})
}
