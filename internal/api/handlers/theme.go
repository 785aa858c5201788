package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vismify/internal/api/middleware"
	"vismify/internal/api/services"
	"vismify/internal/domain"
)

const (
	ThemeCookie = "vt_theme"
	themeMaxAge = 365 * 24 * time.Hour
)

type ThemeHandler struct {
	theme  *services.ThemeService
	secure bool
	log    *zap.Logger
}

func NewThemeHandler(theme *services.ThemeService, secure bool, log *zap.Logger) *ThemeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ThemeHandler{
		theme:  theme,
		secure: secure,
		log:    log,
	}
}

// ThemeRequest leaves Theme empty to toggle between light and dark.
type ThemeRequest struct {
	Theme string `json:"theme" form:"theme" validate:"omitempty,oneof=light dark system" example:"dark"`
}

type ThemeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// ChangeTheme godoc
// @Summary Change the visitor's theme
// @Description Sets the theme, or toggles it when none is given. Open websocket connections of the same visitor receive a theme_update message.
// @Tags theme
// @Accept json
// @Produce json
// @Param request body ThemeRequest false "Theme"
// @Success 200 {object} ThemeResponse
// @Failure 400 {object} map[string]string
// @Router /api/theme [post]
func (h *ThemeHandler) ChangeTheme(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, "invalid theme")
	}

	next := h.apply(c, req.Theme)
	return c.JSON(http.StatusOK, ThemeResponse{Theme: next})
}

// ChangeThemeForm is the no-script fallback of the navbar toggle.
func (h *ThemeHandler) ChangeThemeForm(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		req.Theme = ""
	}

	h.apply(c, req.Theme)
	return c.Redirect(http.StatusSeeOther, safeReturnPath(c.Request().Referer()))
}

func (h *ThemeHandler) apply(c echo.Context, requested string) domain.Theme {
	current := h.theme.Resolve(CurrentTheme(c))

	visitorID, err := middleware.GetVisitorIDFromContext(c.Request().Context())
	if err != nil {
		visitorID = uuid.Nil
	}

	next, err := h.theme.Change(visitorID, current, requested)
	if err != nil {
		h.log.Warn("theme broadcast failed", zap.Stringer("visitor", visitorID), zap.Error(err))
	}

	c.SetCookie(&http.Cookie{
		Name:     ThemeCookie,
		Value:    string(next),
		Path:     "/",
		MaxAge:   int(themeMaxAge.Seconds()),
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return next
}

// CurrentTheme returns the stored theme cookie value, or "" when unset.
func CurrentTheme(c echo.Context) string {
	cookie, err := c.Cookie(ThemeCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// safeReturnPath keeps redirects on this site by dropping scheme and host
// from the referer.
func safeReturnPath(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || u.Path[0] != '/' {
		return "/"
	}
	// Browsers read a leading "/\" the same as "//".
	if len(u.Path) > 1 && (u.Path[1] == '/' || u.Path[1] == '\\') {
		return "/"
	}
	out := u.Path
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		out += "#" + u.Fragment
	}
	return out
}
