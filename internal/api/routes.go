package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"vismify/internal/api/handlers"
	"vismify/internal/api/middleware"
	"vismify/internal/api/services"
	"vismify/internal/api/ws"
	"vismify/internal/config"
	"vismify/internal/domain"
)

// Deps are the long-lived services the routes share.
type Deps struct {
	Site       *domain.SiteContent
	Catalog    *services.CatalogService
	Newsletter *services.NewsletterService
	AdminAuth  *services.AdminAuthService
	Theme      *services.ThemeService
	Hub        *ws.Hub
	Log        *zap.Logger
}

func SetupRoutes(e *echo.Echo, deps Deps, cfg *config.Config) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	secure := cfg.IsProduction()

	e.Validator = NewValidator()

	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		HSTSMaxAge:         hstsMaxAge(secure),
	}))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.HasPrefix(c.Request().URL.Path, "/assets") {
				if secure {
					c.Response().Header().Set("Cache-Control", "public, max-age=604800")
				} else {
					c.Response().Header().Set("Cache-Control", "public, max-age=3600")
				}
			}
			return next(c)
		}
	})

	e.Use(middleware.Visitor(secure))

	e.GET("/health", healthCheck)
	e.Static("/assets", resolveAssetsDir(cfg.Site.AssetsDir))

	pageHandler := handlers.NewPageHandler(deps.Site, deps.Catalog, deps.Theme, cfg.Site.BaseURL, cfg.Site.DefaultLanguage, log)
	e.GET("/", pageHandler.Landing)

	seoHandler := handlers.NewSEOHandler(deps.Site, cfg.Site.BaseURL)
	e.GET("/robots.txt", seoHandler.Robots)
	e.GET("/sitemap.xml", seoHandler.Sitemap)
	e.GET("/manifest.json", seoHandler.Manifest)

	newsletterHandler := handlers.NewNewsletterHandler(deps.Newsletter, log)
	themeHandler := handlers.NewThemeHandler(deps.Theme, secure, log)
	e.POST("/newsletter", newsletterHandler.SubscribeForm)
	e.POST("/theme", themeHandler.ChangeThemeForm)

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, log)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub, deps.Catalog, cfg.Site.AllowedOrigins, log)

	apiGroup := e.Group("/api")
	apiGroup.GET("/tools", catalogHandler.GetTools)
	apiGroup.GET("/categories", catalogHandler.GetCategories)
	apiGroup.POST("/newsletter", newsletterHandler.Subscribe)
	apiGroup.POST("/theme", themeHandler.ChangeTheme)
	apiGroup.GET("/ws", wsHandler.HandleConnection)

	adminHandler := handlers.NewAdminHandler(deps.AdminAuth, deps.Newsletter, deps.Catalog, log)
	apiGroup.POST("/admin/token", adminHandler.IssueToken)

	if !deps.AdminAuth.Enabled() {
		log.Info("admin routes disabled: ADMIN_PASSWORD_HASH is not set")
		return
	}

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.Admin.JWTKey),
		ContextKey: "user",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	}

	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(echojwt.WithConfig(jwtConfig))
	adminGroup.Use(middleware.RequireAdmin())
	adminGroup.GET("/subscribers", adminHandler.ListSubscribers)
	adminGroup.POST("/catalog/refresh", adminHandler.RefreshCatalog)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func hstsMaxAge(secure bool) int {
	if secure {
		return 31536000
	}
	return 0
}

// resolveAssetsDir finds dir relative to the working directory, the
// binary, or the nearest go.mod, and returns dir unchanged otherwise.
func resolveAssetsDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}

	candidates := []string{
		dir,
		filepath.Join("..", dir),
		filepath.Join(filepath.Dir(os.Args[0]), "..", dir),
	}
	for _, path := range candidates {
		if abs, err := filepath.Abs(path); err == nil {
			if info, err := os.Stat(abs); err == nil && info.IsDir() {
				return abs
			}
		}
	}

	wd, _ := os.Getwd()
	for wd != "" {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			candidate := filepath.Join(wd, dir)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}

	return dir
}
