package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"vismify/cmd/server/docs"
	"vismify/internal/api"
	"vismify/internal/api/services"
	"vismify/internal/api/ws"
	"vismify/internal/config"
	"vismify/internal/content"
	"vismify/internal/domain"
	"vismify/internal/logger"
	"vismify/internal/metrics"
	"vismify/internal/redis"
	"vismify/internal/repository"
	"vismify/internal/telemetry"
	"vismify/internal/worker"
)

// @title VismifyTools API
// @version 1.0
// @description Catalog, newsletter and theme API behind the VismifyTools landing site.

// @contact.name VismifyTools Support
// @contact.email support@vismifytools.com

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Admin JWT from POST /api/admin/token. Example: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		lg.Fatal("invalid configuration", zap.Error(err))
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		lg.Fatal("failed to initialize tracing", zap.Error(err))
	}

	site, err := content.Default()
	if err != nil {
		lg.Fatal("failed to load site content", zap.Error(err))
	}

	db, err := repository.New(cfg)
	if err != nil {
		lg.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	rdb := redis.New(cfg)
	defer rdb.Close()

	var cache services.CatalogCache
	if err := redis.Ping(ctx, rdb); err != nil {
		lg.Warn("redis unavailable, serving catalog without cache", zap.Error(err))
	} else {
		cache = redis.NewCatalogCache(rdb, cfg.Redis.CatalogTTL)
	}

	var source services.ToolSource = content.NewSource(site)
	if cfg.Catalog.Source == config.CatalogSourceDatabase {
		source = repository.NewToolRepository(db.DB())
	}
	lg.Info("catalog source selected", zap.String("source", cfg.Catalog.Source))

	hub := ws.NewHub(lg.Named("ws"))
	catalog := services.NewCatalogService(source, cache)

	deps := api.Deps{
		Site:       site,
		Catalog:    catalog,
		Newsletter: services.NewNewsletterService(repository.NewSubscriberRepository(db.DB())),
		AdminAuth:  services.NewAdminAuthService(cfg.Admin.PasswordHash, cfg.Admin.JWTKey),
		Theme:      services.NewThemeService(hub, domain.Theme(cfg.Site.DefaultTheme)),
		Hub:        hub,
		Log:        lg,
	}

	docs.SwaggerInfo.Host = cfg.HTTPAddr
	if cfg.IsProduction() {
		docs.SwaggerInfo.Schemes = []string{"https"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				lg.Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			lg.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if len(cfg.Site.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.Site.AllowedOrigins}))
	} else {
		e.Use(middleware.CORS())
	}
	e.Use(otelecho.Middleware(cfg.Telemetry.ServiceName))
	e.Use(metrics.PrometheusMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.SetupRoutes(e, deps, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	if cache != nil {
		warmer := worker.NewCatalogWarmer(catalog, cfg.Catalog.WarmInterval, lg)
		go warmer.StartWorker(ctx)
	}

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hub.Close()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		lg.Error("tracing shutdown failed", zap.Error(err))
	}
}
