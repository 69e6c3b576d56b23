package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receivables-console/internal/config"
	"receivables-console/internal/database"
	"receivables-console/internal/handlers"
	"receivables-console/internal/middleware"
	"receivables-console/internal/repositories"
	"receivables-console/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	customerRepo := repositories.NewCustomerRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	linkRepo := repositories.NewApplicationLinkRepositoryWithBatchSize(db, cfg.Aggregation.LinkBatchSize)

	// Services
	metrics := services.NewPrometheusMetrics()
	directory := services.NewCustomerDirectoryService(customerRepo)
	treeService := services.NewReceivablesTreeService(invoiceRepo, paymentRepo, linkRepo, directory, metrics)
	erpClient := services.NewERPClient(&cfg.ERP, logger)
	syncService := services.NewSyncService(erpClient, customerRepo, invoiceRepo, paymentRepo, linkRepo, directory, treeService, metrics)
	tokenService := services.NewTokenService(&cfg.Auth)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	receivablesHandler := handlers.NewReceivablesHandler(treeService)
	syncHandler := handlers.NewSyncHandler(syncService)
	docsHandler := handlers.NewDocsHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.ApiKeyHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/swagger.json", docsHandler.ServeOAS3JSON)

	api := e.Group("/api/v1")

	receivables := api.Group("/receivables", middleware.RequireAuth(tokenService))
	receivables.GET("/months", receivablesHandler.ListMonths)
	receivables.POST("/months/:year/:month/expand", receivablesHandler.ExpandMonth)
	receivables.POST("/months/:year/:month/collapse", receivablesHandler.CollapseMonth)
	receivables.POST("/weeks/:year/:month/:week/expand", receivablesHandler.ExpandWeek)
	receivables.POST("/weeks/:year/:month/:week/collapse", receivablesHandler.CollapseWeek)
	receivables.GET("/days/:date/customers", receivablesHandler.GetDayCustomers)
	receivables.POST("/reload", receivablesHandler.Reload, middleware.RequireAdmin())

	api.POST("/sync", syncHandler.TriggerSync, middleware.RequireApiKey(cfg.Sync.ApiKeyHash))

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(customerRepo, invoiceRepo, paymentRepo, linkRepo, directory, treeService, tokenService)
		dev := api.Group("/dev")
		dev.POST("/seed", devHandler.SeedTestData)
		dev.POST("/token", devHandler.IssueDevToken)
		slog.Info("development endpoints enabled", "group", "/api/v1/dev")
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server",
			"addr", server.Addr,
			"environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("server stopped")
}
