package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sparkAgent/app/echo-server/router"
	"sparkAgent/business/actions"
	"sparkAgent/business/agent"
	"sparkAgent/business/analyzer"
	"sparkAgent/business/comparator"
	"sparkAgent/business/navigator"
	"sparkAgent/business/parser"
	"sparkAgent/business/recommender"
	"sparkAgent/business/storelocator"
	"sparkAgent/internal/middleware"
	"sparkAgent/internal/repository/catalog"
	"sparkAgent/internal/rest"
	"sparkAgent/pkg/config"
	"sparkAgent/pkg/logger"
	"sparkAgent/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Spark Shopping Agent", "version", cfg.App.Version)

	metrics.Init()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Init repo
	catalogRepo := catalog.NewCatalogRepository()

	// Init service
	parserService := parser.NewService()
	navigatorService := navigator.NewService()
	analyzerService := analyzer.NewService()
	storeService := storelocator.NewService(rng)
	actionsService := actions.NewService(catalogRepo, rng)
	comparatorService := comparator.NewService(analyzerService)
	recommenderService := recommender.NewService(analyzerService, storeService)
	agentService := agent.NewService(
		parserService,
		navigatorService,
		actionsService,
		comparatorService,
		recommenderService,
		catalogRepo,
	)

	// Init handler
	agentHandler := rest.NewAgentHandler(agentService, navigatorService, actionsService)
	comparisonHandler := rest.NewComparisonHandler(comparatorService, catalogRepo)
	recommendationHandler := rest.NewRecommendationHandler(recommenderService, catalogRepo)
	productHandler := rest.NewProductHandler(catalogRepo)
	storeHandler := rest.NewStoreHandler(storeService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Spark Shopping Agent API",
			"version": cfg.App.Version,
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api")
	router.SetupAgentRoutes(api, agentHandler)
	router.SetupComparisonRoutes(api, comparisonHandler)
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupProductRoutes(api, productHandler)
	router.SetupStoreRoutes(api, storeHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
