package main

import (
	"net/http"
	"os"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/middleware"
	"catalog_service/internal/repository"
	"catalog_service/internal/storage"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.Info("Starting Catalog Service...")

	// --- Storage ---
	// Products and categories share one document, favorites live in
	// their own, matching the backing file split.
	catalogStore := storage.NewStore(cfg.DBFile, logger)
	favoritesStore := storage.NewStore(cfg.FavoritesFile, logger)
	logger.Info("Stores initialized.")

	// --- Dependency Injection ---
	productRepo := repository.NewStoreProductRepository(catalogStore, logger)
	categoryRepo := repository.NewStoreCategoryRepository(catalogStore, logger)
	favoriteRepo := repository.NewStoreFavoriteRepository(favoritesStore, logger)
	logger.Info("Repositories initialized.")

	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, logger)
	authUseCase := usecase.NewAuthUseCase(cfg, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(productUseCase, logger)
	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	favoriteHandler := delivery.NewFavoriteHandler(favoriteUseCase, logger)
	authHandler := delivery.NewAuthHandler(authUseCase, logger)
	logger.Info("Handlers initialized.")

	// --- Router ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler.RegisterRoutes(router)

	protected := router.Group("/")
	protected.Use(middleware.TokenAuth(authUseCase, logger))
	{
		productHandler.RegisterRoutes(protected)
		categoryHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
	}
	logger.Info("API routes registered.")

	// --- Start Server ---
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
