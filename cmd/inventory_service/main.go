package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/go-inventory-service/internal/platform/config"
	"github.com/ridloal/go-inventory-service/internal/platform/database"
	"github.com/ridloal/go-inventory-service/internal/platform/logger"
	productAPI "github.com/ridloal/go-inventory-service/internal/product/api"
	productRepo "github.com/ridloal/go-inventory-service/internal/product/repository"
	productService "github.com/ridloal/go-inventory-service/internal/product/service"
)

func main() {
	// Load Config
	dbCfg := config.LoadInventoryDBConfig()
	serverCfg := config.LoadServerConfig("3001")

	logger.Info("Starting Inventory Service...")

	// Setup Database
	db, err := database.Connect(dbCfg.Path)
	if err != nil {
		logger.Error("Failed to connect to database for Inventory Service", err)
		return
	}

	// Setup Dependencies
	prodRepository := productRepo.NewSQLiteProductRepository(db)
	if err := prodRepository.Init(context.Background()); err != nil {
		logger.Error("Failed to initialize products table", err)
		db.Close()
		return
	}
	prodService := productService.NewProductService(prodRepository)
	productHandler := productAPI.NewProductHandler(prodService)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(corsMiddleware())

	router.GET("/health", productHandler.HealthCheck)
	apiRoutes := router.Group("/api")
	productHandler.RegisterRoutes(apiRoutes)

	// Dashboard assets, served for anything outside /api
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir("./public"))))

	srv := &http.Server{
		Addr:    "0.0.0.0:" + serverCfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Inventory Service running on port " + serverCfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to run Inventory Service server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Stop accepting new requests and drain in-flight ones before closing
	// the storage handle; the handle must outlive the server.
	logger.Info("Shutting down Inventory Service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", err)
	}
	logger.Info("Inventory Service stopped")
}

// corsMiddleware adds permissive CORS headers for the dashboard.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
