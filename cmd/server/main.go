package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/365take-collab/motefuku/config"
	"github.com/365take-collab/motefuku/internal/app/controller"
	"github.com/365take-collab/motefuku/internal/app/repository"
	"github.com/365take-collab/motefuku/internal/app/service"
	"github.com/365take-collab/motefuku/internal/router"
	"github.com/365take-collab/motefuku/internal/scheduler"
	"github.com/365take-collab/motefuku/pkg/logger"
	"github.com/365take-collab/motefuku/pkg/marketing/utage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting motefuku API server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(cfg.Catalog.ProductsFile)
	templateRepo := repository.NewTemplateRepository(cfg.Catalog.TemplatesFile)

	// Initialize UTAGE client
	utageClient, err := utage.NewClient(utage.Config{
		APIKey:             cfg.Utage.APIKey,
		BaseURL:            cfg.Utage.BaseURL,
		ScenarioIDProspect: cfg.Utage.ScenarioIDProspect,
		ScenarioIDCustomer: cfg.Utage.ScenarioIDCustomer,
		ScenarioIDDormant:  cfg.Utage.ScenarioIDDormant,
		Timeout:            cfg.Utage.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to create UTAGE client", err)
	}

	// Initialize services
	templateService := service.NewTemplateService(templateRepo)
	productService := service.NewProductService(productRepo)
	recommendService := service.NewRecommendService(productRepo)
	brandStyleService := service.NewBrandStyleService(productRepo)
	emailService := service.NewEmailService(utageClient, cfg.App.BaseURL)
	checkoutService := service.NewCheckoutService(utageClient, cfg.Utage.ScenarioIDCustomer, cfg.App.StaticDir)

	// Initialize controllers
	templateController := controller.NewTemplateController(templateService)
	productController := controller.NewProductController(productService, recommendService)
	brandStyleController := controller.NewBrandStyleController(brandStyleService)
	emailController := controller.NewEmailController(emailService)
	checkoutController := controller.NewCheckoutController(checkoutService)

	// Start catalog scheduler
	catalogScheduler := scheduler.NewCatalogScheduler(productRepo, templateRepo)
	if err := catalogScheduler.Start(); err != nil {
		logger.Error("Failed to start catalog scheduler", err)
	}
	defer catalogScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		templateController,
		productController,
		brandStyleController,
		emailController,
		checkoutController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
