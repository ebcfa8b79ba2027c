// Package main provides the main entry point for the Super Niche Selector API
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirphl/super-niche-selector/app/handlers"
	"github.com/amirphl/super-niche-selector/app/middleware"
	"github.com/amirphl/super-niche-selector/app/router"
	"github.com/amirphl/super-niche-selector/app/services"
	businessflow "github.com/amirphl/super-niche-selector/business_flow"
	"github.com/amirphl/super-niche-selector/config"
	"github.com/amirphl/super-niche-selector/scoring"
	"github.com/amirphl/super-niche-selector/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Application represents the main application structure
type Application struct {
	router    router.Router
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

// @title Super Niche Selector API
// @version 1.0
// @description Marketing niche configurator: Cost Per Lead estimates, super niche sentences and exports.
// @BasePath /
func main() {
	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	closeLogs := initializeLogging(cfg.Logging)
	defer closeLogs()

	log.Println("Starting Super Niche Selector application...")

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := app.router.Start(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	// Stop background workers
	for _, fn := range app.stopFuncs {
		fn()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// initializeLogging routes the standard logger to stdout, a rotated file, or both,
// dropping lines below the configured level
func initializeLogging(cfg config.LoggingConfig) func() {
	log.SetFlags(0)
	if cfg.Output == "stdout" {
		log.SetOutput(utils.NewLevelWriter(os.Stdout, cfg.Level))
		return func() { log.SetOutput(os.Stdout) }
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	var out io.Writer = rotator
	if cfg.Output == "both" {
		out = io.MultiWriter(os.Stdout, rotator)
	}
	log.SetOutput(utils.NewLevelWriter(out, cfg.Level))

	return func() {
		log.SetOutput(os.Stdout)
		_ = rotator.Close()
	}
}

// initializeCache initializes the Cache client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	// Override DB and password if provided in config
	opt.DB = cfg.RedisDB
	if cfg.RedisPassword != "" {
		opt.Password = cfg.RedisPassword
	}

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established (db=%d)", cfg.RedisDB)
	return rc, nil
}

// initializeRarityTable loads the override table when configured, else the compiled-in one
func initializeRarityTable(cfg config.ScoringConfig) (*scoring.RarityTable, error) {
	if cfg.RarityTablePath == "" {
		return scoring.DefaultRarityTable(), nil
	}
	table, err := scoring.LoadRarityTableFile(cfg.RarityTablePath)
	if err != nil {
		return nil, err
	}
	log.Printf("Rarity table loaded from %s", cfg.RarityTablePath)
	return table, nil
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	metrics := middleware.NewDomainMetrics()

	table, err := initializeRarityTable(cfg.Scoring)
	if err != nil {
		return nil, err
	}
	engine := scoring.NewEngine(table)
	catalog := businessflow.NewOptionCatalog(table)

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		stopFuncs = append(stopFuncs, func() { _ = rc.Close() })
	}

	if cfg.Directory.Enabled {
		client := services.NewRestCountriesClient(cfg.Directory.BaseURL, cfg.Directory.Timeout)
		directory := services.NewCachedDirectory(client, rc, cfg.Cache.RedisPrefix, cfg.Cache.DefaultTTL)
		loader := services.NewDirectoryLoader(directory, cfg.Directory.LoadTimeout, metrics)
		loader.Start(context.Background(), catalog.SetExternal)
		// Stop runs before the redis client closes
		stopFuncs = append([]func(){loader.Stop}, stopFuncs...)
	} else {
		catalog.DisableExternal()
		log.Println("Country directory disabled; Country and Language offer built-in options only")
	}

	var exporter services.ExportService
	if cfg.Export.Enabled {
		exporter = services.NewExportService(cfg.Export.Title, cfg.Export.PNGScale)
	}

	nicheFlow := businessflow.NewNicheFlow(engine, catalog, exporter, metrics)
	nicheHandler := handlers.NewNicheHandler(nicheFlow)

	r := router.NewFiberRouter(cfg, nicheHandler, catalog)

	return &Application{
		router:    r,
		config:    cfg,
		server:    r.GetApp(),
		stopFuncs: stopFuncs,
	}, nil
}
