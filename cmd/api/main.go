package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-tracker/internal/core/cache"
	"shipment-tracker/internal/core/clock"
	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/core/server"
	aeoadapters "shipment-tracker/internal/features/aeo/adapters"
	aeohandler "shipment-tracker/internal/features/aeo/handler"
	aeoports "shipment-tracker/internal/features/aeo/ports"
	aeoservice "shipment-tracker/internal/features/aeo/service"
	catalogadapters "shipment-tracker/internal/features/catalog/adapters"
	cataloghandler "shipment-tracker/internal/features/catalog/handler"
	catalogservice "shipment-tracker/internal/features/catalog/service"
	notifadapters "shipment-tracker/internal/features/notifications/adapters"
	notifhandler "shipment-tracker/internal/features/notifications/handler"
	notifservice "shipment-tracker/internal/features/notifications/service"
	shipadapters "shipment-tracker/internal/features/shipments/adapters"
	shiphandler "shipment-tracker/internal/features/shipments/handler"
	shipservice "shipment-tracker/internal/features/shipments/service"
	visadapters "shipment-tracker/internal/features/visibility/adapters"
	visdomain "shipment-tracker/internal/features/visibility/domain"
	vishandler "shipment-tracker/internal/features/visibility/handler"
	visports "shipment-tracker/internal/features/visibility/ports"
	visservice "shipment-tracker/internal/features/visibility/service"
	"shipment-tracker/internal/jobs"

	"go.uber.org/zap"
)

// @title Shipment Tracker API
// @version 1.0
// @description Shipment tracking, delay detection and carrier analytics over an in-memory ledger, with a product catalog, mock notifications, AEO package storage and search visibility checks.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	m := metrics.New("shipment_tracker")

	// Delay detection evaluates against the reference instant; status updates use the wall clock.
	refClock, err := clock.Reference(cfg.Data.ReferenceTime)
	if err != nil {
		l.Fatal("Invalid REFERENCE_TIME", zap.Error(err))
	}
	wallClock := clock.Real{}

	// Shipment ledger
	store, err := shipadapters.NewStoreFromSnapshot(cfg.Data.ShipmentsFile)
	if err != nil {
		l.Fatal("Failed to load shipment snapshot", zap.Error(err))
	}
	l.Info("Shipment ledger loaded", zap.Int("shipments", store.Len()))

	trackingSvc := shipservice.NewTrackingService(store, wallClock, m)
	delaySvc := shipservice.NewDelayService(store, refClock, m)
	shipmentHdl := shiphandler.NewShipmentHandler(
		trackingSvc,
		delaySvc,
		shipservice.NewAnalyticsService(store),
		shipservice.NewSearchService(store),
	)

	// Catalog
	catalogRepo, err := catalogadapters.LoadCatalog(cfg.Data.CatalogFile)
	if err != nil {
		l.Fatal("Failed to load catalog", zap.Error(err))
	}
	catalogHdl := cataloghandler.NewCatalogHandler(catalogservice.NewCatalogService(catalogRepo))

	// Notifications
	notifSvc := notifservice.NewNotificationService(store, notifadapters.NewMemoryLog(), wallClock, m)
	notifHdl := notifhandler.NewNotificationHandler(notifSvc)

	// AEO packages: Redis when configured, otherwise packages are returned inline.
	var blobStore aeoports.BlobStore
	if cfg.Blob.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Blob.RedisURL)
		if err != nil {
			l.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			l.Warn("Redis not reachable, package writes will fall back", zap.Error(err))
		} else {
			l.Info("Redis connection verified")
		}
		cancel()

		blobStore = aeoadapters.NewRedisBlobStore(redisCache, cfg.Blob.TTL())
	} else {
		l.Warn("REDIS_URL not set, AEO packages will be returned instead of saved")
	}
	aeoHdl := aeohandler.NewPackageHandler(aeoservice.NewPackageService(blobStore, wallClock, m))

	// Visibility
	var searchProvider visports.SearchProvider
	if cfg.Search.APIKey != "" {
		searchProvider = visadapters.NewSerperAdapter(cfg.Search)
	} else {
		l.Warn("SERPER_API_KEY not set, visibility checks will report no_api_key")
	}
	visSvc := visservice.NewVisibilityService(
		searchProvider,
		visadapters.NewReaderAdapter(cfg.Search),
		visdomain.Brand{Name: cfg.Search.BrandName, Domain: cfg.Search.BrandDomain},
	)
	visHdl := vishandler.NewVisibilityHandler(visSvc)

	// Delay sweep
	var scanJob *jobs.DelayScanJob
	if cfg.DelayScan.Enabled {
		scanJob, err = jobs.NewDelayScanJob(cfg.DelayScan, delaySvc, notifSvc, m)
		if err != nil {
			l.Fatal("Invalid delay scan config", zap.Error(err))
		}
		if err := scanJob.Start(); err != nil {
			l.Fatal("Failed to start delay scan job", zap.Error(err))
		}
	}

	srv := server.New(cfg, m)

	// Register Routes
	srv.App.Get("/shipments", shipmentHdl.SearchShipments)
	srv.App.Get("/shipments/delayed", shipmentHdl.DetectDelayed)
	srv.App.Get("/shipments/:identifier", shipmentHdl.TrackShipment)
	srv.App.Patch("/shipments/:id/status", shipmentHdl.UpdateStatus)
	srv.App.Get("/carriers/performance", shipmentHdl.CarrierPerformance)

	srv.App.Get("/products", catalogHdl.SearchProducts)
	srv.App.Get("/products/:id", catalogHdl.LookupProduct)

	srv.App.Post("/notifications", notifHdl.Notify)
	srv.App.Get("/notifications", notifHdl.List)

	srv.App.Post("/aeo/:productId", aeoHdl.SavePackage)
	srv.App.Get("/aeo/*", aeoHdl.GetPackage)

	srv.App.Post("/visibility/check", visHdl.CheckVisibility)
	srv.App.Post("/visibility/competitors", visHdl.SearchCompetitors)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down")

	if scanJob != nil {
		scanJob.Stop()
	}
	if err := srv.Shutdown(); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
