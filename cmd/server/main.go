package main

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fraudlens/console/internal/application/service"
	"github.com/fraudlens/console/internal/config"
	"github.com/fraudlens/console/internal/infrastructure/monitoring"
	"github.com/fraudlens/console/internal/infrastructure/riskapi"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/internal/interfaces/http/handlers"
	"github.com/fraudlens/console/internal/interfaces/http/router"
	"github.com/fraudlens/console/internal/view"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx := context.Background()
	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	gateway := riskapi.NewClient(&cfg.Upstream, appLogger, metrics)

	var sessions session.Store
	switch cfg.Session.Store {
	case "redis":
		sessions, err = session.NewRedisStore(ctx, &cfg.Session.Redis, cfg.Session.TTLDuration(), appLogger, metrics)
		if err != nil {
			appLogger.Fatal(ctx, "Failed to connect to Redis", err)
		}
	default:
		sessions = session.NewMemoryStore(cfg.Session.TTLDuration(), metrics)
	}

	authSvc := service.NewAuthService(gateway, sessions, appLogger)
	adminSvc := service.NewAdminService(gateway, cfg.Cache.AnalyticsTTLDuration(), appLogger)
	accountSvc := service.NewAccountService(gateway, appLogger)

	renderer := view.NewRenderer()
	secure := cfg.Session.CookieSecure

	authHandler := handlers.NewAuthHandler(authSvc, sessions, secure)
	adminHandler := handlers.NewAdminHandler(adminSvc, authSvc, renderer, sessions, metrics, secure)
	accountHandler := handlers.NewAccountHandler(accountSvc, renderer, sessions, metrics, secure)

	r := router.NewRouter(cfg, appLogger, sessions, authHandler, adminHandler, accountHandler)
	if err := r.Start(); err != nil {
		appLogger.Fatal(ctx, "HTTP server failed", err)
	}
}
