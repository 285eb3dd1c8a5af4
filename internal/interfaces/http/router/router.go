// Package router assembles the gin engine and owns the HTTP server
// lifecycle.
package router

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fraudlens/console/internal/config"
	"github.com/fraudlens/console/internal/infrastructure/session"
	"github.com/fraudlens/console/internal/interfaces/http/handlers"
	"github.com/fraudlens/console/pkg/logger"
)

// Router wires the console's routes onto a gin engine and runs the server.
type Router struct {
	engine   *gin.Engine
	config   *config.Config
	logger   logger.Logger
	sessions session.Store
	auth     *handlers.AuthHandler
	admin    *handlers.AdminHandler
	account  *handlers.AccountHandler
	server   *http.Server
}

// NewRouter creates the router. Routes are registered on Start.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	sessions session.Store,
	auth *handlers.AuthHandler,
	admin *handlers.AdminHandler,
	account *handlers.AccountHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{
		engine:   gin.New(),
		config:   cfg,
		logger:   log,
		sessions: sessions,
		auth:     auth,
		admin:    admin,
		account:  account,
	}
}

// SetupRoutes registers middleware and the full route table.
func (r *Router) SetupRoutes() {
	r.engine.Use(handlers.RequestIDMiddleware())
	r.engine.Use(handlers.LoggingMiddleware(r.logger))
	r.engine.Use(handlers.RecoveryMiddleware(r.logger))

	// Same-origin shells talk to same-origin endpoints; CORS only matters
	// for tooling that probes the fragment endpoints directly.
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", "X-Fragment-Request"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.engine.GET("/", r.auth.Home)
	r.engine.GET("/login", r.auth.LoginPage)
	r.engine.POST("/auth/login", r.auth.Login)
	r.engine.POST("/auth/logout", r.auth.Logout)

	admin := r.engine.Group("/admin")
	admin.Use(handlers.SessionGuard(r.sessions), handlers.RequireAdmin())
	{
		admin.GET("", r.admin.Shell)
		admin.GET("/fragments/overview", r.admin.Overview)
		admin.GET("/fragments/users", r.admin.Users)
		admin.GET("/fragments/analytics", r.admin.Analytics)
		admin.GET("/fragments/alerts", r.admin.Alerts)
		admin.POST("/users", r.admin.CreateUser)
		admin.POST("/intel", r.admin.Intel)
		admin.PATCH("/alerts/:id", r.admin.ResolveAlert)
	}

	account := r.engine.Group("/")
	account.Use(handlers.SessionGuard(r.sessions))
	{
		account.GET("/dashboard", r.account.Shell)
		account.GET("/dashboard/fragments/overview", r.account.Dashboard)
		account.POST("/transactions", r.account.SubmitTransaction)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":             "not_found",
			"error_description": "The requested resource was not found",
		})
	})
}

// Start registers routes and serves until SIGINT/SIGTERM.
func (r *Router) Start() error {
	r.SetupRoutes()

	addr := r.config.Server.Addr()
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	r.logger.Info(context.Background(), "Starting HTTP server", logger.Fields{"address": addr})

	go r.gracefulShutdown()

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	r.logger.Info(context.Background(), "Shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.server.Shutdown(ctx); err != nil {
		r.logger.Error(context.Background(), "Server forced to shutdown", err)
	}

	r.logger.Info(context.Background(), "HTTP server stopped")
}

// Stop shuts the server down outside of signal handling.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

// Engine exposes the underlying engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
