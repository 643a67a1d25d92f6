// Package server wires configuration, storage, the tool catalog and
// the HTTP surface into one runnable service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	api "github.com/halcyonbrowser/backend/internal/api/http"
	"github.com/halcyonbrowser/backend/internal/api/middleware"
	"github.com/halcyonbrowser/backend/internal/config"
	"github.com/halcyonbrowser/backend/internal/domain/auth"
	"github.com/halcyonbrowser/backend/internal/domain/bookmarks"
	"github.com/halcyonbrowser/backend/internal/domain/downloads"
	"github.com/halcyonbrowser/backend/internal/domain/history"
	"github.com/halcyonbrowser/backend/internal/domain/profiles"
	"github.com/halcyonbrowser/backend/internal/domain/session"
	"github.com/halcyonbrowser/backend/internal/domain/settings"
	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/monitoring"
	"github.com/halcyonbrowser/backend/internal/providers"
	"github.com/halcyonbrowser/backend/internal/service"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/storage/record"
	"github.com/halcyonbrowser/backend/internal/storage/secure"
	"github.com/halcyonbrowser/backend/internal/storage/vault"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	registry   *service.Registry
	profiles   *profiles.Manager
	log        *logging.Logger
}

// New builds a server from configuration. The data root is created on
// demand; the vault key is generated on first run.
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	if log == nil {
		log = logging.NewNop()
	}

	root := cfg.Storage.DataRoot
	if root == "" {
		root = paths.DefaultDataRoot()
	}
	log.Info("opening data root", zap.String("path", root))

	records := record.New(root, log)

	cipher, err := vault.LoadOrCreate(paths.GlobalFile(root, paths.KeyFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}
	secrets := secure.New(records, cipher, log)

	profileManager := profiles.NewManager(records, log)

	metrics := monitoring.New(prometheus.DefaultRegisterer)
	registry := service.NewRegistry(metrics, log)

	registerProviders(registry, records, secrets, profileManager, log)

	router := buildRouter(cfg, registry, profileManager, metrics)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		registry: registry,
		profiles: profileManager,
		log:      log,
	}, nil
}

func registerProviders(
	registry *service.Registry,
	records *record.Store,
	secrets *secure.Store,
	profileManager *profiles.Manager,
	log *logging.Logger,
) {
	catalog := []service.Provider{
		providers.NewProfiles(profileManager),
		providers.NewBookmarks(bookmarks.NewStore(records, profileManager, log)),
		providers.NewHistory(history.NewStore(records, profileManager, log)),
		providers.NewSettings(settings.NewStore(records, profileManager, log)),
		providers.NewSession(session.NewStore(records, profileManager, log)),
		providers.NewDownloads(downloads.NewStore(records, profileManager, log)),
		providers.NewAuth(auth.NewService(secrets, profileManager, log)),
	}

	for _, p := range catalog {
		if err := registry.Register(p); err != nil {
			log.Error("failed to register provider",
				zap.String("service", p.Definition().ID),
				zap.Error(err))
			continue
		}
		log.Info("registered service", zap.String("service", p.Definition().ID))
	}
}

func buildRouter(
	cfg *config.Config,
	registry *service.Registry,
	profileManager *profiles.Manager,
	metrics *monitoring.Metrics,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(monitoring.Middleware(metrics))

	handlers := api.NewHandlers(registry, profileManager, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/metrics/summary", handlers.MetricsSummary)

	return router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.log.Info("starting server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
