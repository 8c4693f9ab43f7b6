// Package app configures and runs application.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/controller/httpapi"
	wsv1 "github.com/smart-parking/console/internal/controller/ws/v1"
	"github.com/smart-parking/console/internal/usecase"
	"github.com/smart-parking/console/internal/usecase/sqldb"
	"github.com/smart-parking/console/pkg/db"
	"github.com/smart-parking/console/pkg/httpserver"
	"github.com/smart-parking/console/pkg/logger"
	"github.com/smart-parking/console/pkg/pubsub"
	secrets "github.com/smart-parking/console/pkg/secrets/vault"
)

var Version = "DEVELOPMENT"

var ErrEmptyJWTKey = errors.New("jwt signing key in secret store is empty")

// KeyStore reads named secrets.
type KeyStore interface {
	GetKeyValue(ctx context.Context, key string) (string, error)
}

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: %s", cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if secrets.Enabled(cfg.Secrets) {
		store, err := secrets.NewClient(&cfg.Secrets, secrets.WithPath(cfg.Secrets.Path))
		if err != nil {
			log.Fatal(fmt.Errorf("app - Run - secrets.NewClient: %w", err))
		}

		if err := LoadJWTKey(ctx, cfg, store); err != nil {
			log.Fatal(fmt.Errorf("app - Run - LoadJWTKey: %w", err))
		}

		log.Info("app - Run - jwt key loaded from secret store")
	}

	// Repository
	database, err := db.New(cfg.DB.URL, sql.Open, db.MaxPoolSize(cfg.PoolMax), db.EnableForeignKeys(true))
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - db.New: %w", err))
	}

	defer database.Close()

	if err := sqldb.Migrate(database); err != nil {
		log.Fatal(fmt.Errorf("app - Run - sqldb.Migrate: %w", err))
	}

	hub := setupHub(ctx, cfg, log)
	defer hub.Close()

	// Use case
	usecases, err := usecase.NewUseCases(database, log, cfg, hub)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - usecase.NewUseCases: %w", err))
	}

	usecases.Start(ctx)

	handler := setupHTTPHandler(cfg, log, usecases, hub)

	httpServer := httpserver.New(
		handler,
		httpserver.Address(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	cancel()
	usecases.Close()
}

// LoadJWTKey replaces cfg.JWTKey with the signing key kept in the secret store.
func LoadJWTKey(ctx context.Context, cfg *config.Config, store KeyStore) error {
	key, err := store.GetKeyValue(ctx, cfg.JWTKeySecretName)
	if err != nil {
		return err
	}

	if key == "" {
		return ErrEmptyJWTKey
	}

	cfg.JWTKey = key

	return nil
}

// setupHub keeps pub/sub in-process unless a redis address is configured.
func setupHub(ctx context.Context, cfg *config.Config, log logger.Interface) *pubsub.Hub {
	if cfg.Redis.Addr == "" {
		return pubsub.New(log)
	}

	logger.SetupRedis(log)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	hub := pubsub.New(log, pubsub.WithRedis(client, cfg.Redis.ChannelPrefix))

	if err := hub.Start(ctx); err != nil {
		log.Fatal(fmt.Errorf("app - Run - hub.Start: %w", err))
	}

	log.Info("app - Run - broadcasting through redis at " + cfg.Redis.Addr)

	return hub
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases, hub *pubsub.Hub) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, *usecases, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	upgrader := &websocket.Upgrader{
		ReadBufferSize:    4 * 1024,
		WriteBufferSize:   16 * 1024,
		CheckOrigin:       func(_ *http.Request) bool { return true },
		EnableCompression: cfg.WSCompression,
	}

	wsv1.RegisterRoutes(handler, log, hub, upgrader)

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}
