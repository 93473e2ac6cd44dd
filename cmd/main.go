package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/srikanthravipati27/environment-hub/config"
	"github.com/srikanthravipati27/environment-hub/internal/container"
	"github.com/srikanthravipati27/environment-hub/internal/infrastructure/memory"
	mongoinfra "github.com/srikanthravipati27/environment-hub/internal/infrastructure/mongo"
	"github.com/srikanthravipati27/environment-hub/internal/interface/middleware"
	"github.com/srikanthravipati27/environment-hub/internal/router"
	"github.com/srikanthravipati27/environment-hub/internal/seed"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
	"github.com/srikanthravipati27/environment-hub/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Document store
	var preloaded *memory.ContentRepository
	if cfg.UseMemoryStore() {
		preloaded = memory.NewContentRepository()
		n, err := seed.Load(ctx, preloaded, nil)
		if err != nil {
			logger.Fatalf("failed to load sample content: %v", err)
		}
		logger.WithField("documents", n).Warn("using in-memory document store; data is lost on exit")
	} else {
		client, err := mongoinfra.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
		if err != nil {
			logger.Fatalf("failed to connect to mongodb: %v", err)
		}
		defer func() { _ = mongoinfra.Disconnect(client) }()
		container.SetMongo(client)

		if cfg.MigrationsEnabled {
			if err := mongoinfra.Migrate(client, cfg.MongoDB, cfg.MigrationsDir, logger); err != nil {
				logger.Fatalf("migration failed: %v", err)
			}
		}
	}

	// Redis (session store)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	if err := helpers.PingRedis(ctx, rdb); err != nil {
		logger.Fatalf("failed to connect to redis: %v", err)
	}

	// Provide infra singletons to container for module wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)

	// Gin engine and global middleware
	r, err := router.NewEngine()
	if err != nil {
		logger.Fatalf("failed to load templates: %v", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}
	r.Static("/public", cfg.StaticDir)

	reg := router.NewRegistry(r)
	if err := router.InitModules(reg, router.DepsFromContainer(preloaded)); err != nil {
		logger.Fatalf("failed to init modules: %v", err)
	}
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
