package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/handlers"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/config"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/internal/store"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/logger"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/metrics"
	"github.com/nikita1503agarwal/backend-repo-ucfpm3r0-c5mqv8/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v addr=%s", cfg.MongoDB.Configured(), cfg.Server.Address())

	r := gin.New()

	// Permissive CORS: the frontend is served from a different origin and
	// sends credentialed requests.
	r.Use(middleware.CORSMiddleware())

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to MongoDB when configured. A single attempt: the backend is
	// expected to come up and serve fallback content even when the
	// database is down or not configured at all.
	ctx := context.Background()
	var gw store.Gateway = store.Disconnected()
	if cfg.MongoDB.Configured() {
		st, err := store.Open(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("could not connect to MongoDB: %v (continuing without persistence)", err)
		} else {
			defer func() { _ = st.Close(ctx) }()
			gw = st
			logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
		}
	} else {
		logger.Warnf("DATABASE_URL or DATABASE_NAME not set; running without persistence")
	}

	h := handlers.NewPortfolioHandler(cfg, gw)
	h.Register(r.Group("/"))
	handlers.RegisterDocs(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := cfg.Server.Address()
	logger.Infof("Starting portfolio backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
