package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/wordbook/dictionary/handlers"
	"github.com/wordbook/dictionary/internal/config"
	"github.com/wordbook/dictionary/internal/word/cache"
	"github.com/wordbook/dictionary/internal/word/handler"
	"github.com/wordbook/dictionary/internal/word/repository"
	"github.com/wordbook/dictionary/internal/word/resolver"
	"github.com/wordbook/dictionary/pkg/logger"
	"github.com/wordbook/dictionary/pkg/metrics"
	"github.com/wordbook/dictionary/pkg/middleware"
)

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: backend=%s redis=%v rate_limit=%v", cfg.Store.Backend, cfg.Redis.Addr() != "", cfg.RateLimit.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open word store: %v", err)
	}
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(cctx); err != nil {
			logger.Warnf("closing store: %v", err)
		}
	}()

	deps := map[string]handlers.Pinger{}

	var rdb *redis.Client
	if addr := cfg.Redis.Addr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis ping failed (%s): %v", addr, err)
		} else {
			logger.Infof("connected to Redis %s", addr)
		}
		deps["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	var opts []resolver.Option
	if rdb != nil && cfg.Search.CacheTTL > 0 {
		opts = append(opts, resolver.WithSearchCache(cache.NewRedisSearchCache(rdb, "", cfg.Search.CacheTTL)))
		logger.Infof("search cache enabled (ttl=%s)", cfg.Search.CacheTTL)
	}
	res := resolver.New(store, opts...)
	deps["store"] = res.Ping

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.NewHealth(cfg.Store.Timeout, deps).Register(r)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.New(res, cfg.Store.Timeout).Register(r.Group("/api"))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("dictionary service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Errorf("server failed: %v", err)
	case <-ctx.Done():
		logger.Infof("shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Warnf("graceful shutdown: %v", err)
	}
	logger.Infof("server stopped")
}
