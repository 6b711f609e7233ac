package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/flashdeck/flashdeck/handlers"
	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/deck/handler"
	"github.com/flashdeck/flashdeck/internal/deck/service"
	"github.com/flashdeck/flashdeck/internal/deck/store"
	"github.com/flashdeck/flashdeck/pkg/logger"
	"github.com/flashdeck/flashdeck/pkg/metrics"
	"github.com/flashdeck/flashdeck/pkg/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Debugf("startup: log level=%s", logger.LevelString())

	st := store.New(cfg.Store.DataFile)
	if _, err := st.Seed(); err != nil {
		logger.Fatalf("failed to initialize data file %s: %v", cfg.Store.DataFile, err)
	}
	svc := service.New(st)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	// permissive CORS, dev-grade; production wants a stricter policy
	r.Use(cors.Default())

	// Optional global rate limiter: Redis-backed when configured and
	// reachable, otherwise per-IP in-memory token bucket
	if cfg.RateLimit.Enabled {
		var rdb *redis.Client
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
			if err := rdb.Ping(context.Background()).Err(); err != nil {
				logger.Warnf("failed to connect to Redis (%s:%s), falling back to in-memory limiter: %v", cfg.Redis.Host, cfg.Redis.Port, err)
				rdb = nil
			}
		}
		if rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiting enabled (redis, %v/s burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiting enabled (memory, %v/s burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	handler.RegisterRoutes(r, svc)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// static client assets; API routes above take precedence
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Server.StaticDir))))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("Flashcards server running at http://localhost:%s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
