package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/events"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
)

func main() {
	cfg := config.Load()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("db connection failed", "driver", cfg.DBDriver, "err", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("db handle unavailable", "err", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    logger,
		Checks: map[string]handlers.Check{
			"database": sqlDB.PingContext,
		},
	}

	// ======================================================
	// REDIS (stats cache + shared rate limit)
	// ======================================================
	deps.Limiter = middleware.NewLocalLimiter(cfg.BookingRateLimitPerMinute)
	if cfg.RedisEnabled() {
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, using in-process limiter and no stats cache", "err", err)
		} else {
			defer rdb.Close()
			deps.StatsCache = cache.NewRedisStatsCache(rdb)
			deps.Limiter = middleware.NewRedisLimiter(rdb, cfg.BookingRateLimitPerMinute, time.Minute)
			deps.Checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	// ======================================================
	// AUDIT (database + optional kafka)
	// ======================================================
	sinks := []audit.Sink{audit.New(db)}
	var kafkaSink *events.KafkaSink
	if cfg.KafkaBrokers != "" {
		kafkaSink = events.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaAuditTopic, logger)
		sinks = append(sinks, kafkaSink)
		logger.Info("kafka audit sink enabled", "topic", cfg.KafkaAuditTopic)
	}
	deps.Audit = audit.NewDispatcher(logger, sinks...)

	// ======================================================
	// S3 (barber photos)
	// ======================================================
	if cfg.S3Enabled() {
		deps.PhotoStore = storage.NewS3PhotoStore(storage.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
			AccessKeyID:   cfg.AWSAccessKeyID,
			SecretKey:     cfg.AWSSecretKey,
		})
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}

	deps.Audit.Close()
	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			logger.Error("kafka writer close failed", "err", err)
		}
	}

	logger.Info("http server stopped", slog.String("addr", srv.Addr))
}
