package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/olyamironova/matching-core/internal/adapter/cache"
	"github.com/olyamironova/matching-core/internal/adapter/in_memory"
	"github.com/olyamironova/matching-core/internal/adapter/pg"
	"github.com/olyamironova/matching-core/internal/adapter/stream"
	"github.com/olyamironova/matching-core/internal/api/http"
	"github.com/olyamironova/matching-core/internal/config"
	"github.com/olyamironova/matching-core/internal/engine"
	"github.com/olyamironova/matching-core/internal/port"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	var store port.JournalStore
	if cfg.PostgresDSN != "" {
		pgStore, err := pg.NewStore(ctx, cfg.PostgresDSN, cfg.Instrument)
		if err != nil {
			log.Fatal("connect to Postgres", zap.Error(err))
		}
		defer pgStore.Close()
		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
		store = pgStore
	} else {
		log.Warn("POSTGRES_DSN not set, journal kept in memory")
		store = in_memory.NewJournalStore()
	}

	var depthCache port.DepthCache
	if cfg.RedisAddr != "" {
		depthCache = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.DepthCacheTTL)
	} else {
		depthCache = in_memory.NewCache()
	}

	var publisher port.TradePublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp := stream.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer kp.Close()
		publisher = kp
	}

	svc, err := engine.NewService(ctx, engine.Config{
		Instrument:        cfg.Instrument,
		EnableJournaling:  cfg.EnableJournaling,
		ConditionalOrders: cfg.ConditionalOrders,
		Store:             store,
		Cache:             depthCache,
		Publisher:         publisher,
		Logger:            log,
	})
	if err != nil {
		log.Fatal("start engine", zap.Error(err))
	}

	if cfg.SnapshotInterval > 0 {
		go snapshotLoop(ctx, svc, cfg.SnapshotInterval, log)
	}

	server := http.NewHTTPServer(svc)
	go func() {
		log.Info("starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := server.Run(cfg.HTTPAddr); err != nil {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := svc.Snapshot(shutdownCtx); err != nil {
		log.Error("snapshot on shutdown", zap.Error(err))
	}
	log.Info("shutdown complete")
}

func snapshotLoop(ctx context.Context, svc *engine.Service, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.Snapshot(ctx); err != nil {
				log.Error("periodic snapshot", zap.Error(err))
			}
		}
	}
}
