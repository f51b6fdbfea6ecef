package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/api"
	"github.com/d60-Lab/yatube/internal/api/handler"
	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/config"
	"github.com/d60-Lab/yatube/internal/db"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/internal/storage"
	"github.com/d60-Lab/yatube/pkg/logger"
	"github.com/d60-Lab/yatube/pkg/tracing"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Env}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, "yatube", cfg.Tracing.OTLPEndpoint)
	if err != nil {
		logger.Fatal("tracing init failed", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(ctx) }()

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}

	// redis 未配置时用 no-op 缓存，首页退化为每次现算
	pageCache := cache.NewNoop()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal("redis ping failed", zap.Error(err))
		}
		defer client.Close()
		pageCache = cache.NewRedis(client)
	}

	userRepo := repository.NewUserRepository(gdb)
	groupRepo := repository.NewGroupRepository(gdb)
	postRepo := repository.NewPostRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	followRepo := repository.NewFollowRepository(gdb)

	feedSvc := service.NewFeedService(postRepo, userRepo, groupRepo, followRepo, cfg.Feed.PageSize)
	postSvc := service.NewPostService(postRepo, commentRepo, groupRepo)
	relSvc := service.NewRelationshipService(followRepo)
	userSvc := service.NewUserService(userRepo)
	media := storage.NewMediaStore(cfg.Media.Dir, cfg.Media.MaxUploadMB<<20)

	h := handler.New(cfg, feedSvc, postSvc, relSvc, userSvc, groupRepo, media, pageCache)
	router := api.NewRouter(cfg, h, pageCache)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("stopped")
}
