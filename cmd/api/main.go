package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/config"
	"github.com/gavinjunior/portfolio-backend/internal/bootstrap"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		Logger:      logger,
		Mail:        bootstrap.NewMailSender(cfg.Mail, logger),
	}

	mongoClient, coll, err := bootstrap.OpenMongo(ctx, cfg.Database)
	if err != nil {
		logger.Warn("project store unavailable; project endpoints will report a configuration error", zap.Error(err))
	} else {
		deps.Projects = coll
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(dctx)
		}()
	}

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Cache)
	if err != nil {
		logger.Warn("redis unavailable; serving projects uncached", zap.Error(err))
	} else if rdb != nil {
		deps.Redis = rdb
		defer func() { _ = rdb.Close() }()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           bootstrap.BuildRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("could not stop server gracefully", zap.Error(err))
		_ = srv.Close()
	}
	logger.Info("server stopped")
}
