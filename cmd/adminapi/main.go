package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/edumela/admin-api/internal/config"
	"github.com/edumela/admin-api/internal/config/db"
	"github.com/edumela/admin-api/internal/handlers"
	"github.com/edumela/admin-api/internal/middlewares/logger"
	"github.com/edumela/admin-api/internal/service"
)

func main() {
	if err := logger.Initialize("debug"); err != nil {
		logger.Log.Warn(err.Error())
	}

	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf := config.InitConfig()

	storage, err := db.NewDB(rootCtx, conf.DatabaseDNS)
	if err != nil {
		logger.Log.Error("Unable to connect to database",
			zap.String("path", conf.DatabaseDNS),
			zap.Error(err),
		)
		return err
	}
	defer storage.Close()

	serverService := service.NewServerService(rootCtx, conf.Address, storage)

	jwtConfig := &handlers.JWTConfig{
		SecretKey:       conf.JWTSecret,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	serverService.SetRouter(jwtConfig)

	serverErr := make(chan error, 1)
	logger.Log.Info("Running Server on", zap.String("address", conf.Address))
	go serverService.RunServer(&serverErr)

	select {
	case <-rootCtx.Done():
		logger.Log.Info("Received shutdown signal, shutting down.")
	case err = <-serverErr:
		logger.Log.Error("Server error", zap.Error(err))
	}

	if shutdownErr := serverService.Shutdown(); shutdownErr != nil {
		logger.Log.Error("Server shutdown error", zap.Error(shutdownErr))
	}

	return err
}
