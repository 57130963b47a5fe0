package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

const shutdownTimeout = 30 * time.Second

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("backend", envConfig.StoreBackend).Info("expense-server starting")

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	delegator := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store, delegator, logger)

	httpRest := api.Rest{
		Logger:        logger,
		Port:          envConfig.Port,
		Service:       svc,
		Storage:       store,
		AllowedOrigin: envConfig.CORSAllowedOrigin,
	}
	server := httpRest.Server()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("port", envConfig.Port).Info("HttpServer.Serve.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("HttpServer.Serve.shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("HttpServer.Serve.error")
		stop()
		delegator.Stop()
		_ = store.Close()
		os.Exit(1)
	}
	logger.Info("expense-server stopped")
}
