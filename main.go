package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"techstore-admin/auth"
	"techstore-admin/config"
	"techstore-admin/controllers"
	"techstore-admin/logging"
	"techstore-admin/routes"
	"techstore-admin/store"
)

const imageFolder = "techstore/products"

func main() {
	if err := run(); err != nil {
		log.Fatalf("techstore-admin: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Production: cfg.IsProduction(),
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	slot, err := openSlot(ctx, cfg, logger)
	if err != nil {
		return err
	}

	catalog := store.New(slot,
		store.WithKey(cfg.StoreKey),
		store.WithLogger(logger.Named("store")),
		store.WithSeed(cfg.SeedValue, cfg.SeedGenerated),
	)
	defer func() {
		if err := catalog.Close(context.Background()); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()
	if _, err := catalog.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	authenticator, err := auth.NewAuthenticator(cfg.PasetoSecretKey, logger.Named("auth"))
	if err != nil {
		return fmt.Errorf("build authenticator: %w", err)
	}

	ctrl := &controllers.Controller{
		Store:       catalog,
		StoreDriver: cfg.StoreDriver,
		Auth:        authenticator,
		Log:         logger,
	}
	if cfg.CloudinaryURL != "" {
		uploader, err := controllers.NewCloudinaryUploader(cfg.CloudinaryURL, imageFolder)
		if err != nil {
			return err
		}
		ctrl.Uploader = uploader
	} else {
		logger.Info("CLOUDINARY_URL not set, image uploads disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routes.Setup(ctrl, cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Env),
			zap.String("store", cfg.StoreDriver),
			zap.Bool("auth_required", cfg.AuthRequired),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openSlot(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (store.Slot, error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("using the in-memory store, changes are lost on restart")
		return store.NewMemorySlot(), nil
	case "mongo":
		client, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return store.NewMongoSlot(client, cfg.MongoDatabase), nil
	default:
		slot, err := store.OpenBoltSlot(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		logger.Info("using bolt store", zap.String("path", cfg.StorePath))
		return slot, nil
	}
}
