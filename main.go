package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/princinho/sellerdashboard/config"
	"github.com/princinho/sellerdashboard/controllers"
	"github.com/princinho/sellerdashboard/database"
	"github.com/princinho/sellerdashboard/middleware"
	"github.com/princinho/sellerdashboard/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := setupLogger("info", "text")

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Infof("Configuration loaded: Port=%s, Database=%s, LogLevel=%s", cfg.Port, cfg.DatabaseName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI, logger)
	if err != nil {
		logger.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		database.Disconnect(disconnectCtx, client, logger)
	}()

	app := &controllers.App{
		Sellers:   database.NewSellerCollection(client.Database(cfg.DatabaseName), cfg.SellersCollection),
		MaxImages: cfg.MaxImages,
		Log:       logger,
	}

	if cfg.StorageEnabled() {
		r2, err := utils.NewCloudClient(ctx, utils.R2Options{
			Bucket:          cfg.Bucket,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			Endpoint:        cfg.Endpoint,
			PublicDomain:    cfg.PublicDomain,
		})
		if err != nil {
			logger.Fatalf("Failed to create image storage client: %v", err)
		}
		app.Images = r2
		app.Validator = utils.NewFileValidator(cfg.AllowedExtensions, cfg.AllowedMimeTypes, cfg.MaxUploadSizeMB)
		logger.Infof("Image uploads enabled, bucket=%s", cfg.Bucket)
	} else {
		logger.Info("Image uploads disabled: R2 storage is not configured")
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins, logger))
	r.Use(gin.Recovery())
	app.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("Server is running on port: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Errorf("Server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Warn("Shutdown signal received...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}

func setupLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
