package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/cardbinder/cardbinder/internal/auth"
	"github.com/cardbinder/cardbinder/internal/config"
	"github.com/cardbinder/cardbinder/internal/server"
	"github.com/cardbinder/cardbinder/internal/stats"
	"github.com/cardbinder/cardbinder/pkg/catalog"
	"github.com/cardbinder/cardbinder/pkg/collection"
	"github.com/cardbinder/cardbinder/pkg/database"
	"github.com/cardbinder/cardbinder/pkg/database/repository"
	"github.com/cardbinder/cardbinder/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
}

func run() error {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		// Continue execution as .env file might not exist in production
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	factory := logging.NewZapLoggerFactory(cfg.LogLevel)
	logger := factory.CreateLogger("main")

	catalogDB, err := database.NewCatalogDB(cfg.CatalogDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to catalog database: %w", err)
	}
	defer closeDB(catalogDB, logger, "catalog")

	usersDB, err := database.NewUsersDB(cfg.UsersDatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to users database: %w", err)
	}
	defer closeDB(usersDB, logger, "users")

	catalogRepo := repository.NewCatalogRepository(catalogDB)
	collectionRepo := repository.NewCollectionRepository(usersDB)
	userRepo := repository.NewUserRepository(usersDB)

	collectionService := collection.NewService(collectionRepo, catalogRepo, factory.CreateServiceLogger("collection"))
	catalogService := catalog.NewService(catalogRepo, collectionService, cfg.PublicBaseURL, factory.CreateServiceLogger("catalog"))

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())

	refresher := stats.NewRefresher(catalogRepo, collectionRepo, factory.CreateLogger("stats"))
	if err := refresher.Start(); err != nil {
		return fmt.Errorf("failed to start stats refresher: %w", err)
	}
	defer refresher.Stop()

	ready := func(ctx context.Context) error {
		if err := pingDB(ctx, catalogDB); err != nil {
			return fmt.Errorf("catalog database: %w", err)
		}
		if err := pingDB(ctx, usersDB); err != nil {
			return fmt.Errorf("users database: %w", err)
		}
		return nil
	}

	srv := server.NewServer(cfg.ListenAddr, catalogService, collectionService, userRepo, tokens, ready, factory)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server stopped", nil)
	return nil
}

func pingDB(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func closeDB(db *gorm.DB, logger logging.Logger, name string) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("failed to close database", map[string]interface{}{
			"database": name,
			"error":    err.Error(),
		})
	}
}
