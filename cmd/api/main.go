package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glassysee/internal/auth"
	"glassysee/internal/cart"
	"glassysee/internal/catalog"
	"glassysee/internal/config"
	"glassysee/internal/database"
	"glassysee/internal/handler"
	"glassysee/internal/notifier"
	"glassysee/internal/repository"
	"glassysee/internal/router"
	"glassysee/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting glassysee API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Seed the catalogue from S3 or the local seed file when empty
	if cfg.Seed.Enabled {
		fileLoader := catalog.NewFileLoader(logger)
		var seedLoader catalog.Loader = fileLoader

		if cfg.Seed.S3Enabled {
			s3Loader, err := catalog.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 seed loader, falling back to local file system only")
			} else {
				seedLoader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.S3Prefix, true, logger)
			}
		}

		seeder := catalog.NewSeeder(productRepo, seedLoader, logger)
		if err := seeder.Seed(ctx, cfg.Seed.File); err != nil {
			logger.Warn().Err(err).Msg("catalogue seeding failed, continuing with empty catalogue")
		}
	}

	// Initialize the email notifier
	var n notifier.Notifier
	if cfg.Email.APIKey != "" {
		n = notifier.NewResend(cfg.Email.APIKey, cfg.Email.FromAddress, logger)
	} else {
		logger.Warn().Msg("no email API key configured, email delivery disabled")
		n = notifier.NewNoop(logger)
	}

	// Initialize admin authentication
	authenticator := auth.NewStatic(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.PasswordHash, logger)
	tokens := auth.NewTokenIssuer(cfg.Admin.JWTSecret)

	// Initialize the session cart store
	cartStore := cart.NewStore(logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartStore, productRepo, userRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, n, cfg.Email.AdminAddress, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, cartService, logger)
	adminHandler := handler.NewAdminHandler(authenticator, tokens, n, cfg.Email.AdminAddress, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, orderHandler, adminHandler, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
