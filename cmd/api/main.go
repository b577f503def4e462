package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/redmonkez12/bookmarks-api/docs" // Swagger docs (generated)
	"github.com/redmonkez12/bookmarks-api/internal/auth"
	"github.com/redmonkez12/bookmarks-api/internal/bookmark"
	"github.com/redmonkez12/bookmarks-api/internal/config"
	"github.com/redmonkez12/bookmarks-api/internal/database"
	httpServer "github.com/redmonkez12/bookmarks-api/internal/http"
	"github.com/redmonkez12/bookmarks-api/internal/logging"
	"github.com/redmonkez12/bookmarks-api/internal/user"
)

// @title           Bookmarks API
// @version         1.0
// @description     REST API for user accounts and per-user bookmarks.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	// Initialize database connection and apply migrations
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	userRepo := user.NewRepository(db)
	bookmarkRepo := bookmark.NewRepository(db)

	// Initialize token service
	var tokenService auth.TokenService
	switch cfg.Auth.TokenBackend {
	case config.TokenBackendJWT:
		tokenService, err = auth.NewJWTService(cfg.Auth.JWTSecret)
	default:
		tokenService, err = auth.NewPasetoService(cfg.Auth.PasetoKey)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Initialize services
	hasher := auth.NewArgon2Hasher()
	authService := auth.NewService(userRepo, hasher, tokenService, logger, cfg.Auth.AccessTokenDuration)
	userService := user.NewService(userRepo, hasher)
	bookmarkService := bookmark.NewService(bookmarkRepo)

	// Initialize HTTP handlers and the access guard
	handlers := httpServer.Handlers{
		Auth:     auth.NewHandler(authService),
		User:     user.NewHandler(userService),
		Bookmark: bookmark.NewHandler(bookmarkService),
	}
	guard := auth.NewMiddleware(tokenService, userRepo)

	// Initialize router
	router := httpServer.NewRouter(cfg, handlers, guard, logger)

	// Initialize HTTP server
	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}
