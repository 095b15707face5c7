package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"bakeshop/internal/cache"
	"bakeshop/internal/config"
	"bakeshop/internal/database"
	"bakeshop/internal/editor"
	"bakeshop/internal/handlers"
	"bakeshop/internal/live"
	"bakeshop/internal/middleware"
	"bakeshop/internal/render"
	"bakeshop/internal/router"
	"bakeshop/internal/store"
	"bakeshop/internal/themeruntime"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront and admin API server",
		Long: `Run the HTTP server. PostgreSQL and Valkey are optional: without a
database every page renders the built-in theme and the admin API is
disabled; without Valkey the theme list is read from the database on
every request.`,
		RunE: runServe,
	}
	cmd.Flags().String("host", "", "Listen host (overrides APP_HOST)")
	cmd.Flags().String("port", "", "Listen port (overrides APP_PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Host = host
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := openDatabase(ctx, cfg)
	if db != nil {
		defer db.Close()
	}

	var valkeyClient *redis.Client
	if db != nil {
		valkeyClient, err = cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			slog.Warn("valkey unavailable, theme cache disabled", "error", err)
			valkeyClient = nil
		} else {
			defer valkeyClient.Close()
		}
	}

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("initializing template renderer: %w", err)
	}

	hub := live.NewHub()
	adminTokenHash := cfg.AdminTokenHash

	// themes stays a nil interface without a database.
	var themes themeruntime.Store
	var admin *handlers.Admin
	if db != nil {
		themeStore := store.NewThemeStore(db)
		themeCache := cache.NewThemeCache(valkeyClient, themeStore, cfg.ThemeCacheTTL)
		themes = themeCache
		admin = handlers.NewAdmin(editor.New(themeStore, themeCache, hub))
	} else {
		adminTokenHash = ""
		admin = handlers.NewAdmin(nil)
		slog.Warn("admin API disabled: no database")
	}
	if adminTokenHash == "" && db != nil {
		slog.Warn("admin API disabled: ADMIN_TOKEN_HASH is not set")
	}

	public := handlers.NewPublic(themes, renderer, hub)
	limiter := middleware.NewRateLimiter(ctx, 30, time.Minute)
	r := router.New(public, admin, adminTokenHash, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// openDatabase connects, migrates, and in development seeds the database.
// It returns nil when the database cannot be used.
func openDatabase(ctx context.Context, cfg *config.Config) *sql.DB {
	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		slog.Warn("database unavailable, serving the built-in theme", "error", err)
		return nil
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		db.Close()
		return nil
	}

	if cfg.IsDev() {
		if err := database.Seed(ctx, store.NewThemeStore(db)); err != nil {
			slog.Warn("failed to seed database", "error", err)
		}
	}
	return db
}
