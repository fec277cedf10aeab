package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/nhalm/pgxkit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourorg/products-api/internal/api"
	"github.com/yourorg/products-api/internal/config"
	"github.com/yourorg/products-api/internal/database"
	"github.com/yourorg/products-api/internal/repository"
	"github.com/yourorg/products-api/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 4000, "Port to run the server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind the server to")
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("HOST", serveCmd.Flags().Lookup("host"))
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	canonlog.SetupGlobalLogger(cfg.LogLevel, cfg.LogFormat)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	ctx := context.Background()
	db := pgxkit.NewDB()
	if connectDB(ctx, db, cfg.DatabaseURL) {
		defer func() { _ = db.Shutdown(ctx) }()
	}

	// Repositories
	productRepo := repository.NewProductRepository(db)

	// Services
	productSvc := service.NewProductService(productRepo)

	// Handler
	handler := api.NewHandler(productSvc)

	routeConfig := api.RouteConfig{
		MaxBodyBytes:  cfg.MaxBodyBytes,
		AllowedOrigin: api.ParseAllowedOrigin(cfg.FrontendURL),
	}

	srv := &http.Server{
		Addr:           addr,
		Handler:        handler.RoutesWithConfig(routeConfig),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	go func() {
		slog.Info("Server starting", "addr", addr, "frontend_url", routeConfig.AllowedOrigin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

// connectDB opens the pool and brings the schema up to date. A failure is
// logged and the server still starts; requests then fail in the repository.
// It reports whether the pool was opened.
func connectDB(ctx context.Context, db *pgxkit.DB, databaseURL string) bool {
	if err := db.Connect(ctx, databaseURL); err != nil {
		slog.Error("DB connection error", "error", err)
		return false
	}

	if err := database.Migrate(databaseURL, database.Up); err != nil {
		slog.Error("DB connection error", "error", fmt.Errorf("sync schema: %w", err))
		return true
	}

	slog.Info("Database connection established")
	return true
}
