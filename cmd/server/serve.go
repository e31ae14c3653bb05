package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"emoped-plan-backend/docs"
	"emoped-plan-backend/internal/config"
	"emoped-plan-backend/internal/handlers"
	"emoped-plan-backend/internal/logger"
	"emoped-plan-backend/internal/middleware"
	"emoped-plan-backend/internal/seed"
	"emoped-plan-backend/internal/services"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Connects the document and blob stores, seeds the business plan if none is active, and serves the API.`,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info("starting server",
		"environment", cfg.Environment,
		"store", cfg.StoreDriver,
		"blob", cfg.BlobDriver)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	docStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer docStore.Close()

	blobs, err := openBlobStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open blob store: %w", err)
	}

	plans := services.NewPlanService(docStore, log)
	assets := services.NewAssetService(docStore, blobs, cfg.ImageURL, log)

	seedContent, err := seed.BusinessPlan()
	if err != nil {
		return err
	}
	if _, err := plans.EnsureSeeded(ctx, seedContent); err != nil {
		return fmt.Errorf("failed to seed business plan: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, plans, assets, log),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

func newRouter(cfg *config.Config, plans *services.PlanService, assets *services.AssetService, log *slog.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	configureSwagger(cfg.BaseURL)

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(logger.WithComponent(log, "http")))
	router.Use(middleware.CORS(cfg.AllowedOrigins()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	handlers.RegisterRoutes(router.Group("/api"),
		handlers.NewBusinessPlanHandler(plans, log),
		handlers.NewImagesHandler(assets, cfg.MaxUploadBytes, log),
	)

	return router
}

// configureSwagger points the served docs at the public host.
func configureSwagger(baseURL string) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return
	}

	docs.SwaggerInfo.Host = u.Host
	if u.Scheme == "https" {
		docs.SwaggerInfo.Schemes = []string{"https", "http"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http", "https"}
	}
}
