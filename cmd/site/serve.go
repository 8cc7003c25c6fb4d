package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "github.com/Pings-Lab/pings-lab.github.io/docs" // Important for Swagger
	v1 "github.com/Pings-Lab/pings-lab.github.io/internal/delivery/http/v1"
	"github.com/Pings-Lab/pings-lab.github.io/internal/usecase"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/formpost"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/redis"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/security"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/validation"
)

const sessionSweepInterval = time.Minute

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	// 1. Load Config
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting Ping's Lab site", "port", cfg.Port, "mode", cfg.GinMode)

	env := "development"
	if cfg.IsProduction() {
		env = "production"
	}
	securityLog := security.InitSecurityLogger("pingslab-site", env)
	defer func() { _ = securityLog.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Setup Redis (optional, rate limiting falls back to memory)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 3. Setup UseCases
	gateway := formpost.NewClient(cfg.FormTimeout)
	sessions := usecase.NewSessionStore(gateway, cfg.FormEndpoint, validation.New(), cfg.SessionTTL)
	go sessions.Run(ctx, sessionSweepInterval)

	// 4. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Sessions: sessions,
		HealthUC: usecase.NewHealthUsecase(cfg.FormEndpoint, sessions),
		Config:   cfg,
	})

	// 5. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		logger.Log.Error("Listen failed", "error", err)
		return err
	case <-ctx.Done():
	}

	// Graceful Shutdown
	logger.Log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
