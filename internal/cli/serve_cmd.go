package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "scaffold-service/docs"
	"scaffold-service/internal/database"
	"scaffold-service/internal/handlers"
	"scaffold-service/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd returns the command that runs the HTTP API.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to initialise logger: %w", err)
	}
	log := logger.Logger
	gin.SetMode(cfg.Server.GinMode)

	if err := database.ConnectDatabase(cfg.Database, log); err != nil {
		return err
	}
	defer database.Close()

	svc := newCodegenService(cfg, database.GetDB())
	router := handlers.NewRouter(handlers.NewCodegenHandler(svc, logger.WithComponent("handlers")), log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed during graceful shutdown")
		return err
	}
	log.Info("Server stopped")
	return nil
}
