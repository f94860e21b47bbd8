package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-api/internal/handlers/httpapi"
	"github.com/KirkDiggler/dungeon-api/internal/orchestrators/layout"
	"github.com/KirkDiggler/dungeon-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/dungeon-api/internal/redis"
	"github.com/KirkDiggler/dungeon-api/internal/repositories/layouts"
)

var (
	httpPort      int
	redisEndpoint string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the dungeon layout HTTP server. Without --redis, layouts are stored in memory and lost on restart.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "", "Redis endpoint for layout storage (host:port)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	repo, err := buildRepository()
	if err != nil {
		return err
	}

	svc, err := layout.NewOrchestrator(&layout.Config{
		Repository:  repo,
		IDGenerator: idgen.NewUUID("lay"),
	})
	if err != nil {
		return fmt.Errorf("failed to create layout orchestrator: %w", err)
	}

	handler, err := httpapi.NewHandler(&httpapi.HandlerConfig{
		LayoutService: svc,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close")
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildRepository() (layouts.Repository, error) {
	if redisEndpoint == "" {
		slog.Info("using in-memory layout storage")
		return layouts.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(redisEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := layouts.NewRedis(&layouts.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis repository: %w", err)
	}

	slog.Info("using redis layout storage", "endpoint", redisEndpoint)
	return repo, nil
}
