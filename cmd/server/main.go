package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ajharbinger/leaderboard-api/internal/api"
	"github.com/ajharbinger/leaderboard-api/internal/database"
	"github.com/ajharbinger/leaderboard-api/internal/logger"
	"github.com/ajharbinger/leaderboard-api/internal/metrics"
	"github.com/ajharbinger/leaderboard-api/internal/repository"
	"github.com/ajharbinger/leaderboard-api/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.New()
	log := logger.NewSimpleLogger(logger.ParseLevel(cfg.LogLevel))
	if envErr != nil {
		log.Debug("No .env file found")
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal("Failed to run migrations", err)
		}
	}

	m := metrics.New()

	r := api.NewRouter(cfg, log, m)
	api.SetupRoutes(r, db.DB, log, m)

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var opsSrv *http.Server
	if cfg.MetricsAddr != "" {
		opsSrv = newOpsServer(cfg.MetricsAddr, db, repository.NewScoreRepository(db.DB), m)
		go func() {
			log.Info("Ops listener starting", "addr", cfg.MetricsAddr)
			if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Ops listener stopped", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "addr", srv.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", err)
	}
	if opsSrv != nil {
		if err := opsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("Ops listener shutdown failed", err)
		}
	}
	log.Info("Server stopped")
}

// newOpsServer serves /metrics and /healthz away from the public gateway.
func newOpsServer(addr string, db healthChecker, scores scoreCounter, m *metrics.Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", healthzHandler(db, scores))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type healthChecker interface {
	HealthCheckContext(ctx context.Context) error
	GetStats() database.Stats
}

type scoreCounter interface {
	Count(ctx context.Context) (int64, error)
}

type healthResponse struct {
	Status          string `json:"status"`
	Error           string `json:"error,omitempty"`
	Scores          int64  `json:"scores"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
}

// healthzHandler reports database reachability, the stored score count and pool usage.
func healthzHandler(db healthChecker, scores scoreCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		stats := db.GetStats()
		resp := healthResponse{
			Status:          "ok",
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
		}
		status := http.StatusOK

		if err := db.HealthCheckContext(ctx); err != nil {
			resp.Status, resp.Error = "unavailable", "database unavailable"
			status = http.StatusServiceUnavailable
		} else if n, err := scores.Count(ctx); err != nil {
			resp.Status, resp.Error = "unavailable", "score count failed"
			status = http.StatusServiceUnavailable
		} else {
			resp.Scores = n
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
