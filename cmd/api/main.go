package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/pos-backend/internal/api"
	"github.com/baharkarakas/pos-backend/internal/auth"
	"github.com/baharkarakas/pos-backend/internal/config"
	"github.com/baharkarakas/pos-backend/internal/db"
	"github.com/baharkarakas/pos-backend/internal/jobs"
	"github.com/baharkarakas/pos-backend/internal/logger"
	"github.com/baharkarakas/pos-backend/internal/metrics"
	"github.com/baharkarakas/pos-backend/internal/repository/postgres"
	"github.com/baharkarakas/pos-backend/internal/services"
	"github.com/baharkarakas/pos-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Migrate {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(cfg.OverviewWorkers)
	defer wp.Stop()

	finSvc := services.NewFinancialsService(repos.Transactions, repos.Expenditures, log)
	workerSvc := services.NewWorkerService(repos.Users, repos.Shifts, finSvc, wp)
	catalogSvc := services.NewCatalogService(repos.Products, repos.Services)

	if cfg.AdminEmail != "" {
		created, err := workerSvc.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			log.Error("bootstrap admin", "err", err)
			os.Exit(1)
		}
		if created {
			log.Info("bootstrap admin created", "email", cfg.AdminEmail)
		}
	}

	metrics.Init()

	refresher := jobs.NewBalanceRefresher(workerSvc, log)
	if err := refresher.Start(cfg.BalanceRefreshSchedule); err != nil {
		log.Error("scheduler", "err", err)
		os.Exit(1)
	}
	defer refresher.Stop()

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		Log:        log,
		Tokens:     tm,
		Workers:    workerSvc,
		Financials: finSvc,
		Catalog:    catalogSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	// deferred: refresher, worker pool, db pool
}
