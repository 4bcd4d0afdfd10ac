package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/selimyuksel/task-manager-backend/internal/api"
	"github.com/selimyuksel/task-manager-backend/internal/auth"
	"github.com/selimyuksel/task-manager-backend/internal/config"
	"github.com/selimyuksel/task-manager-backend/internal/db"
	"github.com/selimyuksel/task-manager-backend/internal/logger"
	"github.com/selimyuksel/task-manager-backend/internal/mailer"
	"github.com/selimyuksel/task-manager-backend/internal/metrics"
	"github.com/selimyuksel/task-manager-backend/internal/middleware"
	"github.com/selimyuksel/task-manager-backend/internal/reminder"
	"github.com/selimyuksel/task-manager-backend/internal/repository/postgres"
	"github.com/selimyuksel/task-manager-backend/internal/services"
	"github.com/selimyuksel/task-manager-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := services.NewUserService(repos.Users, tm)
	taskSvc := services.NewTaskService(repos.Tasks)
	guard := middleware.NewAuthMiddleware(tm, repos.Users)

	loc, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		log.Warn("unknown reminder timezone, using UTC", "tz", cfg.ReminderTimezone)
		loc = time.UTC
	}
	sched := reminder.New(repos.Tasks, repos.Users, mailer.NewSMTP(cfg), wp, cfg.ReminderInterval, loc)
	go sched.Run(ctx)

	metrics.Init()
	r := api.NewRouter(cfg, userSvc, taskSvc, guard)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
