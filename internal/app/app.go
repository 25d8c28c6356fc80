package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ncastrod/taskcash/internal/config"
	"github.com/ncastrod/taskcash/internal/database"
	"github.com/ncastrod/taskcash/internal/handlers"
	"github.com/ncastrod/taskcash/internal/logger"
	"github.com/ncastrod/taskcash/internal/notifier"
	"github.com/ncastrod/taskcash/internal/repository"
	"github.com/ncastrod/taskcash/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server     *http.Server
	db         *sql.DB
	dispatcher *notifier.Dispatcher
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	balanceRepo := repository.NewBalanceRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	referralService := service.NewReferralService(userRepo, referralRepo)
	userService := service.NewUserService(userRepo, referralRepo)
	taskService := service.NewTaskService(taskRepo, referralService)
	balanceService := service.NewBalanceService(balanceRepo)

	handler := handlers.NewHandler(userService, taskService, balanceService, referralService, cfg.SecretKey)
	r := handlers.NewRouter(handler, cfg.SecretKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	dispatcher := notifier.NewDispatcher(notificationRepo, notifier.LogSender{}, cfg.NotifyInterval)

	return &App{
		server:     server,
		db:         db,
		dispatcher: dispatcher,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.dispatcher.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
