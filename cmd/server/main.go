package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/patramworks/patram/internal/config"
	"github.com/patramworks/patram/internal/database"
	"github.com/patramworks/patram/internal/realtime"
	"github.com/patramworks/patram/internal/reminders"
	"github.com/patramworks/patram/internal/repository"
	"github.com/patramworks/patram/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURI == "" {
		log.Fatal("DATABASE_URI is required")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to database")

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database migrations completed")

	clientRepo := repository.NewClientRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	userRepo := repository.NewUserRepository(db)
	prefRepo := repository.NewReminderPrefRepository(db)

	prefs := reminders.NewPrefStore(prefRepo)
	snapshot := reminders.NewSnapshot(clientRepo, orderRepo, prefs, logger)
	if err := snapshot.Load(ctx); err != nil {
		// Reminders serve stale-or-empty data until the next reload succeeds.
		logger.Warn("initial snapshot load failed", zap.Error(err))
	}

	listener := realtime.New(db, snapshot, logger)
	go listener.Start(ctx)

	handlers := server.NewHandlers(clientRepo, orderRepo, productRepo, visitRepo,
		userRepo, prefs, snapshot, logger, cfg.PageSize)
	router := server.NewRouter(handlers, logger)
	srv := server.New(cfg.ListenAddr, router)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
		if err := srv.Stop(context.Background()); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("addr", cfg.ListenAddr))
	if err := srv.Start(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
