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

	"github.com/vedran77/roomchat/internal/config"
	"github.com/vedran77/roomchat/internal/database"
	"github.com/vedran77/roomchat/internal/logger"
	postgresrepo "github.com/vedran77/roomchat/internal/repository/postgres"
	"github.com/vedran77/roomchat/internal/security"
	"github.com/vedran77/roomchat/internal/service"
	httptransport "github.com/vedran77/roomchat/internal/transport/http"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Service: "roomchat",
		Version: version,
		Env:     cfg.Env,
		Backend: logger.Backend(cfg.LogBackend),
		Level:   logger.ParseLevel(cfg.LogLevel),
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("connected to database")

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	log.Info("database schema ready")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)

	// Services
	tokens := security.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo)

	router := httptransport.NewRouter(httptransport.Deps{
		Log:         log,
		Tokens:      tokens,
		Auth:        authService,
		Users:       userService,
		Messages:    messageService,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("API listening", "addr", srv.Addr)
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

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
