package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/go-contacts/internal/config"
	"github.com/deppfellow/go-contacts/internal/handler"
	"github.com/deppfellow/go-contacts/internal/logger"
	"github.com/deppfellow/go-contacts/internal/repository"
	"github.com/deppfellow/go-contacts/internal/router"
	"github.com/deppfellow/go-contacts/internal/server"
	"github.com/deppfellow/go-contacts/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService := logger.NewLoggerService(&cfg.Observability)
	log := logger.NewLoggerWithService(&cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, &log, loggerService)
	stop()

	// Flushed before Fatal, which exits without running deferred calls.
	loggerService.Shutdown()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}
}

// run connects to the store, serves HTTP until ctx is cancelled or the
// server fails, then shuts down gracefully. Only start-up failures are
// returned.
func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	srv, err := server.New(connectCtx, cfg, log, loggerService)
	cancel()
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	r := router.NewRouter(srv, handlers)
	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("server exited properly")
	return nil
}
