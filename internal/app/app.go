package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekalegi/property-management-system/config"
	"github.com/fekalegi/property-management-system/internal/booking"
	"github.com/fekalegi/property-management-system/internal/contact"
	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/fekalegi/property-management-system/internal/rabbitmq"
	"github.com/fekalegi/property-management-system/internal/server"
	"github.com/fekalegi/property-management-system/internal/tenant"
	"github.com/fekalegi/property-management-system/pkg/logger"
	"github.com/fekalegi/property-management-system/pkg/retry"
	"github.com/rs/zerolog"
)

// Run wires the application and serves HTTP until ctx is cancelled or a
// termination signal arrives. Startup failures are returned to the caller.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.NewWithLevel(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores
	stores, err := OpenStores(ctx, cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to open database")
		return err
	}
	defer stores.Close()

	// Events
	publisher, closePublisher, err := openPublisher(ctx, cfg.RabbitMQ, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to RabbitMQ")
		return err
	}
	defer closePublisher()

	// HTTP Server
	srv := server.NewServer(cfg, NewServices(stores, publisher, log), log)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			log.Error().Err(err).Msg("HTTP server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutdown signal received. Starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP server shutdown error")
	}
	log.Info().Msg("HTTP server stopped")
	return nil
}

// NewServices builds the resource services over stores.
func NewServices(stores *Stores, publisher domain.EventPublisher, log zerolog.Logger) server.Services {
	return server.Services{
		Tenants:  tenant.NewService(stores.Tenants, publisher, log),
		Bookings: booking.NewService(stores.Bookings, publisher, log),
		Contacts: contact.NewService(stores.Contacts, publisher, log),
	}
}

func openPublisher(ctx context.Context, cfg config.RabbitMQConfig, log zerolog.Logger) (domain.EventPublisher, func(), error) {
	if cfg.URL == "" {
		log.Info().Msg("RabbitMQ not configured; domain events are discarded")
		return domain.NopPublisher{}, func() {}, nil
	}

	rmq, err := rabbitmq.NewConnection(ctx, cfg.URL, retry.DefaultPolicy(), log)
	if err != nil {
		return nil, nil, err
	}
	publisher, err := rabbitmq.NewPublisher(rmq, cfg.Queue, log)
	if err != nil {
		rmq.Close()
		return nil, nil, err
	}
	return publisher, rmq.Close, nil
}

// Migrate prepares the configured backend's schema and exits.
func Migrate(ctx context.Context, cfg *config.Config) error {
	log := logger.NewWithLevel(cfg.Log.Level, cfg.Log.Pretty)

	stores, err := OpenStores(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	stores.Close()

	log.Info().Str("driver", cfg.Database.Driver).Msg("Migrations applied")
	return nil
}
