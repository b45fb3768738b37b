package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fekalegi/property-management-system/config"
	"github.com/fekalegi/property-management-system/db"
	"github.com/fekalegi/property-management-system/internal/booking"
	"github.com/fekalegi/property-management-system/internal/contact"
	"github.com/fekalegi/property-management-system/internal/repository/memory"
	"github.com/fekalegi/property-management-system/internal/repository/mongodb"
	"github.com/fekalegi/property-management-system/internal/repository/postgresql"
	"github.com/fekalegi/property-management-system/internal/tenant"
	"github.com/rs/zerolog"
)

// Stores groups the three resource stores of one backend.
type Stores struct {
	Tenants  tenant.Repository
	Bookings booking.Repository
	Contacts contact.Repository

	close func()
}

// Close releases the backend connection.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStores connects to the configured backend and prepares its schema.
func OpenStores(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, database, err := db.NewMongo(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Stores{
			Tenants:  mongodb.NewTenantRepository(database),
			Bookings: mongodb.NewBookingRepository(database),
			Contacts: mongodb.NewContactRepository(database),
			close: func() {
				dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(dctx); err != nil {
					log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
				}
			},
		}, nil

	case config.DriverPostgres:
		pool, err := db.NewPostgres(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Stores{
			Tenants:  postgresql.NewTenantRepository(pool),
			Bookings: postgresql.NewBookingRepository(pool),
			Contacts: postgresql.NewContactRepository(pool),
			close:    pool.Close,
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("Using in-memory stores; data is lost on restart")
		return &Stores{
			Tenants:  memory.NewTenantRepository(),
			Bookings: memory.NewBookingRepository(),
			Contacts: memory.NewContactRepository(),
		}, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
