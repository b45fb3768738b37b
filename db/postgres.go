package db

import (
	"context"
	"fmt"
	"time"

	"github.com/fekalegi/property-management-system/config"
	"github.com/fekalegi/property-management-system/pkg/retry"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPostgres opens a pool and pings it, retrying under cfg.ConnectAttempts.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid DB config: %w", err)
	}

	var pool *pgxpool.Pool
	err = retry.Do(ctx, policy(cfg), log, "postgres", func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, connectTimeout(cfg))
		defer cancel()

		p, err := pgxpool.NewWithConfig(attemptCtx, poolCfg)
		if err != nil {
			return err
		}
		if err := p.Ping(attemptCtx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Msg("Connected to PostgreSQL")
	return pool, nil
}

func policy(cfg config.DatabaseConfig) retry.Policy {
	p := retry.DefaultPolicy()
	if cfg.ConnectAttempts > 0 {
		p.Attempts = cfg.ConnectAttempts
	}
	return p
}

func connectTimeout(cfg config.DatabaseConfig) time.Duration {
	if cfg.ConnectTimeout > 0 {
		return cfg.ConnectTimeout
	}
	return 5 * time.Second
}
