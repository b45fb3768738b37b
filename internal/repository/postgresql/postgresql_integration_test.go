//go:build integration

package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fekalegi/property-management-system/config"
	"github.com/fekalegi/property-management-system/db"
	"github.com/fekalegi/property-management-system/internal/repository/postgresql"
	"github.com/fekalegi/property-management-system/internal/repository/repotest"
	"github.com/fekalegi/property-management-system/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PostgresRepositorySuite struct {
	suite.Suite
	dbPool *pgxpool.Pool
}

func (s *PostgresRepositorySuite) SetupSuite() {
	log := logger.New()
	pool, err := dockertest.NewPool("")
	require.NoError(s.T(), err, "Could not construct docker pool")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres", Tag: "16",
		Env: []string{"POSTGRES_USER=testuser", "POSTGRES_PASSWORD=testpassword", "POSTGRES_DB=testdb"},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(s.T(), err, "Could not start PostgreSQL resource")

	s.T().Cleanup(func() {
		require.NoError(s.T(), pool.Purge(resource))
	})

	cfg := config.DatabaseConfig{
		Driver: config.DriverPostgres,
		URL: fmt.Sprintf("postgres://testuser:testpassword@%s/testdb?sslmode=disable",
			resource.GetHostPort("5432/tcp")),
		ConnectAttempts: 15,
		ConnectTimeout:  5 * time.Second,
	}
	s.dbPool, err = db.NewPostgres(context.Background(), cfg, log)
	require.NoError(s.T(), err, "Could not connect to PostgreSQL")

	require.NoError(s.T(), db.RunMigrations(context.Background(), s.dbPool), "Could not run migrations")
	// Running twice must be harmless.
	require.NoError(s.T(), db.RunMigrations(context.Background(), s.dbPool))
}

func (s *PostgresRepositorySuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}

func (s *PostgresRepositorySuite) truncate(table string) {
	_, err := s.dbPool.Exec(context.Background(), "TRUNCATE "+table)
	require.NoError(s.T(), err)
}

func (s *PostgresRepositorySuite) TestTenantRepository() {
	s.truncate("tenants")
	repo := postgresql.NewTenantRepository(s.dbPool)
	repotest.TenantRepository(s.T(), repo, uuid.NewString(), "not-a-uuid")
}

func (s *PostgresRepositorySuite) TestBookingRepository() {
	s.truncate("bookings")
	repotest.BookingRepository(s.T(), postgresql.NewBookingRepository(s.dbPool))
}

func (s *PostgresRepositorySuite) TestContactRepository() {
	s.truncate("contacts")
	repotest.ContactRepository(s.T(), postgresql.NewContactRepository(s.dbPool))
}

func (s *PostgresRepositorySuite) TestStatusConstraint() {
	_, err := s.dbPool.Exec(context.Background(),
		"INSERT INTO tenants (id, status) VALUES ($1, 'Evicted')", uuid.NewString())
	require.Error(s.T(), err)
}

func (s *PostgresRepositorySuite) TestListErrorsAreWrapped() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := postgresql.NewBookingRepository(s.dbPool).List(ctx)
	s.ErrorContains(err, "could not list bookings")

	_, err = postgresql.NewContactRepository(s.dbPool).List(ctx)
	s.ErrorContains(err, "could not list contacts")
}

func TestPostgresRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositorySuite))
}
