package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nhalm/pgxkit"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yourorg/products-api/internal/database"
)

// DBIntegrationSuite is a testify suite that runs against a migrated
// PostgreSQL container.
type DBIntegrationSuite struct {
	suite.Suite
	DB               *pgxkit.DB
	ConnectionString string
	pgContainer      *postgres.PostgresContainer
}

// SetupSuite starts the container and applies migrations before any test runs.
func (s *DBIntegrationSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping database integration tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(s.T())

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpassword"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err, "could not start postgres container")
	s.pgContainer = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err, "could not get connection string")
	s.ConnectionString = connStr

	s.Require().NoError(database.Migrate(connStr, database.Up), "could not migrate test database")

	db := pgxkit.NewDB()
	s.Require().NoError(db.Connect(ctx, connStr), "could not connect to test database")
	s.DB = db
}

// TearDownSuite closes the pool and removes the container.
func (s *DBIntegrationSuite) TearDownSuite() {
	ctx := context.Background()
	if s.DB != nil {
		_ = s.DB.Shutdown(ctx)
	}
	if s.pgContainer != nil {
		s.NoError(s.pgContainer.Terminate(ctx), "failed to terminate postgres container")
	}
}

// TruncateTables cleans the database state between tests.
func (s *DBIntegrationSuite) TruncateTables(tables ...string) {
	for _, table := range tables {
		_, err := s.DB.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", table))
		s.Require().NoError(err, "failed to truncate table %s", table)
	}
}
