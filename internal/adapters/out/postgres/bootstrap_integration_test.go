package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "restaurant/internal/adapters/out/postgres"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type BootstrapIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	settings  postgres_adapter.Settings
}

func (suite *BootstrapIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	suite.Require().NoError(err)

	suite.settings = postgres_adapter.Settings{
		Host:     host,
		Port:     port.Port(),
		User:     "testuser",
		Password: "testpass",
		DBName:   "restaurant_bootstrap",
		SSLMode:  "disable",
	}
}

func (suite *BootstrapIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BootstrapIntegrationTestSuite) TestCreateDatabaseIfNotExists_IsIdempotent() {
	ctx := context.Background()

	suite.Require().NoError(postgres_adapter.CreateDatabaseIfNotExists(ctx, suite.settings))
	suite.Require().NoError(postgres_adapter.CreateDatabaseIfNotExists(ctx, suite.settings))
}

func (suite *BootstrapIntegrationTestSuite) TestOpen_MigratesOrdersTable() {
	ctx := context.Background()
	suite.Require().NoError(postgres_adapter.CreateDatabaseIfNotExists(ctx, suite.settings))

	db, err := postgres_adapter.Open(ctx, suite.settings)
	suite.Require().NoError(err)

	suite.True(db.Migrator().HasTable("orders"))
	for _, column := range []string{"id", "table_number", "items", "total_price", "status", "created_at", "updated_at"} {
		suite.True(db.Migrator().HasColumn("orders", column), "missing column %s", column)
	}

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *BootstrapIntegrationTestSuite) TestOpen_UnknownDatabase_ReturnsError() {
	settings := suite.settings
	settings.DBName = "does_not_exist"

	_, err := postgres_adapter.Open(context.Background(), settings)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "does_not_exist")
}

func TestBootstrapIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BootstrapIntegrationTestSuite))
}
