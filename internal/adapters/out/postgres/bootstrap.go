package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/adapters/out/postgres/orderrepo"

	"github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings holds the connection parameters of the PostgreSQL server.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN builds a key/value connection string for the configured database.
func (s Settings) DSN() string {
	return s.dsnFor(s.DBName)
}

func (s Settings) dsnFor(dbName string) string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	parts := []string{
		"host=" + quoteValue(s.Host),
		"port=" + quoteValue(s.Port),
		"user=" + quoteValue(s.User),
		"password=" + quoteValue(s.Password),
		"dbname=" + quoteValue(dbName),
		"sslmode=" + quoteValue(sslMode),
	}
	return strings.Join(parts, " ")
}

// quoteValue escapes a libpq key/value parameter.
func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// CreateDatabaseIfNotExists connects to the maintenance database and creates
// the configured database when it is missing.
func CreateDatabaseIfNotExists(ctx context.Context, s Settings) error {
	db, err := sql.Open("postgres", s.dsnFor("postgres"))
	if err != nil {
		return fmt.Errorf("open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", s.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", s.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(s.DBName)); err != nil {
		var pqErr *pq.Error
		// another instance may have created it between the check and the create
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("create database %q: %w", s.DBName, err)
	}

	return nil
}

// Open connects GORM to the configured database and migrates the schema.
func Open(ctx context.Context, s Settings) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(s.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %q: %w", s.DBName, err)
	}

	if err = Migrate(db.WithContext(ctx)); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the tables used by the service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
