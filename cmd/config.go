package cmd

import "restaurant/internal/adapters/out/postgres"

// Config holds the application settings read from the environment at startup.
// An empty RabbitMQURL disables event publishing and an empty
// RevenueReportCron disables the revenue report job.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	RabbitMQURL       string
	RabbitMQExchange  string
	RevenueReportCron string
	LogLevel          string
}

// DBSettings returns the PostgreSQL connection parameters.
func (c Config) DBSettings() postgres.Settings {
	return postgres.Settings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}
