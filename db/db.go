package db

import (
	"database/sql"
	"errors"
	"fmt"

	"bankbot-actions/config"
	"bankbot-actions/logger"

	"github.com/lib/pq"
)

// invalidCatalogName is the Postgres error code reported when the
// target database does not exist yet.
const invalidCatalogName = "3D000"

func connStr(dbName string) string {
	cfg := config.AppConfig.Database
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, dbName)
}

// URL returns the connection string in URL form, used by the migration runner.
func URL() string {
	cfg := config.AppConfig.Database
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Connect opens the profile database, creating it first if it does not
// exist. Provisioning is attempted exactly once.
func Connect() (*sql.DB, error) {
	cfg := config.AppConfig.Database

	safeConnStr := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Name)
	logger.Log.WithField("connection", safeConnStr).Info("Attempting to connect to the database")

	database, err := sql.Open("postgres", connStr(cfg.Name))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = database.Ping(); err != nil {
		var pqErr *pq.Error
		if !errors.As(err, &pqErr) || pqErr.Code != invalidCatalogName {
			logger.Log.WithError(err).Error("Failed to ping database")
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		database.Close()
		if err = createDatabase(cfg.Name); err != nil {
			return nil, err
		}

		database, err = sql.Open("postgres", connStr(cfg.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
		if err = database.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database after provisioning: %w", err)
		}
	}

	logger.Log.Info("Database connection established successfully")
	return database, nil
}

// createDatabase provisions the target database through the maintenance
// database of the same server.
func createDatabase(name string) error {
	logger.Log.WithField("database", name).Info("Database missing, provisioning it")

	maintenance, err := sql.Open("postgres", connStr("postgres"))
	if err != nil {
		return fmt.Errorf("failed to open maintenance connection: %w", err)
	}
	defer maintenance.Close()

	if _, err := maintenance.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(name))); err != nil {
		logger.Log.WithError(err).Error("Failed to create database")
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}
	return nil
}
