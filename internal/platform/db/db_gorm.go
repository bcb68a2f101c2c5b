// Package db opens the gorm connection backing the symbol universe.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultConnectTimeout bounds the total time spent retrying the first connect.
	DefaultConnectTimeout = 60 * time.Second
)

// Config holds the connection settings.
type Config struct {
	Driver   string // sqlite | postgres
	Path     string // sqlite file, ":memory:" when empty
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:   os.Getenv("DB_DRIVER"),
		Path:     os.Getenv("DB_PATH"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.Port == "" && cfg.Driver == DriverPostgres {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg
}

// BuildDSN returns the driver-specific connection string.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
	}
	if cfg.Path == "" {
		// Shared cache keeps one in-memory database across pooled connections
		return "file::memory:?cache=shared"
	}
	return cfg.Path
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor returns the Opener of the configured driver.
func OpenerFor(driver string) (Opener, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch driver {
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// ConnectWithRetry calls open with exponential backoff until it succeeds or
// timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	var db *gorm.DB
	operation := func() error {
		var err error
		db, err = open(dsn)
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 3 * time.Second
	b.MaxElapsedTime = timeout

	notify := func(err error, next time.Duration) {
		slog.Warn("DB connect failed, retrying", "retry_in", next, "error", err)
	}
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
	}
	return db, nil
}

// Open connects with the given configuration.
func Open(cfg Config) (*gorm.DB, error) {
	open, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), DefaultConnectTimeout, open)
	if err != nil {
		return nil, err
	}
	slog.Info("DB connection successful", "driver", cfg.Driver)
	return db, nil
}
