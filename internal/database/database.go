package database

import (
	"fmt"
	"net/url"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskops/taskstore/internal/config"
	"github.com/taskops/taskstore/internal/models"
)

// Connect opens the backend selected by the configured database URL and
// returns the handle. Callers own the handle and release it with Close.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.Database.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the users and tasks tables if absent. Additive only.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks whether the database is reachable.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func openDialector(rawURL string) (gorm.Dialector, error) {
	scheme, dsn, err := parseDatabaseURL(rawURL)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database scheme %q", scheme)
}

// parseDatabaseURL splits a connection URL into a normalized scheme and the
// driver-level DSN. Some hosting platforms hand out postgresql:// URLs, so
// both postgres spellings are accepted.
func parseDatabaseURL(rawURL string) (scheme, dsn string, err error) {
	switch {
	case strings.HasPrefix(rawURL, "sqlite://"):
		path := strings.TrimPrefix(rawURL, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite URL %q has no path", rawURL)
		}
		return "sqlite", path, nil

	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return "postgres", rawURL, nil

	case strings.HasPrefix(rawURL, "mysql://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", "", fmt.Errorf("invalid mysql URL: %w", err)
		}
		password, _ := u.User.Password()
		dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			u.User.Username(),
			password,
			u.Host,
			strings.TrimPrefix(u.Path, "/"),
		)
		return "mysql", dsn, nil
	}

	return "", "", fmt.Errorf("unsupported database URL %q", rawURL)
}
