// Package db provides a lightweight GORM-based SQLite wrapper for persisting
// the receiver's state: config, latest message and token accounts.
package db

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
)

const (
	// InMemorySQLiteDSN is a special DSN to create an ephemeral in-memory SQLite database.
	InMemorySQLiteDSN = ":memory:"

	// dbDirPermissions sets directory permissions to 750 (rwxr-x---).
	dbDirPermissions = 0o750
)

var (
	// gormConfig disables GORM's own logging; callers log through zerolog.
	gormConfig = &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	// schemaModels lists the structs to be auto-migrated into the database.
	schemaModels = []any{
		&store.ReceiverConfig{},
		&store.LatestMessage{},
		&store.TokenAccount{},
	}
)

// DB wraps a GORM client and provides simplified DB lifecycle management.
type DB struct {
	client *gorm.DB
}

// OpenFileDB opens (or creates) <dir>/<filename>. With migrateSchema the
// receiver tables are created or updated.
func OpenFileDB(dir, filename string, migrateSchema bool) (*DB, error) {
	path, err := prepareFilePath(dir, filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare database path")
	}
	if path == InMemorySQLiteDSN {
		return open(path, migrateSchema)
	}
	return open(path+"?_journal_mode=WAL&_busy_timeout=5000&mode=rwc", migrateSchema)
}

// OpenInMemoryDB opens a non-persistent database, used by tests and dry runs.
func OpenInMemoryDB(migrateSchema bool) (*DB, error) {
	return open(InMemorySQLiteDSN, migrateSchema)
}

func open(dsn string, migrateSchema bool) (*DB, error) {
	client, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := client.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get underlying sql.DB")
	}

	// One connection: writers are serialized and an in-memory database lives
	// as long as the handle.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	d := &DB{client: client}
	if migrateSchema {
		if err := d.Migrate(); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return d, nil
}

// Migrate creates or updates the receiver tables.
func (d *DB) Migrate() error {
	if err := d.client.AutoMigrate(schemaModels...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate database schema")
	}
	return nil
}

// Client returns the GORM handle.
func (d *DB) Client() *gorm.DB {
	return d.client
}

// Close closes the underlying connection. Closing twice is a no-op.
func (d *DB) Close() error {
	sqlDB, err := d.client.DB()
	if err != nil {
		return errors.Wrap(err, "failed to retrieve native sql.DB")
	}
	if err := sqlDB.Close(); err != nil {
		return errors.Wrap(err, "failed to close database connection")
	}
	return nil
}

// prepareFilePath creates dir when missing and returns the database file path.
func prepareFilePath(dir, filename string) (string, error) {
	if dir == InMemorySQLiteDSN {
		return dir, nil
	}
	if err := os.MkdirAll(dir, dbDirPermissions); err != nil {
		return "", errors.Wrapf(err, "failed to create directory: %s", dir)
	}
	return filepath.Join(dir, filename), nil
}
