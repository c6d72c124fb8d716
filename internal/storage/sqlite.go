package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// record is a single key-value pair in the backing database.
type record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SQLite is a KV store backed by a single-table SQLite database.
type SQLite struct {
	db *gorm.DB
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(record{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return &SQLite{db: db}, nil
}

// Get returns the value stored for key.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var r record

	err := s.db.WithContext(ctx).First(&r, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}

	return r.Value, true, nil
}

// Set writes the value for key, replacing any previous value.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).Save(&record{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}

	return nil
}

// Remove deletes the key.
func (s *SQLite) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&record{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("removing key %q: %w", key, err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}
