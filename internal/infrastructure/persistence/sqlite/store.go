package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const stateKey = "app_state"

// stateRecord is the single-row table holding the serialized state.
type stateRecord struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Blob      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the stateRecord model
func (stateRecord) TableName() string {
	return "app_state"
}

// Store persists the state blob in a local SQLite file.
type Store struct {
	db   *gorm.DB
	path string
}

// Open creates or opens the database file and ensures the schema.
func Open(path string) (*Store, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}
	// SQLite allows a single writer; one connection keeps the driver
	// from contending with itself.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&stateRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Load returns the stored blob, or nil when none has been saved yet.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var record stateRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", stateKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return []byte(record.Blob), nil
}

// Save upserts the blob under the fixed key.
func (s *Store) Save(ctx context.Context, blob []byte) error {
	record := stateRecord{
		Key:       stateKey,
		Blob:      datatypes.JSON(blob),
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Ping verifies the database file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
