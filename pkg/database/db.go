package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"-"`
	KeyPreview string     `json:"key_preview"`
	Name       string     `gorm:"not null" json:"name"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KeyID        uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalFlights int    `gorm:"default:0" json:"total_flights"`
	TotalPeople  int    `gorm:"default:0" json:"total_people"`
	TotalPlaced  int    `gorm:"default:0" json:"total_placed"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SquadronCallsign represents one recognized call-sign of one squadron
type SquadronCallsign struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SquadronID string    `gorm:"uniqueIndex:idx_squadron_callsign;not null" json:"squadron_id"`
	Callsign   string    `gorm:"uniqueIndex:idx_squadron_callsign;not null" json:"callsign"`
	CreatedAt  time.Time `json:"created_at"`
}

// Options selects the backing database. A non-empty DatabaseURL selects
// Postgres; otherwise DataPath is opened as SQLite.
type Options struct {
	DatabaseURL string
	DataPath    string
}

// Open connects to the database and migrates the schema
func Open(opts Options) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	if opts.DatabaseURL != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  opts.DatabaseURL,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		path := opts.DataPath
		if path == "" {
			path = "flight_assigner.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil && path == ":memory:" {
			// every pooled connection would get its own empty database
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.SetMaxOpenConns(1)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}, &SquadronCallsign{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
