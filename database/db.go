package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coolduebtn/stock-rating-checker/models"
)

// Config holds database settings.
type Config struct {
	Path        string
	AutoMigrate bool
}

// InitDB opens the scraper's sqlite database. Tables are expected to exist
// unless AutoMigrate is set.
func InitDB(cfg Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Path, err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Path).Msg("Database migrated")
	}

	log.Info().Str("path", cfg.Path).Msg("Database connected successfully")
	return db, nil
}

// Migrate creates or updates the rating tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.PlatformRecord{}, &models.PriceRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
