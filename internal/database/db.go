package database

import (
	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens PostgreSQL through gorm and migrates the slot table.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}

	// Migration: creates the slots table on first start
	if err := db.AutoMigrate(&models.Slot{}); err != nil {
		return nil, errors.Wrap(err, "migrate slots")
	}
	return db, nil
}
