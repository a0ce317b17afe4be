package database

import (
	"journal-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens the backing store. Postgres when DATABASE_URL is set,
// otherwise a local SQLite file.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	opts := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), opts)
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), opts)
}
