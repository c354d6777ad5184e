package config

import (
	"context"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Adisheth/car-rental-website/migrations"
)

// ConnectDatabase opens the SQLite database at path, switches it to WAL
// journaling and applies all pending migrations. Write serialization is
// left to the engine's WAL ordering; the application layer takes no locks
// of its own.
func ConnectDatabase(ctx context.Context, path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, ".")
}
