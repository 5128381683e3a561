package database

import (
	"fmt"
	"time"

	"ib-compliance/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", driver)
}

// Open connects with retries (the database container may still be starting)
// and migrates the schema.
func Open(driver, dsn string, log *zap.Logger) (*gorm.DB, error) {
	dial, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := 1; i <= maxAttempts; i++ {
		log.Info("trying to connect to DB",
			zap.String("driver", driver),
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxAttempts),
		)

		db, err = gorm.Open(dial, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			log.Info("connected to DB successfully")
			break
		}

		log.Warn("failed to connect to DB", zap.Error(err))
		if i < maxAttempts {
			time.Sleep(retryBackoff)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to db after %d attempts: %w", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the controls and risks tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Control{},
		&models.Risk{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
