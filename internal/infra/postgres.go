package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"elope/internal/config"
	"elope/internal/models/db_models"
)

// InitPostgresql opens the connection pool and migrates the schema. The
// handle is returned to the DI container; nothing here is a package-level
// singleton.
func InitPostgresql(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		logger.Error("connecting to database failed", zap.Error(err))
		return nil, err
	}

	if err := db.AutoMigrate(&db_models.Account{}, &db_models.TripPlan{}); err != nil {
		logger.Error("schema migration failed", zap.Error(err))
		return nil, err
	}

	return db, nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance failed", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection failed", zap.Error(err))
	} else {
		logger.Info("postgres connection closed")
	}
}
