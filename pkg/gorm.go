package pkg

import (
	"fmt"

	"github.com/VV-Learning/question-bank-service/internal/config"
	"github.com/VV-Learning/question-bank-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	} else {
		logLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate keeps the schema in step with the model set.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Question{},
		&models.QuestionVariant{},
		&models.Option{},
		&models.Topic{},
		&models.WriteAnomaly{},
	)
}
