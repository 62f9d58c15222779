package database

import (
	"context"
	"fmt"

	"github.com/infenixDeveloper/artegallera-backend/internal/config"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Round{},
		&model.Bet{},
		&model.MarriedBet{},
		&model.Transaction{},
		&model.Winner{},
		&model.Message{},
		&model.Promotion{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
