package db

import (
	"errors"
	"fmt"

	"amusicbible-backend/config"
	"amusicbible-backend/models"
	"amusicbible-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg config.Database) error {
	if cfg.URL == "" {
		return errors.New("DB_URL is not set")
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.URL)
	case "sqlite":
		dialector = sqlite.Open(cfg.URL)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         utils.GetGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	err = conn.AutoMigrate(
		&models.User{},
		&models.Membership{},
		&models.Order{},
		&models.Contact{},
		&models.Category{},
		&models.Blog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	DB = conn
	utils.LogSuccess("Database connection successful")
	return nil
}
