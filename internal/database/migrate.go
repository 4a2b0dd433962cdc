package database

import (
	"favliz/internal/models"
	"favliz/pkg/logger"
)

// Migrate runs schema migration for all models.
func Migrate() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	err := DB.AutoMigrate(
		&models.Admin{},
		&models.Permission{},
		&models.Role{},
		&models.RolePermission{},
		&models.AdminRole{},
		&models.User{},
		&models.List{},
		&models.Item{},
		&models.Tag{},
	)

	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")

	return nil
}
