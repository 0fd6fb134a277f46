package migrations

import (
	"fmt"
	"log"

	"moving_ops/internal/models"
	"moving_ops/internal/repository"
	"moving_ops/internal/services"

	"gorm.io/gorm"
)

// Models lists every table the service owns.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&repository.OrderRecord{},
		&repository.TransactionRecord{},
	}
}

// RunMigrations brings the schema up to date and seeds the operator
// account. Existing rows are never dropped.
func RunMigrations(db *gorm.DB, adminUsername, adminPassword string) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userService := services.NewUserService(repository.NewUserRepository(db))
	if err := userService.EnsureUser(adminUsername, adminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}
