package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes the store connection for the configured driver.
// sqlite is the default; postgres is selected with DATABASE_DRIVER=postgres
// and a DATABASE_URL.
func ConnectDatabase() error {
	cfg := GetConfig()

	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		dialector = sqlite.Open(cfg.DatabasePath)
	}

	// TranslateError maps driver errors onto gorm.ErrDuplicatedKey and
	// gorm.ErrForeignKeyViolated so integrity failures are detectable
	// without matching driver-specific strings.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DatabaseDriver == "sqlite" {
		// sqlite does not enforce foreign keys unless asked
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("failed to enable foreign key enforcement: %w", err)
		}
	}

	DB = db
	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}

// CloseDatabase releases the underlying connection at shutdown
func CloseDatabase() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
