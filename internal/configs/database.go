package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "ticket-desk.com/ticket-desk/internal/models"
)

// NewDatabaseClient opens the resolved backend and creates the Tickets and
// Users tables if they are absent.
func NewDatabaseClient(database Database) *gorm.DB {
	var dialector gorm.Dialector
	switch database.Backend {
	case BackendPostgres:
		dialector = postgres.Open(database.DSN)
	default:
		dialector = sqlite.Open(database.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Ticket{}, &model.User{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
