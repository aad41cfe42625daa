// cmd/migrate/main.go
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/internal/database"
	"github.com/taskboard/taskboard/internal/repository"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.Driver == "memory" {
		log.Fatal("DB_DRIVER=memory has no schema to migrate")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Running database migrations...")
	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")
}
