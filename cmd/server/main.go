// cmd/server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/taskboard/taskboard/internal/api"
	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/internal/database"
	"github.com/taskboard/taskboard/internal/repository"
	"github.com/taskboard/taskboard/internal/service"
	"github.com/taskboard/taskboard/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize the task store
	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize task store: %v", err)
	}
	defer cleanup()

	// Initialize the identity verifier and service
	verifier := buildVerifier(cfg)
	tasks := service.NewTaskService(repo)

	app := api.NewApp(cfg, tasks, verifier)

	// Start server in goroutine
	go func() {
		log.Printf("Taskboard API listening on port %s (store: %s, auth: %s)",
			cfg.Server.Port, cfg.Database.Driver, cfg.Auth.Mode)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server shutdown complete")
}

// buildRepository selects the task store from configuration: a transient
// in-memory map or a SQL table behind sqlx.
func buildRepository(cfg *config.Config) (repository.TaskRepository, func(), error) {
	if cfg.Database.Driver == "memory" {
		log.Println("Using in-memory task store (data resets on restart)")
		return repository.NewMemoryRepository(), func() {}, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// SQLite deployments bootstrap their own schema on start; Postgres
	// deployments normally run cmd/migrate instead and set AUTO_MIGRATE=false.
	if cfg.Database.AutoMigrate {
		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	log.Printf("Connected to %s task store", cfg.Database.Driver)
	return repository.NewSQLRepository(db), func() { db.Close() }, nil
}

func buildVerifier(cfg *config.Config) auth.TokenVerifier {
	if cfg.Auth.Mode == "static" {
		log.Printf("Authentication disabled: all requests run as %q", cfg.Auth.StaticUserID)
		return auth.NewStaticVerifier(cfg.Auth.StaticUserID)
	}
	return auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
}
