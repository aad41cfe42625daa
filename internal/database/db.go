// internal/database/db.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/taskboard/taskboard/internal/config"
)

func init() {
	// modernc registers itself under "sqlite"; sqlx only knows the cgo
	// driver's name out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the configured SQL database and verifies the connection
// with a bounded ping.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var driver, dsn string
	switch cfg.Driver {
	case "postgres":
		driver = "postgres"
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
		)
	case "sqlite":
		driver = "sqlite"
		dsn = cfg.SQLitePath
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	if driver == "sqlite" {
		// A single connection serializes writers and keeps :memory:
		// databases on one handle.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
