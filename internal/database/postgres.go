package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/corebank/backend/internal/config"
	_ "github.com/lib/pq"
)

// ConnString builds the lib/pq connection string for cfg.
func ConnString(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}

// InitDB opens the connection pool and verifies it with a ping.
func InitDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Println("[DB] Database connection established")
	return db, nil
}

// InitDatabase connects and, when enabled, applies pending migrations.
// Any failure is fatal.
func InitDatabase(ctx context.Context, cfg config.DatabaseConfig) *sql.DB {
	db, err := InitDB(ctx, cfg)
	if err != nil {
		log.Fatalf("[DB] Failed to initialize database: %v", err)
	}

	if cfg.Migrate {
		if err := Migrate(ctx, db); err != nil {
			log.Fatalf("[DB] Failed to apply migrations: %v", err)
		}
	}
	return db
}
