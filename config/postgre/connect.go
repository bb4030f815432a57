package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"pharma-search-srv/config"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultConnectTimeout = 5 * time.Second
	// Search reads are short; a small pool with quick recycling keeps the corpus replica happy.
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 50
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnMaxIdleTime = 5 * time.Minute
)

// requiredTables must exist in the configured schema before the service starts.
var requiredTables = []string{"articles", "search_queries"}

var (
	mu       sync.Mutex
	instance *sql.DB
)

// Connect returns the process-wide pool, opening it on first use.
// A failed attempt leaves nothing cached, so the next call retries.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	db, err := sql.Open("postgres", buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	if err := checkSchema(connectCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	instance = db
	return instance, nil
}

// Disconnect closes the pool and forgets it.
func Disconnect(ctx context.Context, db *sql.DB) error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	if db == instance {
		instance = nil
	}
	return nil
}

func checkSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range requiredTables {
		var found sql.NullString
		if err := db.QueryRowContext(ctx, `SELECT to_regclass($1)::text`, table).Scan(&found); err != nil {
			return fmt.Errorf("failed to look up table %s: %w", table, err)
		}
		if !found.Valid {
			return fmt.Errorf("table %s is missing: apply migrations/001_init.sql", table)
		}
	}
	return nil
}

// buildDSN builds the lib/pq connection string, pinning search_path to the configured schema.
func buildDSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	searchPath := cfg.Schema
	if searchPath == "" {
		searchPath = "public"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode, searchPath)
}
