package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// ConnectDB opens the audit store (idempotent). It returns nil, nil when no driver is configured.
func ConnectDB(env Env) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB, nil
	}

	driver := strings.ToLower(strings.TrimSpace(env.AuditDBDriver))
	if driver == "" {
		return nil, nil
	}
	if strings.TrimSpace(env.AuditDBDSN) == "" {
		return nil, fmt.Errorf("AUDIT_DB_DSN is empty for driver %s", driver)
	}

	db, err := sql.Open(driver, env.AuditDBDSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	switch driver {
	case "sqlite":
		// single writer
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	DB = db
	log.Printf("[CONFIG] audit store connected driver=%s", driver)
	return DB, nil
}

// PingDB checks the audit store connection.
func PingDB(ctx context.Context) error {
	dbMu.Lock()
	db := DB
	dbMu.Unlock()

	if db == nil {
		return fmt.Errorf("database not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
