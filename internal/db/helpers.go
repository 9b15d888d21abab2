package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NullIfEmpty helps store optional strings as NULL.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// HasTable reports whether table exists. Lookup errors count as missing.
func HasTable(ctx context.Context, q QueryRower, dialect, table string) bool {
	var name sql.NullString
	var err error
	switch dialect {
	case DialectSQLite:
		err = q.QueryRowContext(ctx, `
			SELECT name
			FROM sqlite_master
			WHERE type = 'table' AND name = ?
			LIMIT 1
		`, table).Scan(&name)
	default:
		err = q.QueryRowContext(ctx, `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = DATABASE()
			  AND table_name = ?
			LIMIT 1
		`, table).Scan(&name)
	}
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

var orientationLogDDL = map[string]string{
	DialectMySQL: `
		CREATE TABLE IF NOT EXISTS orientation_logs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			request_id VARCHAR(64) NULL,
			flight_number VARCHAR(16) NOT NULL,
			baggage_id VARCHAR(64) NOT NULL,
			position VARCHAR(32) NULL,
			urgency VARCHAR(16) NOT NULL,
			trip_type VARCHAR(32) NOT NULL,
			baggage_status VARCHAR(32) NOT NULL,
			time_available INT NOT NULL,
			instructions JSON NOT NULL,
			itinerary JSON NOT NULL,
			alerts JSON NULL,
			weather_impact JSON NULL,
			created_at DATETIME NOT NULL,
			INDEX idx_orientation_logs_flight (flight_number),
			INDEX idx_orientation_logs_baggage (baggage_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	DialectSQLite: `
		CREATE TABLE IF NOT EXISTS orientation_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NULL,
			flight_number TEXT NOT NULL,
			baggage_id TEXT NOT NULL,
			position TEXT NULL,
			urgency TEXT NOT NULL,
			trip_type TEXT NOT NULL,
			baggage_status TEXT NOT NULL,
			time_available INTEGER NOT NULL,
			instructions TEXT NOT NULL,
			itinerary TEXT NOT NULL,
			alerts TEXT NULL,
			weather_impact TEXT NULL,
			created_at DATETIME NOT NULL
		)`,
}

// Migrate creates the orientation_logs table when missing.
func Migrate(ctx context.Context, e Execer, dialect string) error {
	ddl, ok := orientationLogDDL[strings.ToLower(dialect)]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	if _, err := e.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate orientation_logs: %w", err)
	}
	return nil
}
