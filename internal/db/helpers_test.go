package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "modernc.org/sqlite"
)

func TestMigrateSQLite(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	ctx := context.Background()
	if HasTable(ctx, conn, DialectSQLite, "orientation_logs") {
		t.Fatalf("table should not exist before migration")
	}
	if err := Migrate(ctx, conn, DialectSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := Migrate(ctx, conn, DialectSQLite); err != nil {
		t.Fatalf("second migrate should be a no-op: %v", err)
	}
	if !HasTable(ctx, conn, DialectSQLite, "orientation_logs") {
		t.Fatalf("table missing after migration")
	}
}

func TestHasTableMySQL(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("orientation_logs").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("orientation_logs"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("orientation_logs").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	ctx := context.Background()
	if !HasTable(ctx, conn, DialectMySQL, "orientation_logs") {
		t.Fatalf("expected table to exist")
	}
	if HasTable(ctx, conn, DialectMySQL, "orientation_logs") {
		t.Fatalf("expected table to be missing")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMigrateUnknownDialect(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	if err := Migrate(context.Background(), conn, "oracle"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
