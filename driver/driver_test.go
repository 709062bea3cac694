package driver

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/htorianik/gsqlite/pkg/gsqlite"
)

func mustOpen(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(DriverName, ":memory:")
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	// One underlying connection: the engine handle is not safe to share.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		if gsqlite.IsKind(err, gsqlite.KindInterface) {
			t.Skipf("libsqlite3 not available: %v", err)
		}
		t.Fatalf("Ping failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestExecAndQuery(t *testing.T) {
	db := mustOpen(t)

	if _, err := db.Exec("CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}

	res, err := db.Exec("INSERT INTO users (name) VALUES (?)", "George")
	if err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil || id != 1 {
		t.Errorf("LastInsertId = (%d, %v), want (1, nil)", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil || affected != 1 {
		t.Errorf("RowsAffected = (%d, %v), want (1, nil)", affected, err)
	}

	if _, err := db.Exec("INSERT INTO users (name) VALUES (?)", "Solomia"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}

	rows, err := db.Query("SELECT id, name FROM users ORDER BY id")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if len(cols) != 2 || cols[0] != "id" || cols[1] != "name" {
		t.Errorf("Columns = %v", cols)
	}

	var names []string
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err = %v", err)
	}
	if len(names) != 2 || names[0] != "George" || names[1] != "Solomia" {
		t.Errorf("names = %v", names)
	}
}

func TestQueryRowScan(t *testing.T) {
	db := mustOpen(t)

	var answer int64
	if err := db.QueryRow("SELECT 41 + 1").Scan(&answer); err != nil {
		t.Fatalf("QueryRow failed: %v", err)
	}
	if answer != 42 {
		t.Errorf("answer = %d, want 42", answer)
	}

	var missing int64
	err := db.QueryRow("SELECT 1 WHERE 1 = 0").Scan(&missing)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestNullHandling(t *testing.T) {
	db := mustOpen(t)

	var name sql.NullString
	if err := db.QueryRow("SELECT NULL").Scan(&name); err != nil {
		t.Fatalf("QueryRow failed: %v", err)
	}
	if name.Valid {
		t.Errorf("NULL scanned as valid %q", name.String)
	}
}

func TestTransactionRollback(t *testing.T) {
	db := mustOpen(t)

	if _, err := db.Exec("CREATE TABLE t (id)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO t VALUES (1)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	var count int64
	if err := db.QueryRow("SELECT count(*) FROM t").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count after rollback = %d, want 0", count)
	}
}

func TestTransactionCommit(t *testing.T) {
	db := mustOpen(t)

	if _, err := db.Exec("CREATE TABLE t (id)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO t VALUES (1)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	var count int64
	if err := db.QueryRow("SELECT count(*) FROM t").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count after commit = %d, want 1", count)
	}
}

func TestResult(t *testing.T) {
	r := Result{lastInsertID: 1, rowsAffected: 5}

	id, err := r.LastInsertId()
	if err != nil || id != 1 {
		t.Errorf("LastInsertId = (%d, %v), want (1, nil)", id, err)
	}
	ra, err := r.RowsAffected()
	if err != nil || ra != 5 {
		t.Errorf("RowsAffected = (%d, %v), want (5, nil)", ra, err)
	}
}

func TestNamedParametersRejected(t *testing.T) {
	db := mustOpen(t)

	if _, err := db.Exec("SELECT :name", sql.Named("name", 1)); err == nil {
		t.Error("named parameter did not fail")
	}
}
