// Package driver registers gsqlite as a Go database/sql driver under the
// name "gsqlite".
//
// To use gsqlite through the standard database/sql interface, import this
// package for its side effects and open a connection with sql.Open:
//
//	import _ "github.com/htorianik/gsqlite/driver"
//
//	db, err := sql.Open("gsqlite", ":memory:")
//
// The underlying connection is not safe for concurrent use, so callers
// should cap the pool with db.SetMaxOpenConns as appropriate.
package driver

import (
	"database/sql"
	gosqldriver "database/sql/driver"

	"github.com/htorianik/gsqlite/pkg/gsqlite"
)

// DriverName is the name used to register the gsqlite driver with
// database/sql.
const DriverName = "gsqlite"

func init() {
	sql.Register(DriverName, &Driver{})
}

// Driver implements database/sql/driver.Driver.
type Driver struct{}

// Open opens a new database connection. The name parameter is the path to
// the database file, or ":memory:" for an in-memory database.
//
// gsqlite connections start inside an implicit transaction; database/sql
// callers expect autocommit outside an explicit Tx, so the implicit
// transaction is committed here and transactions are delimited by Begin.
func (d *Driver) Open(name string) (gosqldriver.Conn, error) {
	conn, err := gsqlite.Connect(name)
	if err != nil {
		return nil, err
	}
	cursor, err := conn.Cursor()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := conn.Commit(); err != nil {
		conn.Close()
		return nil, err
	}
	return &Conn{conn: conn, cursor: cursor}, nil
}

// Ensure Driver implements driver.Driver.
var _ gosqldriver.Driver = &Driver{}
