package driver

import (
	"context"
	"database/sql/driver"

	"github.com/htorianik/gsqlite/pkg/gsqlite"
)

// Conn implements driver.Conn, driver.ConnBeginTx, driver.ExecerContext,
// and driver.QueryerContext over one gsqlite connection. All statements run
// through a single shared cursor: the engine allows one live compiled
// statement per cursor, which matches database/sql's sequential use of a
// connection.
type Conn struct {
	conn   *gsqlite.Connection
	cursor *gsqlite.Cursor
}

// Prepare returns a prepared statement.
func (c *Conn) Prepare(query string) (driver.Stmt, error) {
	return &Stmt{query: query, conn: c}, nil
}

// Close closes the underlying database connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Begin starts a transaction. The connection runs in autocommit mode
// between transactions, so an explicit BEGIN is issued here and the
// returned Tx ends it with COMMIT or ROLLBACK.
func (c *Conn) Begin() (driver.Tx, error) {
	if c.conn.Closed() {
		return nil, driver.ErrBadConn
	}
	if err := c.exec("BEGIN"); err != nil {
		return nil, err
	}
	return &Tx{conn: c}, nil
}

// BeginTx starts a transaction with context and options. Isolation options
// are not supported; the engine runs serializable by nature.
func (c *Conn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.Begin()
}

// ExecContext executes a non-query statement. The context is checked up
// front only: a native step blocks until the engine returns and cannot be
// interrupted, and abandoning an in-flight call on the shared handle would
// corrupt it.
func (c *Conn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params, err := fromNamedValues(args)
	if err != nil {
		return nil, err
	}
	if err := c.cursor.Execute(query, params...); err != nil {
		return nil, err
	}
	return c.result()
}

// QueryContext executes a query statement. See ExecContext for the context
// policy.
func (c *Conn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params, err := fromNamedValues(args)
	if err != nil {
		return nil, err
	}
	if err := c.cursor.Execute(query, params...); err != nil {
		return nil, err
	}
	return &Rows{cursor: c.cursor}, nil
}

func (c *Conn) result() (driver.Result, error) {
	changes, err := c.conn.Changes()
	if err != nil {
		return nil, err
	}
	lastID, _ := c.cursor.LastInsertRowID()
	return Result{lastInsertID: lastID, rowsAffected: changes}, nil
}

// exec runs one statement discarding any result, for transaction control.
func (c *Conn) exec(query string) error {
	return c.cursor.Execute(query)
}

// Ensure Conn implements required interfaces.
var _ driver.Conn = &Conn{}
var _ driver.ConnBeginTx = &Conn{}
var _ driver.ExecerContext = &Conn{}
var _ driver.QueryerContext = &Conn{}
