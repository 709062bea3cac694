package driver

import (
	"context"
	"database/sql/driver"
)

// Stmt implements driver.Stmt, driver.StmtExecContext, and
// driver.StmtQueryContext. The statement holds only the query text; the
// actual prepare happens at execution time on the connection's cursor,
// which finalizes its previous compiled statement first.
type Stmt struct {
	query  string
	conn   *Conn
	closed bool
}

// Close closes the prepared statement.
func (s *Stmt) Close() error {
	if s.closed {
		return driver.ErrBadConn
	}
	s.closed = true
	return nil
}

// NumInput returns -1 so the database/sql package validates args
// dynamically.
func (s *Stmt) NumInput() int {
	return -1
}

// Exec executes a non-query statement.
func (s *Stmt) Exec(args []driver.Value) (driver.Result, error) {
	if s.closed {
		return nil, driver.ErrBadConn
	}
	params, err := fromValues(args)
	if err != nil {
		return nil, err
	}
	if err := s.conn.cursor.Execute(s.query, params...); err != nil {
		return nil, err
	}
	return s.conn.result()
}

// Query executes a query statement.
func (s *Stmt) Query(args []driver.Value) (driver.Rows, error) {
	if s.closed {
		return nil, driver.ErrBadConn
	}
	params, err := fromValues(args)
	if err != nil {
		return nil, err
	}
	if err := s.conn.cursor.Execute(s.query, params...); err != nil {
		return nil, err
	}
	return &Rows{cursor: s.conn.cursor}, nil
}

// ExecContext executes a non-query statement. The context is checked up
// front; a running native call cannot be interrupted.
func (s *Stmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values := make([]driver.Value, len(args))
	for i, a := range args {
		values[i] = a.Value
	}
	return s.Exec(values)
}

// QueryContext executes a query statement. See ExecContext for the context
// policy.
func (s *Stmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values := make([]driver.Value, len(args))
	for i, a := range args {
		values[i] = a.Value
	}
	return s.Query(values)
}

// Ensure Stmt implements required interfaces.
var _ driver.Stmt = &Stmt{}
var _ driver.StmtExecContext = &Stmt{}
var _ driver.StmtQueryContext = &Stmt{}
