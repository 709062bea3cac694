package driver

import "database/sql/driver"

// Tx implements driver.Tx over the transaction begun by Conn.Begin. Ending
// the transaction returns the connection to autocommit mode.
type Tx struct {
	conn *Conn
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.conn.conn.Commit()
}

// Rollback rolls back the transaction.
func (t *Tx) Rollback() error {
	return t.conn.conn.Rollback()
}

// Ensure Tx implements driver.Tx.
var _ driver.Tx = &Tx{}
