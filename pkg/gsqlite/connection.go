package gsqlite

import (
	"github.com/htorianik/gsqlite/internal/libsqlite3"
)

// Connection wraps one native database handle, exclusively owned. Opening a
// connection begins an implicit transaction; Commit, Rollback, and Close
// forward the corresponding SQL through a throwaway cursor. A closed
// connection holds no usable handle and rejects every further operation.
type Connection struct {
	db     libsqlite3.DB
	closed bool
}

// Connect opens the database at path, creating the file when it does not
// exist. ":memory:" opens a private in-memory database.
func Connect(path string) (*Connection, error) {
	if err := libsqlite3.Load(); err != nil {
		return nil, &Error{Kind: KindInterface, Message: "cannot load the SQLite library", Err: err}
	}

	db, rc := libsqlite3.Open(path, libsqlite3.OpenReadWrite|libsqlite3.OpenCreate)
	if err := rcGuard(rc); err != nil {
		// The C API hands back a handle even on failure; release it.
		libsqlite3.Close(db)
		return nil, err
	}

	conn := &Connection{db: db}
	if err := conn.executeStatement("BEGIN"); err != nil {
		libsqlite3.Close(db)
		return nil, err
	}
	return conn, nil
}

// Cursor allocates a new cursor on this connection.
func (c *Connection) Cursor() (*Cursor, error) {
	if err := c.guardOpen(); err != nil {
		return nil, err
	}
	return newCursor(c), nil
}

// Commit forwards COMMIT as an ordinary statement.
func (c *Connection) Commit() error {
	if err := c.guardOpen(); err != nil {
		return err
	}
	return c.executeStatement("COMMIT")
}

// Rollback forwards ROLLBACK as an ordinary statement.
func (c *Connection) Rollback() error {
	if err := c.guardOpen(); err != nil {
		return err
	}
	return c.executeStatement("ROLLBACK")
}

// Close rolls back the open transaction, if any, releases the native handle,
// and marks the connection closed. A closed connection is never reopened, and
// all of its cursors become unusable.
func (c *Connection) Close() error {
	if err := c.guardOpen(); err != nil {
		return err
	}
	if !libsqlite3.Autocommit(c.db) {
		if err := c.executeStatement("ROLLBACK"); err != nil {
			return err
		}
	}
	c.closed = true
	err := rcGuard(libsqlite3.Close(c.db))
	c.db = 0
	return err
}

// Closed reports whether the connection has been closed.
func (c *Connection) Closed() bool {
	return c.closed
}

// Changes reports the number of rows modified by the most recently
// completed INSERT, UPDATE, or DELETE on this connection.
func (c *Connection) Changes() (int64, error) {
	if err := c.guardOpen(); err != nil {
		return 0, err
	}
	return libsqlite3.Changes(c.db), nil
}

// executeStatement runs one statement through a throwaway cursor, closing
// it so the compiled statement is finalized immediately.
func (c *Connection) executeStatement(operation string) error {
	cursor := newCursor(c)
	defer cursor.Close()
	return cursor.Execute(operation)
}

func (c *Connection) guardOpen() error {
	if c.closed {
		return NewError(KindProgramming, "Cannot operate on a closed database.")
	}
	return nil
}
