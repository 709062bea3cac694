package gsqlite

import "github.com/htorianik/gsqlite/internal/libsqlite3"

// updateLastInsertRowID is the post-execution hook behind
// Cursor.LastInsertRowID. Only INSERT and REPLACE commands produce a rowid;
// any other command clears it. The value is read from the connection, which
// is the scope the engine tracks it at.
func (c *Cursor) updateLastInsertRowID(conn *Connection, stmt libsqlite3.Stmt, operation string) {
	switch operationCommand(operation) {
	case "INSERT", "REPLACE":
		c.lastRowID = libsqlite3.LastInsertRowID(conn.db)
		c.hasRowID = true
	default:
		c.lastRowID = 0
		c.hasRowID = false
	}
}
