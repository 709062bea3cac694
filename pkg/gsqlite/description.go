package gsqlite

import "github.com/htorianik/gsqlite/internal/libsqlite3"

// updateDescription is the post-execution hook behind Cursor.Description.
// It overwrites the description on every execution: for a SELECT it reads
// the column names from the statement, for anything else it resets the
// description to nil.
func (c *Cursor) updateDescription(conn *Connection, stmt libsqlite3.Stmt, operation string) {
	if !isDQL(operation) {
		c.description = nil
		return
	}

	count := libsqlite3.ColumnCount(stmt)
	description := make([]ColumnDescription, count)
	for i := range description {
		description[i] = ColumnDescription{Name: libsqlite3.ColumnName(stmt, i)}
	}
	c.description = description
}
