// Package gsqlite is a cursor-based SQLite driver that talks to the system's
// libsqlite3 through a runtime foreign-function binding, without cgo.
//
// The surface follows the DB-API cursor model: a Connection owns the native
// database handle and hands out Cursors; a Cursor prepares one statement at
// a time, binds positional ?-style parameters, and exposes the result rows
// as a lazy pull sequence through FetchOne, FetchMany, and FetchAll.
//
//	conn, err := gsqlite.Connect(":memory:")
//	if err != nil { ... }
//	defer conn.Close()
//
//	cur, _ := conn.Cursor()
//	cur.Execute("CREATE TABLE users (id, name)")
//	cur.ExecuteMany("INSERT INTO users VALUES (?, ?)", [][]any{{1, "George"}, {2, "Solomia"}})
//	cur.Execute("SELECT * FROM users")
//	rows, _ := cur.FetchAll()
//
// Opening a connection begins an implicit transaction; Commit and Rollback
// forward COMMIT and ROLLBACK as ordinary statements. A Connection and its
// cursors must not be used from multiple goroutines concurrently.
package gsqlite

// DB-API style module metadata.
const (
	APILevel     = "2.0"
	ParamStyle   = "qmark"
	ThreadSafety = 1
)
