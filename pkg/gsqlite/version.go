package gsqlite

import "github.com/htorianik/gsqlite/internal/libsqlite3"

// SQLiteVersion reports the engine version by asking the engine itself: it
// opens a throwaway in-memory database and runs `select sqlite_version()`
// through a cursor.
func SQLiteVersion() (string, error) {
	conn, err := Connect(":memory:")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	cursor, err := conn.Cursor()
	if err != nil {
		return "", err
	}
	if err := cursor.Execute("select sqlite_version()"); err != nil {
		return "", err
	}
	row, err := cursor.FetchOne()
	if err != nil {
		return "", err
	}
	version, ok := row[0].(string)
	if !ok {
		return "", Errorf(KindInternal, "unexpected sqlite_version() result %v", row[0])
	}
	return version, nil
}

// LibVersion reports the run-time library version string straight from the
// binding, without opening a database.
func LibVersion() (string, error) {
	if err := libsqlite3.Load(); err != nil {
		return "", &Error{Kind: KindInterface, Message: "cannot load the SQLite library", Err: err}
	}
	return libsqlite3.Version(), nil
}
