// Package libsqlite3 loads the SQLite shared library at runtime and exposes
// the slice of its C ABI that the driver needs: database open/close,
// statement prepare/step/reset/finalize, typed binds by 1-based index, typed
// column reads by 0-based index, and the handful of metadata accessors.
//
// The package deliberately returns raw status codes. Classifying a code as
// success or failure and turning failures into errors is the caller's
// concern; nothing here interprets engine results beyond copying C memory
// into Go-owned values.
package libsqlite3

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// DB is an opaque sqlite3* database handle.
type DB uintptr

// Stmt is an opaque sqlite3_stmt* prepared statement handle.
type Stmt uintptr

// Private C function pointers. Arguments use low-level types only; the
// exported wrappers below present Go types.
var (
	c_sqlite3_open_v2 func(filename string, ppDb unsafe.Pointer, flags int32, zVfs uintptr) int32
	c_sqlite3_close_v2 func(db uintptr) int32

	c_sqlite3_prepare_v2 func(db uintptr, zSql string, nByte int32, ppStmt unsafe.Pointer, pzTail unsafe.Pointer) int32
	c_sqlite3_step       func(stmt uintptr) int32
	c_sqlite3_reset      func(stmt uintptr) int32
	c_sqlite3_finalize   func(stmt uintptr) int32

	c_sqlite3_bind_int64    func(stmt uintptr, idx int32, value int64) int32
	c_sqlite3_bind_double   func(stmt uintptr, idx int32, value float64) int32
	c_sqlite3_bind_text     func(stmt uintptr, idx int32, value string, n int32, destructor uintptr) int32
	c_sqlite3_bind_blob     func(stmt uintptr, idx int32, value unsafe.Pointer, n int32, destructor uintptr) int32
	c_sqlite3_bind_zeroblob func(stmt uintptr, idx int32, n int32) int32
	c_sqlite3_bind_null     func(stmt uintptr, idx int32) int32

	c_sqlite3_column_type   func(stmt uintptr, idx int32) int32
	c_sqlite3_column_int64  func(stmt uintptr, idx int32) int64
	c_sqlite3_column_double func(stmt uintptr, idx int32) float64
	c_sqlite3_column_text   func(stmt uintptr, idx int32) uintptr
	c_sqlite3_column_blob   func(stmt uintptr, idx int32) uintptr
	c_sqlite3_column_bytes  func(stmt uintptr, idx int32) int32
	c_sqlite3_column_count  func(stmt uintptr) int32
	c_sqlite3_data_count    func(stmt uintptr) int32
	c_sqlite3_column_name   func(stmt uintptr, idx int32) uintptr

	c_sqlite3_last_insert_rowid func(db uintptr) int64
	c_sqlite3_changes           func(db uintptr) int32
	c_sqlite3_get_autocommit    func(db uintptr) int32

	c_sqlite3_errstr     func(code int32) uintptr
	c_sqlite3_errmsg     func(db uintptr) uintptr
	c_sqlite3_libversion func() uintptr
)

func registerFuncs(handle uintptr) {
	purego.RegisterLibFunc(&c_sqlite3_open_v2, handle, "sqlite3_open_v2")
	purego.RegisterLibFunc(&c_sqlite3_close_v2, handle, "sqlite3_close_v2")
	purego.RegisterLibFunc(&c_sqlite3_prepare_v2, handle, "sqlite3_prepare_v2")
	purego.RegisterLibFunc(&c_sqlite3_step, handle, "sqlite3_step")
	purego.RegisterLibFunc(&c_sqlite3_reset, handle, "sqlite3_reset")
	purego.RegisterLibFunc(&c_sqlite3_finalize, handle, "sqlite3_finalize")
	purego.RegisterLibFunc(&c_sqlite3_bind_int64, handle, "sqlite3_bind_int64")
	purego.RegisterLibFunc(&c_sqlite3_bind_double, handle, "sqlite3_bind_double")
	purego.RegisterLibFunc(&c_sqlite3_bind_text, handle, "sqlite3_bind_text")
	purego.RegisterLibFunc(&c_sqlite3_bind_blob, handle, "sqlite3_bind_blob")
	purego.RegisterLibFunc(&c_sqlite3_bind_zeroblob, handle, "sqlite3_bind_zeroblob")
	purego.RegisterLibFunc(&c_sqlite3_bind_null, handle, "sqlite3_bind_null")
	purego.RegisterLibFunc(&c_sqlite3_column_type, handle, "sqlite3_column_type")
	purego.RegisterLibFunc(&c_sqlite3_column_int64, handle, "sqlite3_column_int64")
	purego.RegisterLibFunc(&c_sqlite3_column_double, handle, "sqlite3_column_double")
	purego.RegisterLibFunc(&c_sqlite3_column_text, handle, "sqlite3_column_text")
	purego.RegisterLibFunc(&c_sqlite3_column_blob, handle, "sqlite3_column_blob")
	purego.RegisterLibFunc(&c_sqlite3_column_bytes, handle, "sqlite3_column_bytes")
	purego.RegisterLibFunc(&c_sqlite3_column_count, handle, "sqlite3_column_count")
	purego.RegisterLibFunc(&c_sqlite3_data_count, handle, "sqlite3_data_count")
	purego.RegisterLibFunc(&c_sqlite3_column_name, handle, "sqlite3_column_name")
	purego.RegisterLibFunc(&c_sqlite3_last_insert_rowid, handle, "sqlite3_last_insert_rowid")
	purego.RegisterLibFunc(&c_sqlite3_changes, handle, "sqlite3_changes")
	purego.RegisterLibFunc(&c_sqlite3_get_autocommit, handle, "sqlite3_get_autocommit")
	purego.RegisterLibFunc(&c_sqlite3_errstr, handle, "sqlite3_errstr")
	purego.RegisterLibFunc(&c_sqlite3_errmsg, handle, "sqlite3_errmsg")
	purego.RegisterLibFunc(&c_sqlite3_libversion, handle, "sqlite3_libversion")
}

// Open opens (or creates) the database at path and returns its handle along
// with the raw result code. The handle may be non-zero even on failure; the
// caller is expected to Close it in that case, per the C API contract.
func Open(path string, flags int32) (DB, int32) {
	var db uintptr
	rc := c_sqlite3_open_v2(path, unsafe.Pointer(&db), flags, 0)
	return DB(db), rc
}

// Close releases a database handle. Closing a zero handle is a no-op
// reported as OK.
func Close(db DB) int32 {
	if db == 0 {
		return OK
	}
	return c_sqlite3_close_v2(uintptr(db))
}

// Prepare compiles a single SQL statement against db. Any trailing text
// after the first statement is ignored.
func Prepare(db DB, sql string) (Stmt, int32) {
	var stmt uintptr
	var tail uintptr
	rc := c_sqlite3_prepare_v2(uintptr(db), sql, -1, unsafe.Pointer(&stmt), unsafe.Pointer(&tail))
	return Stmt(stmt), rc
}

// Step advances a prepared statement by one unit of execution.
func Step(stmt Stmt) int32 { return c_sqlite3_step(uintptr(stmt)) }

// Reset returns a statement to its initial state so it can be re-bound and
// re-stepped.
func Reset(stmt Stmt) int32 { return c_sqlite3_reset(uintptr(stmt)) }

// Finalize destroys a prepared statement. Finalizing a zero handle is a
// no-op reported as OK.
func Finalize(stmt Stmt) int32 {
	if stmt == 0 {
		return OK
	}
	return c_sqlite3_finalize(uintptr(stmt))
}

// BindInt64 binds a 64-bit integer at the given 1-based parameter index.
func BindInt64(stmt Stmt, idx int, value int64) int32 {
	return c_sqlite3_bind_int64(uintptr(stmt), int32(idx), value)
}

// BindDouble binds a double at the given 1-based parameter index.
func BindDouble(stmt Stmt, idx int, value float64) int32 {
	return c_sqlite3_bind_double(uintptr(stmt), int32(idx), value)
}

// BindText binds UTF-8 text at the given 1-based parameter index. The
// transient destructor makes the engine copy the bytes during the call.
func BindText(stmt Stmt, idx int, value string) int32 {
	return c_sqlite3_bind_text(uintptr(stmt), int32(idx), value, int32(len(value)), transientDestructor)
}

// BindBlob binds a byte buffer at the given 1-based parameter index, again
// with copy semantics. An empty buffer binds through bind_zeroblob: passing
// a NULL pointer to bind_blob would bind SQL NULL instead of an empty blob.
func BindBlob(stmt Stmt, idx int, value []byte) int32 {
	if len(value) == 0 {
		return c_sqlite3_bind_zeroblob(uintptr(stmt), int32(idx), 0)
	}
	return c_sqlite3_bind_blob(uintptr(stmt), int32(idx), unsafe.Pointer(&value[0]), int32(len(value)), transientDestructor)
}

// BindNull binds SQL NULL at the given 1-based parameter index.
func BindNull(stmt Stmt, idx int) int32 {
	return c_sqlite3_bind_null(uintptr(stmt), int32(idx))
}

// ColumnType reports the datatype code of the value at the given 0-based
// column index of the current row.
func ColumnType(stmt Stmt, idx int) int32 {
	return c_sqlite3_column_type(uintptr(stmt), int32(idx))
}

// ColumnInt64 reads an integer column of the current row.
func ColumnInt64(stmt Stmt, idx int) int64 {
	return c_sqlite3_column_int64(uintptr(stmt), int32(idx))
}

// ColumnDouble reads a floating-point column of the current row.
func ColumnDouble(stmt Stmt, idx int) float64 {
	return c_sqlite3_column_double(uintptr(stmt), int32(idx))
}

// ColumnText reads a text column of the current row as a Go string. The
// engine-owned bytes are copied before the function returns.
func ColumnText(stmt Stmt, idx int) string {
	ptr := c_sqlite3_column_text(uintptr(stmt), int32(idx))
	n := c_sqlite3_column_bytes(uintptr(stmt), int32(idx))
	return string(copyBytes(ptr, int(n)))
}

// ColumnBlob reads a blob column of the current row into a fresh Go slice.
func ColumnBlob(stmt Stmt, idx int) []byte {
	ptr := c_sqlite3_column_blob(uintptr(stmt), int32(idx))
	n := c_sqlite3_column_bytes(uintptr(stmt), int32(idx))
	return copyBytes(ptr, int(n))
}

// ColumnCount reports the number of columns the statement can return.
func ColumnCount(stmt Stmt) int { return int(c_sqlite3_column_count(uintptr(stmt))) }

// DataCount reports the number of columns in the current row, or 0 when the
// statement has no row available.
func DataCount(stmt Stmt) int { return int(c_sqlite3_data_count(uintptr(stmt))) }

// ColumnName reports the display name of the given 0-based column.
func ColumnName(stmt Stmt, idx int) string {
	return copyCString(c_sqlite3_column_name(uintptr(stmt), int32(idx)))
}

// LastInsertRowID reports the rowid assigned by the most recent successful
// insert on the connection.
func LastInsertRowID(db DB) int64 {
	return c_sqlite3_last_insert_rowid(uintptr(db))
}

// Changes reports the number of rows modified by the most recently completed
// INSERT, UPDATE, or DELETE on the connection.
func Changes(db DB) int64 {
	return int64(c_sqlite3_changes(uintptr(db)))
}

// Autocommit reports whether db is in autocommit mode, i.e. no explicit
// transaction is currently open.
func Autocommit(db DB) bool {
	return c_sqlite3_get_autocommit(uintptr(db)) != 0
}

// ErrStr returns the engine's human-readable description of a result code.
func ErrStr(code int32) string {
	return copyCString(c_sqlite3_errstr(code))
}

// ErrMsg returns the message of the most recent failed call on db.
func ErrMsg(db DB) string {
	return copyCString(c_sqlite3_errmsg(uintptr(db)))
}

// Version reports the run-time library version string.
func Version() string {
	return copyCString(c_sqlite3_libversion())
}
