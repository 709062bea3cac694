package gsqlite

import "github.com/htorianik/gsqlite/internal/libsqlite3"

// bindParam binds one parameter value at a 1-based index, dispatching on
// the value's runtime type. Integers bind as native 64-bit integers, floats
// as doubles, text and binary as length-prefixed copied buffers, and nil as
// an explicit native NULL. Each value costs a single native call.
func bindParam(stmt libsqlite3.Stmt, index int, value any) error {
	var rc int32
	switch v := value.(type) {
	case nil:
		rc = libsqlite3.BindNull(stmt, index)
	case int64:
		rc = libsqlite3.BindInt64(stmt, index, v)
	case int:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case int8:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case int16:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case int32:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case uint:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case uint8:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case uint16:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case uint32:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case uint64:
		rc = libsqlite3.BindInt64(stmt, index, int64(v))
	case float64:
		rc = libsqlite3.BindDouble(stmt, index, v)
	case float32:
		rc = libsqlite3.BindDouble(stmt, index, float64(v))
	case string:
		rc = libsqlite3.BindText(stmt, index, v)
	case []byte:
		rc = libsqlite3.BindBlob(stmt, index, v)
	default:
		return Errorf(KindNotSupported, "Binding a parameter of type %T is not supported.", value)
	}
	return rcGuard(rc)
}

// readColumn reads one column of the current row at a 0-based index. The
// native type tag of the value decides how it is read: integers come back
// as int64, floats as float64, text as a UTF-8 string, blobs as []byte, and
// NULL as nil. Any other tag is a reportable error, never a silent default.
func readColumn(stmt libsqlite3.Stmt, index int) (any, error) {
	switch tag := libsqlite3.ColumnType(stmt, index); tag {
	case libsqlite3.TypeInteger:
		return libsqlite3.ColumnInt64(stmt, index), nil
	case libsqlite3.TypeFloat:
		return libsqlite3.ColumnDouble(stmt, index), nil
	case libsqlite3.TypeText:
		return libsqlite3.ColumnText(stmt, index), nil
	case libsqlite3.TypeBlob:
		return libsqlite3.ColumnBlob(stmt, index), nil
	case libsqlite3.TypeNull:
		return nil, nil
	default:
		return nil, Errorf(KindNotSupported, "Retrieving a column of type %d is not implemented.", tag)
	}
}
