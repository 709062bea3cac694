package gsqlite

import (
	"github.com/htorianik/gsqlite/internal/libsqlite3"
	"github.com/htorianik/gsqlite/internal/log"
)

// rcGuard classifies a native result code. The success set is fixed: OK,
// row-available, and done. Anything else becomes an error carrying the
// engine's message for that code. Every native call whose result the caller
// inspects must pass through here first.
func rcGuard(rc int32) error {
	switch rc {
	case libsqlite3.OK, libsqlite3.Row, libsqlite3.Done:
		return nil
	}
	log.Debug("return code: %d", rc)
	return NewError(kindForCode(rc), libsqlite3.ErrStr(rc))
}

// kindForCode maps the well-known native result codes onto the finer
// taxonomy kinds. Unlisted codes report as plain database errors.
func kindForCode(rc int32) Kind {
	switch rc {
	case libsqlite3.Constraint:
		return KindIntegrity
	case libsqlite3.Mismatch:
		return KindData
	case libsqlite3.Internal:
		return KindInternal
	case libsqlite3.Misuse, libsqlite3.Range:
		return KindProgramming
	case libsqlite3.NoMem, libsqlite3.IOErr, libsqlite3.Busy, libsqlite3.Locked,
		libsqlite3.Full, libsqlite3.CantOpen, libsqlite3.Corrupt, libsqlite3.NotADB,
		libsqlite3.ReadOnly, libsqlite3.Interrupt, libsqlite3.Protocol, libsqlite3.Schema:
		return KindOperational
	}
	return KindDatabase
}
