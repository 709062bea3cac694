package gsqlite

import "github.com/htorianik/gsqlite/internal/libsqlite3"

// stmtIterator drives the step protocol over one compiled statement and
// produces its rows as a lazy, finite, non-restartable sequence.
//
// The column count is read once at construction; it does not change across
// steps of the same compiled statement.
type stmtIterator struct {
	stmt      libsqlite3.Stmt
	lastRC    int32
	dataCount int
}

// execAndIter performs the first step of the statement immediately and
// captures its status as the iterator's current state. Performing that step
// here, rather than on first fetch, is what lets Execute surface DML errors
// at the call site.
func execAndIter(stmt libsqlite3.Stmt) (*stmtIterator, error) {
	rc := libsqlite3.Step(stmt)
	if err := rcGuard(rc); err != nil {
		return nil, err
	}
	return &stmtIterator{
		stmt:      stmt,
		lastRC:    rc,
		dataCount: libsqlite3.DataCount(stmt),
	}, nil
}

// next returns the next row, or (nil, nil) once the statement has reported
// done. Past exhaustion it keeps returning (nil, nil) without touching the
// statement: re-stepping a finished statement is undefined behavior in the
// engine and must never happen.
//
// The current row is read before the statement advances, so the row made
// available by the construction-time step is the first one yielded.
func (it *stmtIterator) next() (Row, error) {
	if it.lastRC == libsqlite3.Done {
		return nil, nil
	}

	row := make(Row, it.dataCount)
	for i := range row {
		value, err := readColumn(it.stmt, i)
		if err != nil {
			return nil, err
		}
		row[i] = value
	}

	rc := libsqlite3.Step(it.stmt)
	if err := rcGuard(rc); err != nil {
		return nil, err
	}
	it.lastRC = rc
	return row, nil
}
