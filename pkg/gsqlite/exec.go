package gsqlite

import (
	"github.com/htorianik/gsqlite/internal/libsqlite3"
	"github.com/htorianik/gsqlite/internal/log"
)

// postExecHook is a registered observer invoked after every execute or
// executemany completes. Hooks derive secondary cursor state (column
// description, last insert rowid) from the executed statement without the
// execution layer knowing their concern.
type postExecHook func(conn *Connection, stmt libsqlite3.Stmt, operation string)

// executionLayer owns statement preparation, parameter binding, and
// finalization for one cursor. At most one compiled statement is live at a
// time: preparing a new operation always finalizes the previous statement
// first, so repeated executions on one cursor never leak handles.
type executionLayer struct {
	conn      *Connection
	stmt      libsqlite3.Stmt
	operation string
	iter      *stmtIterator
	hooks     []postExecHook
}

func newExecutionLayer(conn *Connection) *executionLayer {
	return &executionLayer{conn: conn}
}

// execute prepares the operation, binds params positionally, performs the
// first step, and runs the registered hooks. Prepare, bind, and step
// failures all propagate before any hook runs.
func (l *executionLayer) execute(operation string, params []any) error {
	if err := l.prepare(operation); err != nil {
		return err
	}
	if err := l.bind(params); err != nil {
		return err
	}
	iter, err := execAndIter(l.stmt)
	if err != nil {
		return err
	}
	l.iter = iter
	l.runHooks()
	return nil
}

// executeMany prepares the operation once, then for each parameter tuple
// binds, steps, and resets the statement. It is restricted to
// data-manipulation commands: each step's result is discarded, so iterator
// state would be meaningless across the loop. After the loop there is
// nothing to fetch, and the hooks run once with the last operation text.
func (l *executionLayer) executeMany(operation string, seqOfParams [][]any) error {
	if !isDML(operation) {
		return NewError(KindProgramming, "executemany() can only execute DML statements.")
	}

	if err := l.prepare(operation); err != nil {
		return err
	}
	for _, params := range seqOfParams {
		if err := l.bind(params); err != nil {
			return err
		}
		if err := rcGuard(libsqlite3.Step(l.stmt)); err != nil {
			return err
		}
		if err := rcGuard(libsqlite3.Reset(l.stmt)); err != nil {
			return err
		}
	}

	l.iter = nil
	l.runHooks()
	return nil
}

// next yields the next row of the current statement iterator. When no
// iterator exists (no execute yet, or the last command was an executeMany)
// the sequence is empty.
func (l *executionLayer) next() (Row, error) {
	if l.iter == nil {
		return nil, nil
	}
	return l.iter.next()
}

// registerHook appends a hook to the ordered list. Hooks persist for the
// lifetime of the layer and run in registration order.
func (l *executionLayer) registerHook(hook postExecHook) {
	l.hooks = append(l.hooks, hook)
}

func (l *executionLayer) runHooks() {
	for _, hook := range l.hooks {
		hook(l.conn, l.stmt, l.operation)
	}
}

func (l *executionLayer) prepare(operation string) error {
	l.finalize()
	l.operation = operation
	stmt, rc := libsqlite3.Prepare(l.conn.db, operation)
	if err := rcGuard(rc); err != nil {
		return err
	}
	l.stmt = stmt
	return nil
}

// finalize releases the layer's statement and clears the iterator.
// Finalizing when no statement is held is a no-op. The finalize result code
// only repeats the most recent step failure, which was already surfaced to
// the caller, so it is logged rather than raised.
func (l *executionLayer) finalize() {
	l.iter = nil
	if l.stmt == 0 {
		return
	}
	if rc := libsqlite3.Finalize(l.stmt); rc != libsqlite3.OK {
		log.Debug("finalize return code: %d", rc)
	}
	l.stmt = 0
}

func (l *executionLayer) bind(params []any) error {
	for i, value := range params {
		// Native parameter indexes are 1-based.
		if err := bindParam(l.stmt, i+1, value); err != nil {
			return err
		}
	}
	return nil
}
