package gsqlite

// Row is one result row: an ordered, fixed-arity sequence of scalar values
// (int64, float64, string, []byte, or nil).
type Row []any

// ColumnDescription describes one result column. Only Name has a native
// source in this engine; the remaining six fields are DB-API-mandated
// placeholders and stay nil.
type ColumnDescription struct {
	Name         string
	TypeCode     any
	DisplaySize  any
	InternalSize any
	Precision    any
	Scale        any
	NullOK       any
}

// Cursor executes SQL operations on its connection and exposes the results
// through fetch operations. A cursor owns at most one live compiled
// statement; issuing a new Execute replaces it. Cursors are not safe for
// concurrent use.
type Cursor struct {
	conn        *Connection
	layer       *executionLayer
	arraysize   int
	closed      bool
	description []ColumnDescription
	lastRowID   int64
	hasRowID    bool
}

func newCursor(conn *Connection) *Cursor {
	c := &Cursor{
		conn:      conn,
		layer:     newExecutionLayer(conn),
		arraysize: 1,
	}

	// Post-execution hooks, in registration order. Each owns exactly one
	// piece of derived cursor state.
	c.layer.registerHook(c.updateDescription)
	c.layer.registerHook(c.updateLastInsertRowID)

	return c
}

// Connection returns the connection this cursor belongs to.
func (c *Cursor) Connection() *Connection {
	return c.conn
}

// Execute prepares and runs one SQL operation with positional ?-style
// parameters. Results, if any, become available through the fetch methods.
func (c *Cursor) Execute(operation string, params ...any) error {
	if err := c.guardOpen(); err != nil {
		return err
	}
	return c.layer.execute(operation, params)
}

// ExecuteMany runs a data-manipulation operation once per parameter tuple,
// reusing a single prepared statement. Non-DML operations are rejected with
// a programming error, and the cursor has nothing to fetch afterwards.
func (c *Cursor) ExecuteMany(operation string, seqOfParams [][]any) error {
	if err := c.guardOpen(); err != nil {
		return err
	}
	return c.layer.executeMany(operation, seqOfParams)
}

// FetchOne returns the next result row, or (nil, nil) once the result set
// is exhausted. Calling it past exhaustion keeps returning (nil, nil).
func (c *Cursor) FetchOne() (Row, error) {
	if err := c.guardOpen(); err != nil {
		return nil, err
	}
	return c.layer.next()
}

// FetchMany returns up to size rows, fewer (including none) when the result
// set runs out first. A size below 1 falls back to the cursor's array size.
func (c *Cursor) FetchMany(size int) ([]Row, error) {
	if err := c.guardOpen(); err != nil {
		return nil, err
	}
	if size < 1 {
		size = c.arraysize
	}

	rows := make([]Row, 0, size)
	for len(rows) < size {
		row, err := c.layer.next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchAll materializes every remaining result row.
func (c *Cursor) FetchAll() ([]Row, error) {
	if err := c.guardOpen(); err != nil {
		return nil, err
	}

	var rows []Row
	for {
		row, err := c.layer.next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return rows, nil
		}
		rows = append(rows, row)
	}
}

// ArraySize returns the default row count used by FetchMany.
func (c *Cursor) ArraySize() int {
	return c.arraysize
}

// SetArraySize sets the default row count used by FetchMany. Values below 1
// are rejected before any mutation.
func (c *Cursor) SetArraySize(size int) error {
	if err := c.guardOpen(); err != nil {
		return err
	}
	if size < 1 {
		return NewError(KindProgramming, "Attribute arraysize must be 1 or more.")
	}
	c.arraysize = size
	return nil
}

// Description returns one record per column of the last executed SELECT,
// or nil when the last operation was not a query.
func (c *Cursor) Description() []ColumnDescription {
	return c.description
}

// LastInsertRowID returns the rowid assigned by the last executed INSERT or
// REPLACE. After any other command ok is false.
//
// The underlying read is scoped to the connection, not the statement, so
// interleaved inserts on sibling cursors observe each other's rowids. That
// is inherited engine behavior and is preserved.
func (c *Cursor) LastInsertRowID() (id int64, ok bool) {
	return c.lastRowID, c.hasRowID
}

// Close finalizes the cursor's statement and marks it closed. Every
// subsequent operation on the cursor is rejected. Closing an already closed
// cursor is an error.
func (c *Cursor) Close() error {
	if c.closed {
		return NewError(KindProgramming, "Cannot operate on a closed cursor.")
	}
	c.layer.finalize()
	c.closed = true
	return nil
}

// guardOpen rejects operations on a closed cursor, and on a cursor whose
// connection has been closed: closing a connection invalidates all of its
// cursors without visiting them.
func (c *Cursor) guardOpen() error {
	if c.closed {
		return NewError(KindProgramming, "Cannot operate on a closed cursor.")
	}
	if c.conn.closed {
		return NewError(KindProgramming, "Cannot operate on a closed database.")
	}
	return nil
}
