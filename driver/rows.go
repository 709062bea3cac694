package driver

import (
	"database/sql/driver"
	"io"

	"github.com/htorianik/gsqlite/pkg/gsqlite"
)

// Rows implements driver.Rows over the cursor's lazy pull sequence.
type Rows struct {
	cursor *gsqlite.Cursor
	done   bool
}

// Columns returns the names of the columns from the cursor description.
func (r *Rows) Columns() []string {
	description := r.cursor.Description()
	names := make([]string, len(description))
	for i, column := range description {
		names[i] = column.Name
	}
	return names
}

// Close stops iteration. The compiled statement stays with the cursor and
// is finalized when the next statement is prepared, so there is nothing to
// release here.
func (r *Rows) Close() error {
	r.done = true
	return nil
}

// Next populates dest with the values of the next row. Returns io.EOF when
// there are no more rows.
func (r *Rows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	row, err := r.cursor.FetchOne()
	if err != nil {
		return err
	}
	if row == nil {
		r.done = true
		return io.EOF
	}
	for i := range dest {
		if i < len(row) {
			dest[i] = row[i]
		}
	}
	return nil
}

// Ensure Rows implements driver.Rows.
var _ driver.Rows = &Rows{}
