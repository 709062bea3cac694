package gsqlite

import (
	"bytes"
	"testing"
)

// Round trips: binding a value and reading it straight back must yield an
// equal value for each supported scalar kind.
func TestRoundTripScalars(t *testing.T) {
	_, cursor := mustConnect(t)

	fetchBack := func(value any) any {
		t.Helper()
		if err := cursor.Execute("SELECT ?", value); err != nil {
			t.Fatalf("SELECT ? with %#v failed: %v", value, err)
		}
		row, err := cursor.FetchOne()
		if err != nil {
			t.Fatalf("FetchOne failed: %v", err)
		}
		if len(row) != 1 {
			t.Fatalf("row arity = %d, want 1", len(row))
		}
		return row[0]
	}

	if got := fetchBack(int64(42)); got != int64(42) {
		t.Errorf("int64 round trip = %#v", got)
	}
	if got := fetchBack(-7); got != int64(-7) {
		t.Errorf("int round trip = %#v", got)
	}
	if got := fetchBack(3.5); got != 3.5 {
		t.Errorf("float64 round trip = %#v", got)
	}
	if got := fetchBack("Здоровенькі були"); got != "Здоровенькі були" {
		t.Errorf("text round trip = %#v", got)
	}
	if got := fetchBack(nil); got != nil {
		t.Errorf("nil round trip = %#v", got)
	}

	blob := []byte{0x00, 0x01, 0xFE, 0xFF}
	got, ok := fetchBack(blob).([]byte)
	if !ok || !bytes.Equal(got, blob) {
		t.Errorf("blob round trip = %#v", got)
	}

	// An empty blob must stay a blob, not degrade to NULL.
	if err := cursor.Execute("SELECT typeof(?)", []byte{}); err != nil {
		t.Fatalf("SELECT typeof failed: %v", err)
	}
	row, err := cursor.FetchOne()
	if err != nil {
		t.Fatalf("FetchOne failed: %v", err)
	}
	if row[0] != "blob" {
		t.Errorf("typeof(empty blob) = %v, want blob", row[0])
	}
}

func TestRoundTripThroughTable(t *testing.T) {
	_, cursor := mustConnect(t)

	if err := cursor.Execute("CREATE TABLE vals (i, f, s, b, n)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	blob := []byte("\x00binary\xff")
	err := cursor.Execute("INSERT INTO vals VALUES (?, ?, ?, ?, ?)",
		int64(1), 2.25, "three", blob, nil)
	if err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}

	if err := cursor.Execute("SELECT i, f, s, b, n FROM vals"); err != nil {
		t.Fatalf("SELECT failed: %v", err)
	}
	row, err := cursor.FetchOne()
	if err != nil {
		t.Fatalf("FetchOne failed: %v", err)
	}
	if row[0] != int64(1) || row[1] != 2.25 || row[2] != "three" || row[4] != nil {
		t.Errorf("row = %#v", row)
	}
	if got, ok := row[3].([]byte); !ok || !bytes.Equal(got, blob) {
		t.Errorf("blob column = %#v, want %#v", row[3], blob)
	}
}

func TestBindUnsupportedType(t *testing.T) {
	_, cursor := mustConnect(t)

	err := cursor.Execute("SELECT ?", struct{ X int }{1})
	if err == nil {
		t.Fatal("binding a struct did not fail")
	}
	if !IsKind(err, KindNotSupported) {
		t.Errorf("error = %v, want NotSupportedError", err)
	}
}

func TestBindParameterCountMismatch(t *testing.T) {
	_, cursor := mustConnect(t)

	// Binding past the statement's parameter count fails at the bind call,
	// before the statement runs and before any hook.
	err := cursor.Execute("SELECT ?", 1, 2)
	if err == nil {
		t.Fatal("binding extra parameters did not fail")
	}
	if !IsKind(err, KindDatabase) {
		t.Errorf("error = %v, want a database error", err)
	}
}
