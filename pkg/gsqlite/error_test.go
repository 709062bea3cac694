package gsqlite

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := NewError(KindProgramming, "Cannot operate on a closed cursor.")
	want := "ProgrammingError: Cannot operate on a closed cursor."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorHierarchy(t *testing.T) {
	specific := []Kind{
		KindData, KindOperational, KindIntegrity,
		KindInternal, KindProgramming, KindNotSupported,
	}

	// Every specific kind matches a DatabaseError target.
	for _, kind := range specific {
		err := NewError(kind, "boom")
		if !errors.Is(err, NewError(KindDatabase, "")) {
			t.Errorf("%v does not match DatabaseError", kind)
		}
		if !IsKind(err, KindDatabase) {
			t.Errorf("IsKind(%v, KindDatabase) = false", kind)
		}
		if !IsKind(err, kind) {
			t.Errorf("IsKind(%v, %v) = false", kind, kind)
		}
	}

	// But not the other way round, and siblings do not match.
	if errors.Is(NewError(KindDatabase, "boom"), NewError(KindProgramming, "")) {
		t.Error("DatabaseError matches ProgrammingError")
	}
	if errors.Is(NewError(KindIntegrity, "boom"), NewError(KindProgramming, "")) {
		t.Error("IntegrityError matches ProgrammingError")
	}

	// Interface errors sit outside the database branch.
	if errors.Is(NewError(KindInterface, "boom"), NewError(KindDatabase, "")) {
		t.Error("InterfaceError matches DatabaseError")
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("dlopen failed")
	err := &Error{Kind: KindInterface, Message: "cannot load the SQLite library", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("wrapped error not reachable through errors.Is")
	}

	wrapped := fmt.Errorf("connect: %w", err)
	var driverErr *Error
	if !errors.As(wrapped, &driverErr) {
		t.Fatal("errors.As failed to find *Error")
	}
	if driverErr.Kind != KindInterface {
		t.Errorf("Kind = %v, want KindInterface", driverErr.Kind)
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(NewError(KindOperational, "busy"))
	if !ok || kind != KindOperational {
		t.Errorf("KindOf = (%v, %v), want (KindOperational, true)", kind, ok)
	}

	kind, ok = KindOf(errors.New("plain"))
	if ok || kind != KindDatabase {
		t.Errorf("KindOf(plain) = (%v, %v), want (KindDatabase, false)", kind, ok)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindWarning:      "Warning",
		KindInterface:    "InterfaceError",
		KindDatabase:     "DatabaseError",
		KindData:         "DataError",
		KindOperational:  "OperationalError",
		KindIntegrity:    "IntegrityError",
		KindInternal:     "InternalError",
		KindProgramming:  "ProgrammingError",
		KindNotSupported: "NotSupportedError",
	}
	for kind, want := range tests {
		if kind.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), kind.String(), want)
		}
	}
}
