package gsqlite

import (
	"errors"
	"fmt"
)

// Kind identifies a class of driver error. The kinds form the layered
// DB-API taxonomy: KindInterface and KindDatabase sit under the implicit
// root, and the specific database kinds all sit under KindDatabase.
type Kind int

const (
	KindWarning Kind = iota
	KindInterface
	KindDatabase
	KindData
	KindOperational
	KindIntegrity
	KindInternal
	KindProgramming
	KindNotSupported
)

var kindNames = map[Kind]string{
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

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// isA reports whether k is target or a specialization of it.
func (k Kind) isA(target Kind) bool {
	if k == target {
		return true
	}
	if target == KindDatabase {
		switch k {
		case KindData, KindOperational, KindIntegrity, KindInternal, KindProgramming, KindNotSupported:
			return true
		}
	}
	return false
}

// Error is a structured driver error carrying its taxonomy kind, a
// human-readable message, and an optional wrapped underlying error.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped underlying error (may be nil)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error for use with errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches target. Two *Error values match
// when the target's kind is this error's kind or an ancestor of it, so a
// ProgrammingError satisfies errors.Is against a DatabaseError target.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind.isA(t.Kind)
	}
	return false
}

// NewError creates a new *Error with the given kind and message.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Errorf creates a new *Error with the given kind and a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err: KindDatabase for any non-driver error,
// or the kind carried by the *Error in the chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindDatabase, false
}

// IsKind reports whether err carries the given kind or a specialization
// of it.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.isA(kind)
	}
	return false
}
