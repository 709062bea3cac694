package gsqlite

import "strings"

// dmlCommands is the set of leading keywords ExecuteMany accepts.
var dmlCommands = map[string]struct{}{
	"INSERT":       {},
	"DELETE":       {},
	"UPDATE":       {},
	"CALL":         {},
	"LOCK":         {},
	"EXPLAIN_CALL": {},
}

// operationCommand extracts the command of a SQL operation: its first
// whitespace-delimited token, upper-cased. The classification is purely
// lexical; text starting with a comment classifies by the comment token.
func operationCommand(operation string) string {
	fields := strings.Fields(operation)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// isDML reports whether the operation's command belongs to the
// data-manipulation set.
func isDML(operation string) bool {
	_, ok := dmlCommands[operationCommand(operation)]
	return ok
}

// isDQL reports whether the operation is a data query, i.e. a SELECT.
func isDQL(operation string) bool {
	return operationCommand(operation) == "SELECT"
}
